package posts

import "errors"

var (
	// ErrNotFound means no post exists with the given id.
	ErrNotFound = errors.New("post not found")
	// ErrWrongPassword means the supplied secret does not match the
	// stored hash for the post.
	ErrWrongPassword = errors.New("wrong password")
)

// ValidationError rejects a payload before any database work happens.
// Code is a stable internal identifier; Message is the user-facing text
// returned in the error response.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

const (
	CodeMissingRequiredField = "missing_required_field"
	CodeMissingContactMethod = "missing_contact_method"
	CodeInvalidImageCount    = "invalid_image_count"
	CodeInvalidPhone         = "invalid_phone"
)
