package posts

import "strings"

// MaxImages is the largest image set a post may carry.
const MaxImages = 5

// CreateInput is the payload for creating a post. Optional attributes may
// be empty; Password is the plaintext ownership secret.
type CreateInput struct {
	PetName           string
	Description       string
	Breed             string
	Color             string
	Neighborhood      string
	Accessory         string
	LocationReference string
	Whatsapp          string
	Instagram         string
	PetAge            string
	Address           string
	Password          string
	ImageURLs         []string
}

// UpdateInput is the payload for a partial update. Nil fields mean "keep
// the stored value". A nil ImageURLs means "leave the image set alone";
// an empty, non-nil slice deletes every image.
type UpdateInput struct {
	PetName           *string
	Description       *string
	Breed             *string
	Color             *string
	Neighborhood      *string
	Accessory         *string
	LocationReference *string
	Whatsapp          *string
	Instagram         *string
	PetAge            *string
	Address           *string
	Password          string
	ImageURLs         *[]string
}

// ValidateCreate checks a creation payload. Rules run in order and the
// first failure wins. On success the input is normalized in place
// (whatsapp reduced to its digits).
func ValidateCreate(in *CreateInput) *ValidationError {
	if in.PetName == "" || in.Description == "" || in.Breed == "" ||
		in.Color == "" || in.Neighborhood == "" || in.Password == "" ||
		len(in.ImageURLs) == 0 {
		return &ValidationError{
			Code:    CodeMissingRequiredField,
			Message: "Campos obrigatórios faltando: pet_name, description, breed, color, neighborhood, password e pelo menos uma imagem.",
		}
	}
	if in.Whatsapp == "" && in.Instagram == "" {
		return &ValidationError{
			Code:    CodeMissingContactMethod,
			Message: "Você deve fornecer pelo menos um método de contato (WhatsApp ou Instagram).",
		}
	}
	if len(in.ImageURLs) > MaxImages {
		return &ValidationError{
			Code:    CodeInvalidImageCount,
			Message: "Você pode enviar no máximo 5 imagens.",
		}
	}
	if in.Whatsapp != "" {
		normalized, ok := normalizePhone(in.Whatsapp)
		if !ok {
			return &ValidationError{
				Code:    CodeInvalidPhone,
				Message: "WhatsApp inválido: informe DDD + número (10 ou 11 dígitos).",
			}
		}
		in.Whatsapp = normalized
	}
	return nil
}

// ValidateUpdate checks a partial-update payload. The secret is required
// even when nothing else changes.
func ValidateUpdate(in *UpdateInput) *ValidationError {
	if in.Password == "" {
		return &ValidationError{
			Code:    CodeMissingRequiredField,
			Message: "Senha é obrigatória para editar o post.",
		}
	}
	if in.ImageURLs != nil && len(*in.ImageURLs) > MaxImages {
		return &ValidationError{
			Code:    CodeInvalidImageCount,
			Message: "Você pode enviar no máximo 5 imagens.",
		}
	}
	if in.Whatsapp != nil && *in.Whatsapp != "" {
		normalized, ok := normalizePhone(*in.Whatsapp)
		if !ok {
			return &ValidationError{
				Code:    CodeInvalidPhone,
				Message: "WhatsApp inválido: informe DDD + número (10 ou 11 dígitos).",
			}
		}
		*in.Whatsapp = normalized
	}
	return nil
}

// normalizePhone strips everything but digits and accepts Brazilian
// landline/mobile lengths (DDD + 8 or 9 digits).
func normalizePhone(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) != 10 && len(digits) != 11 {
		return "", false
	}
	return digits, true
}
