package posts

import "testing"

func validCreateInput() CreateInput {
	return CreateInput{
		PetName:      "Rex",
		Description:  "lost near the park",
		Breed:        "Lab",
		Color:        "brown",
		Neighborhood: "Centro",
		Whatsapp:     "11999998888",
		Password:     "abc123",
		ImageURLs:    []string{"u1"},
	}
}

func TestValidateCreateAccepts(t *testing.T) {
	in := validCreateInput()
	if ve := ValidateCreate(&in); ve != nil {
		t.Fatalf("expected valid input to pass, got %q", ve.Code)
	}
}

func TestValidateCreateRequiredFields(t *testing.T) {
	cases := map[string]func(*CreateInput){
		"pet_name":    func(in *CreateInput) { in.PetName = "" },
		"description": func(in *CreateInput) { in.Description = "" },
		"breed":       func(in *CreateInput) { in.Breed = "" },
		"color":       func(in *CreateInput) { in.Color = "" },
		"neighborhood": func(in *CreateInput) { in.Neighborhood = "" },
		"password":    func(in *CreateInput) { in.Password = "" },
		"images":      func(in *CreateInput) { in.ImageURLs = nil },
		"empty images": func(in *CreateInput) { in.ImageURLs = []string{} },
	}
	for name, mutate := range cases {
		in := validCreateInput()
		mutate(&in)
		ve := ValidateCreate(&in)
		if ve == nil {
			t.Errorf("%s: expected rejection", name)
			continue
		}
		if ve.Code != CodeMissingRequiredField {
			t.Errorf("%s: expected %s, got %s", name, CodeMissingRequiredField, ve.Code)
		}
	}
}

func TestValidateCreateContactMethod(t *testing.T) {
	in := validCreateInput()
	in.Whatsapp = ""
	in.Instagram = ""
	ve := ValidateCreate(&in)
	if ve == nil || ve.Code != CodeMissingContactMethod {
		t.Fatalf("expected %s, got %v", CodeMissingContactMethod, ve)
	}

	// Instagram alone is a valid contact method.
	in = validCreateInput()
	in.Whatsapp = ""
	in.Instagram = "@rexdog"
	if ve := ValidateCreate(&in); ve != nil {
		t.Fatalf("instagram-only input rejected: %q", ve.Code)
	}
}

func TestValidateCreateImageCount(t *testing.T) {
	in := validCreateInput()
	in.ImageURLs = []string{"u1", "u2", "u3", "u4", "u5"}
	if ve := ValidateCreate(&in); ve != nil {
		t.Fatalf("five images should be accepted, got %q", ve.Code)
	}

	in = validCreateInput()
	in.ImageURLs = []string{"u1", "u2", "u3", "u4", "u5", "u6"}
	ve := ValidateCreate(&in)
	if ve == nil || ve.Code != CodeInvalidImageCount {
		t.Fatalf("expected %s, got %v", CodeInvalidImageCount, ve)
	}
}

func TestValidateCreatePhoneNormalization(t *testing.T) {
	in := validCreateInput()
	in.Whatsapp = "(11) 91234-5678"
	if ve := ValidateCreate(&in); ve != nil {
		t.Fatalf("formatted phone rejected: %q", ve.Code)
	}
	if in.Whatsapp != "11912345678" {
		t.Fatalf("expected 11912345678, got %q", in.Whatsapp)
	}

	// Normalizing an already-normalized number changes nothing.
	if ve := ValidateCreate(&in); ve != nil {
		t.Fatalf("re-validation rejected: %q", ve.Code)
	}
	if in.Whatsapp != "11912345678" {
		t.Fatalf("normalization not idempotent: %q", in.Whatsapp)
	}

	in = validCreateInput()
	in.Whatsapp = "12345"
	ve := ValidateCreate(&in)
	if ve == nil || ve.Code != CodeInvalidPhone {
		t.Fatalf("expected %s, got %v", CodeInvalidPhone, ve)
	}
}

func TestValidateUpdateRequiresPassword(t *testing.T) {
	ve := ValidateUpdate(&UpdateInput{})
	if ve == nil || ve.Code != CodeMissingRequiredField {
		t.Fatalf("expected %s, got %v", CodeMissingRequiredField, ve)
	}

	// A password with no other field is a legal no-op update.
	if ve := ValidateUpdate(&UpdateInput{Password: "abc123"}); ve != nil {
		t.Fatalf("password-only update rejected: %q", ve.Code)
	}
}

func TestValidateUpdateImageCount(t *testing.T) {
	empty := []string{}
	if ve := ValidateUpdate(&UpdateInput{Password: "abc123", ImageURLs: &empty}); ve != nil {
		t.Fatalf("explicit empty image list rejected: %q", ve.Code)
	}

	tooMany := []string{"u1", "u2", "u3", "u4", "u5", "u6"}
	ve := ValidateUpdate(&UpdateInput{Password: "abc123", ImageURLs: &tooMany})
	if ve == nil || ve.Code != CodeInvalidImageCount {
		t.Fatalf("expected %s, got %v", CodeInvalidImageCount, ve)
	}
}

func TestValidateUpdatePhone(t *testing.T) {
	phone := "(11) 91234-5678"
	in := UpdateInput{Password: "abc123", Whatsapp: &phone}
	if ve := ValidateUpdate(&in); ve != nil {
		t.Fatalf("formatted phone rejected: %q", ve.Code)
	}
	if *in.Whatsapp != "11912345678" {
		t.Fatalf("expected 11912345678, got %q", *in.Whatsapp)
	}

	bad := "99"
	ve := ValidateUpdate(&UpdateInput{Password: "abc123", Whatsapp: &bad})
	if ve == nil || ve.Code != CodeInvalidPhone {
		t.Fatalf("expected %s, got %v", CodeInvalidPhone, ve)
	}
}
