package validation

import (
	"testing"

	"github.com/skillsenselab/restkit/errors"
)

type descriptorMeta struct {
	Title      string `json:"title" validate:"required"`
	Version    string `json:"version" validate:"required"`
	ContactURL string `json:"contactUrl" validate:"omitempty,url"`
}

func TestValidateStruct(t *testing.T) {
	m := descriptorMeta{Title: "Sessions API", Version: "1.0.0"}
	if err := Validate(m); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestValidateStructMissingRequired(t *testing.T) {
	m := descriptorMeta{Version: "1.0.0"}
	err := Validate(m)
	if err == nil {
		t.Fatal("expected validation error for missing title")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if appErr.Details["fields"] == nil {
		t.Error("expected per-field details")
	}
}

func TestValidateStructBadURL(t *testing.T) {
	m := descriptorMeta{Title: "t", Version: "v", ContactURL: "not a url"}
	if err := Validate(m); err == nil {
		t.Error("expected validation error for malformed url")
	}
}

func TestFieldValidator(t *testing.T) {
	v := New().
		Required("namespace", "").
		OneOf("format", "xml", "json", "yaml")

	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(v.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(v.Errors()))
	}
	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected AppError")
	}
}

func TestFieldValidatorClean(t *testing.T) {
	v := New().Required("namespace", "/api")
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}
	if v.Validate() != nil {
		t.Error("expected nil AppError")
	}
}

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"ContactURL": "contact_u_r_l",
		"Title":      "title",
		"baseURL":    "base_u_r_l",
	}
	for in, want := range cases {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
