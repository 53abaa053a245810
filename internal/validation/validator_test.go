package validation

import (
	"errors"
	"foodgram/internal/domainerr"
	"testing"
)

type testLine struct {
	ID uint `json:"id" validate:"required"`
}

type testRequest struct {
	Name  string     `json:"name" validate:"required,max=10"`
	Email string     `json:"email" validate:"omitempty,email"`
	Lines []testLine `json:"ingredients" validate:"min=1,dive"`
}

func TestValidateSuccess(t *testing.T) {
	v := New()
	req := testRequest{Name: "soup", Email: "cook@example.com", Lines: []testLine{{ID: 1}}}
	if err := v.Validate(req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       testRequest
		wantField string
	}{
		{name: "missing name", req: testRequest{Lines: []testLine{{ID: 1}}}, wantField: "name"},
		{name: "name too long", req: testRequest{Name: "a very long name", Lines: []testLine{{ID: 1}}}, wantField: "name"},
		{name: "bad email", req: testRequest{Name: "soup", Email: "nope", Lines: []testLine{{ID: 1}}}, wantField: "email"},
		{name: "no lines", req: testRequest{Name: "soup"}, wantField: "ingredients"},
		{name: "line without id", req: testRequest{Name: "soup", Lines: []testLine{{}}}, wantField: "ingredients[0].id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if !errors.Is(err, domainerr.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var derr *domainerr.Error
			if !errors.As(err, &derr) {
				t.Fatalf("expected *domainerr.Error, got %T", err)
			}
			if derr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", derr.Field, tt.wantField)
			}
			details, ok := derr.Details.(map[string]string)
			if !ok || details[tt.wantField] == "" {
				t.Errorf("expected details for %q, got %#v", tt.wantField, derr.Details)
			}
		})
	}
}
