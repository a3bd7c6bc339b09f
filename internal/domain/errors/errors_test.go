package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"unauthorized", ErrUnauthorized},
		{"invalid package", ErrInvalidPackage},
		{"invalid transition", ErrInvalidTransition},
		{"generation failed", ErrGenerationFailed},
		{"upload failed", ErrUploadFailed},
		{"notification failed", ErrNotificationFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match %v", tc.err)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidation(map[string]string{"personalInfo.email": "required"})
	ve, ok := IsValidation(fmt.Errorf("wrap: %w", err))
	if !ok {
		t.Fatal("expected IsValidation to match")
	}
	if ve.Fields["personalInfo.email"] != "required" {
		t.Fatalf("expected field detail preserved, got %v", ve.Fields)
	}
	if !strings.Contains(err.Error(), "personalInfo.email: required") {
		t.Fatalf("expected field detail in message, got %q", err.Error())
	}
	if _, ok := IsValidation(ErrNotFound); ok {
		t.Fatal("sentinel must not match validation error")
	}

	empty := NewValidation(nil)
	if empty.Error() != "validation failed" {
		t.Fatalf("unexpected message %q", empty.Error())
	}
}
