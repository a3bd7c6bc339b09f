package usecase

import (
	"testing"

	domainErrors "github.com/Erickrodrigues05/angohire/internal/domain/errors"
	"github.com/Erickrodrigues05/angohire/internal/domain/model"
)

func TestValidateCreateOrderAccepts(t *testing.T) {
	if err := ValidateCreateOrder(model.PackageStandard, fullResumeData()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateCreateOrderCollectsFields(t *testing.T) {
	err := ValidateCreateOrder(model.Package("vip"), model.ResumeData{})
	validationErr, ok := domainErrors.IsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	for _, field := range []string{
		"package",
		"personalInfo.fullName",
		"personalInfo.email",
		"personalInfo.phone",
		"personalInfo.location",
		"personalInfo.professionalTitle",
	} {
		if _, present := validationErr.Fields[field]; !present {
			t.Fatalf("expected field %q reported, got %v", field, validationErr.Fields)
		}
	}
}

func TestValidateCreateOrderEmail(t *testing.T) {
	data := fullResumeData()
	for _, email := range []string{"", "plainaddress", "@host", "user@", "user name@host"} {
		data.PersonalInfo.Email = email
		err := ValidateCreateOrder(model.PackageBasic, data)
		validationErr, ok := domainErrors.IsValidation(err)
		if !ok {
			t.Fatalf("expected validation error for %q, got %v", email, err)
		}
		if _, present := validationErr.Fields["personalInfo.email"]; !present {
			t.Fatalf("expected email rejected for %q", email)
		}
	}
}
