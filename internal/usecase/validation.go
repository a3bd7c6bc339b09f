package usecase

import (
	"strings"

	domainErrors "github.com/Erickrodrigues05/angohire/internal/domain/errors"
	"github.com/Erickrodrigues05/angohire/internal/domain/model"
)

// ValidateCreateOrder checks the order submission before any state is
// created. Package must belong to the fixed enumeration and the
// personal-info block must carry every required contact field.
func ValidateCreateOrder(pkg model.Package, data model.ResumeData) error {
	fields := map[string]string{}

	if !pkg.Valid() {
		fields["package"] = "unknown package"
	}

	info := data.PersonalInfo
	if len(strings.TrimSpace(info.FullName)) < 2 {
		fields["personalInfo.fullName"] = "required, at least 2 characters"
	}
	if !validEmail(info.Email) {
		fields["personalInfo.email"] = "valid email required"
	}
	if len(strings.TrimSpace(info.Phone)) < 9 {
		fields["personalInfo.phone"] = "required, at least 9 characters"
	}
	if len(strings.TrimSpace(info.Location)) < 2 {
		fields["personalInfo.location"] = "required, at least 2 characters"
	}
	if len(strings.TrimSpace(info.ProfessionalTitle)) < 2 {
		fields["personalInfo.professionalTitle"] = "required, at least 2 characters"
	}

	if len(fields) > 0 {
		return domainErrors.NewValidation(fields)
	}
	return nil
}

func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}
