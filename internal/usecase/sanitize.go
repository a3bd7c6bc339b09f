package usecase

import (
	"strings"

	"github.com/Erickrodrigues05/angohire/internal/domain/model"
)

// defaultSummary substitutes a missing professional summary so templates
// never render an empty block.
const defaultSummary = "Profissional dedicado e comprometido."

// SanitizeResumeData normalizes client data before scoring and
// rendering: missing summary gets a placeholder, nil collections become
// empty lists. Single free-text descriptions are already coerced into
// one-element lists at decode time.
func SanitizeResumeData(data model.ResumeData) model.ResumeData {
	if strings.TrimSpace(data.Summary) == "" {
		data.Summary = defaultSummary
	}

	if data.Experience == nil {
		data.Experience = []model.Experience{}
	}
	for i := range data.Experience {
		if data.Experience[i].Description == nil {
			data.Experience[i].Description = model.DescriptionLines{}
		}
	}

	if data.Education == nil {
		data.Education = []model.Education{}
	}
	if data.Skills == nil {
		data.Skills = []model.SkillGroup{}
	}

	return data
}
