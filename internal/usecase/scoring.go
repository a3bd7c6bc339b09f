package usecase

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Erickrodrigues05/angohire/internal/domain/model"
)

// Point weights of the eight ATS checks. They sum to exactly 100.
const (
	summaryPoints    = 10
	experiencePoints = 20
	keywordPoints    = 15
	educationPoints  = 10
	skillsPoints     = 15
	contactPoints    = 10
	actionVerbPoints = 10
	datePoints       = 10
)

// keywordGroups lists relevant resume keywords. Each group holds the
// deployed-locale term and its English equivalent; a group counts once
// no matter how many of its variants appear.
var keywordGroups = [][]string{
	{"gestão", "management"},
	{"desenvolvimento", "development"},
	{"análise", "analysis"},
	{"liderança", "leadership"},
	{"projeto", "project"},
	{"equipe", "team"},
	{"resultado", "results"},
}

// actionVerbs are accepted in the deployed locale and in English.
var actionVerbs = []string{
	"desenvolvi", "gerenciei", "implementei", "liderei", "criei", "otimizei", "aumentei", "reduzi",
	"developed", "managed", "implemented", "led", "created", "optimized", "increased", "reduced",
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Score computes the 0-100 ATS fitness score for a resume. It is pure
// and never fails: malformed or missing optional data simply earns no
// points for the corresponding check.
func Score(data model.ResumeData) int {
	score := 0

	if length := len([]rune(data.Summary)); length >= 50 && length <= 300 {
		score += summaryPoints
	}

	if hasDetailedExperience(data.Experience) {
		score += experiencePoints
	}

	if countKeywordGroups(data) >= 3 {
		score += keywordPoints
	}

	if hasCompleteEducation(data.Education) {
		score += educationPoints
	}

	if hasOrganizedSkills(data.Skills) {
		score += skillsPoints
	}

	info := data.PersonalInfo
	if info.Email != "" && info.Phone != "" && info.Location != "" {
		score += contactPoints
	}

	if usesActionVerbs(data.Experience) {
		score += actionVerbPoints
	}

	if hasConsistentDates(data) {
		score += datePoints
	}

	return score
}

func hasDetailedExperience(experience []model.Experience) bool {
	if len(experience) == 0 {
		return false
	}
	for _, exp := range experience {
		if len(exp.Description) < 2 {
			return false
		}
		long := false
		for _, line := range exp.Description {
			if len([]rune(line)) > 50 {
				long = true
				break
			}
		}
		if !long {
			return false
		}
	}
	return true
}

func countKeywordGroups(data model.ResumeData) int {
	serialized, err := json.Marshal(data)
	if err != nil {
		return 0
	}
	text := strings.ToLower(string(serialized))

	count := 0
	for _, group := range keywordGroups {
		for _, variant := range group {
			if strings.Contains(text, variant) {
				count++
				break
			}
		}
	}
	return count
}

func hasCompleteEducation(education []model.Education) bool {
	if len(education) == 0 {
		return false
	}
	for _, edu := range education {
		if edu.Degree == "" || edu.Field == "" {
			return false
		}
	}
	return true
}

func hasOrganizedSkills(skills []model.SkillGroup) bool {
	if len(skills) < 2 {
		return false
	}
	for _, group := range skills {
		if len(group.Skills) < 3 {
			return false
		}
	}
	return true
}

func usesActionVerbs(experience []model.Experience) bool {
	for _, exp := range experience {
		for _, line := range exp.Description {
			lowered := strings.ToLower(line)
			for _, verb := range actionVerbs {
				if strings.Contains(lowered, verb) {
					return true
				}
			}
		}
	}
	return false
}

// validDate accepts YYYY-MM or the current-position sentinel.
func validDate(date string) bool {
	if datePattern.MatchString(date) {
		return true
	}
	switch strings.ToLower(date) {
	case "atual", "current":
		return true
	}
	return false
}

func hasConsistentDates(data model.ResumeData) bool {
	if len(data.Experience) == 0 && len(data.Education) == 0 {
		return false
	}
	var dates []string
	for _, exp := range data.Experience {
		dates = append(dates, exp.StartDate)
		if exp.EndDate != "" {
			dates = append(dates, exp.EndDate)
		}
	}
	for _, edu := range data.Education {
		dates = append(dates, edu.StartDate)
		if edu.EndDate != "" {
			dates = append(dates, edu.EndDate)
		}
	}
	for _, date := range dates {
		if !validDate(date) {
			return false
		}
	}
	return true
}
