package usecase

import (
	"strings"
	"testing"

	"github.com/Erickrodrigues05/angohire/internal/domain/model"
)

func fullResumeData() model.ResumeData {
	return model.ResumeData{
		PersonalInfo: model.PersonalInfo{
			FullName:          "Joaquim dos Santos",
			Email:             "joaquim@example.com",
			Phone:             "+244912345678",
			Location:          "Luanda, Angola",
			ProfessionalTitle: "Engenheiro de Software",
			LinkedIn:          "https://linkedin.com/in/joaquim",
		},
		Summary: "Gestor de projetos com experiência em liderança de equipes e desenvolvimento de software para o mercado angolano.",
		Experience: []model.Experience{
			{
				Company:   "TechAngola",
				Position:  "Engenheiro de Software",
				StartDate: "2020-01",
				EndDate:   "Atual",
				Description: model.DescriptionLines{
					"Desenvolvi e mantive serviços de backend utilizados por milhares de clientes em Angola",
					"Liderei uma equipe de quatro programadores",
				},
			},
		},
		Education: []model.Education{
			{
				Institution: "Universidade Agostinho Neto",
				Degree:      "Licenciatura",
				Field:       "Engenharia Informática",
				StartDate:   "2014-09",
				EndDate:     "2018-07",
			},
		},
		Skills: []model.SkillGroup{
			{Category: "Técnicas", Skills: []string{"Go", "PostgreSQL", "Docker"}},
			{Category: "Soft Skills", Skills: []string{"Comunicação", "Liderança", "Trabalho em equipe"}},
		},
	}
}

func TestScoreFullResume(t *testing.T) {
	if score := Score(fullResumeData()); score != 100 {
		t.Fatalf("expected full resume to score 100, got %d", score)
	}
}

func TestScoreEmptyResume(t *testing.T) {
	if score := Score(model.ResumeData{}); score != 0 {
		t.Fatalf("expected empty resume to score 0, got %d", score)
	}
}

func TestScoreSummaryBounds(t *testing.T) {
	data := model.ResumeData{Summary: strings.Repeat("a", 50)}
	if score := Score(data); score != summaryPoints {
		t.Fatalf("expected 50-rune summary to earn %d points, got %d", summaryPoints, score)
	}

	data.Summary = strings.Repeat("a", 49)
	if score := Score(data); score != 0 {
		t.Fatalf("expected 49-rune summary to earn nothing, got %d", score)
	}

	data.Summary = strings.Repeat("a", 301)
	if score := Score(data); score != 0 {
		t.Fatalf("expected 301-rune summary to earn nothing, got %d", score)
	}
}

func TestHasDetailedExperience(t *testing.T) {
	long := strings.Repeat("x", 51)
	cases := []struct {
		name       string
		experience []model.Experience
		want       bool
	}{
		{"empty list", nil, false},
		{"single line", []model.Experience{{Description: model.DescriptionLines{long}}}, false},
		{"two short lines", []model.Experience{{Description: model.DescriptionLines{"a", "b"}}}, false},
		{"two lines one long", []model.Experience{{Description: model.DescriptionLines{long, "b"}}}, true},
		{
			"one weak entry fails all",
			[]model.Experience{
				{Description: model.DescriptionLines{long, "b"}},
				{Description: model.DescriptionLines{"only"}},
			},
			false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hasDetailedExperience(tc.experience); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCountKeywordGroups(t *testing.T) {
	data := model.ResumeData{Summary: "Responsável pela gestão e análise, sempre focado em resultados"}
	if got := countKeywordGroups(data); got != 3 {
		t.Fatalf("expected 3 keyword groups, got %d", got)
	}

	data.Summary = "Focused on management, analysis and results"
	if got := countKeywordGroups(data); got != 3 {
		t.Fatalf("expected english variants to count, got %d", got)
	}

	data.Summary = "GESTÃO"
	if got := countKeywordGroups(data); got != 1 {
		t.Fatalf("expected case-insensitive match, got %d", got)
	}
}

func TestHasOrganizedSkills(t *testing.T) {
	one := []model.SkillGroup{{Category: "A", Skills: []string{"x", "y", "z"}}}
	if hasOrganizedSkills(one) {
		t.Fatal("single group should not qualify")
	}
	thin := append(one, model.SkillGroup{Category: "B", Skills: []string{"x"}})
	if hasOrganizedSkills(thin) {
		t.Fatal("group with fewer than 3 skills should not qualify")
	}
	full := append(one, model.SkillGroup{Category: "B", Skills: []string{"x", "y", "z"}})
	if !hasOrganizedSkills(full) {
		t.Fatal("two groups of three skills should qualify")
	}
}

func TestScoreNeverDropsWhenSkillAdded(t *testing.T) {
	data := model.ResumeData{
		Skills: []model.SkillGroup{
			{Category: "Técnicas", Skills: []string{"Go", "SQL"}},
			{Category: "Soft Skills", Skills: []string{"Comunicação", "Liderança", "Negociação"}},
		},
	}
	before := Score(data)

	data.Skills[0].Skills = append(data.Skills[0].Skills, "Docker")
	after := Score(data)
	if after < before {
		t.Fatalf("adding a skill lowered the score from %d to %d", before, after)
	}
	if after != before+skillsPoints {
		t.Fatalf("expected third skill to complete the check, got %d then %d", before, after)
	}
}

func TestValidDate(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2020-01", true},
		{"1999-12", true},
		{"Atual", true},
		{"atual", true},
		{"Current", true},
		{"2020", false},
		{"jan 2020", false},
		{"2020-1", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := validDate(tc.date); got != tc.want {
			t.Fatalf("validDate(%q): expected %v, got %v", tc.date, tc.want, got)
		}
	}
}

func TestHasConsistentDates(t *testing.T) {
	if hasConsistentDates(model.ResumeData{}) {
		t.Fatal("resume without experience and education must fail the date check")
	}

	data := model.ResumeData{
		Experience: []model.Experience{{StartDate: "2020-01"}},
	}
	if !hasConsistentDates(data) {
		t.Fatal("omitted end date should be skipped")
	}

	data.Experience[0].EndDate = "yesterday"
	if hasConsistentDates(data) {
		t.Fatal("malformed end date must fail the check")
	}
}

func TestRecommendationsFullResume(t *testing.T) {
	data := fullResumeData()
	recs := Recommendations(data, Score(data))
	if len(recs) != 1 {
		t.Fatalf("expected single recommendation for full resume, got %d: %v", len(recs), recs)
	}
	if !strings.Contains(recs[0], "Excelente") {
		t.Fatalf("expected top-band message, got %q", recs[0])
	}
}

func TestRecommendationsWeakResume(t *testing.T) {
	data := model.ResumeData{
		Experience: []model.Experience{{Description: model.DescriptionLines{"uma linha"}}},
	}
	recs := Recommendations(data, Score(data))
	if len(recs) < 4 {
		t.Fatalf("expected multiple hints for weak resume, got %v", recs)
	}
	if !strings.Contains(recs[0], "melhorias significativas") {
		t.Fatalf("expected low-band message first, got %q", recs[0])
	}
}
