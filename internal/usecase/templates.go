package usecase

import "github.com/Erickrodrigues05/angohire/internal/domain/model"

var templateCatalog = []model.Template{
	{
		ID:             "modern-professional",
		Name:           "Moderno & Profissional",
		Description:    "Layout limpo e profissional, ideal para qualquer setor",
		Category:       "professional",
		RecommendedFor: "Profissionais com 3-10 anos de experiência",
	},
	{
		ID:             "entry-level",
		Name:           "Entrada de Carreira",
		Description:    "Foco em educação e competências para recém-formados",
		Category:       "entry-level",
		RecommendedFor: "Recém-formados e first-timers",
	},
	{
		ID:             "executive-premium",
		Name:           "Executivo Premium",
		Description:    "Design sofisticado para cargos de liderança",
		Category:       "executive",
		RecommendedFor: "Cargos seniores e executivos",
		Status:         "Em breve",
	},
	{
		ID:             "creative-professional",
		Name:           "Profissional Criativo",
		Description:    "Design elegante para áreas criativas",
		Category:       "creative",
		RecommendedFor: "Marketing, Design, Comunicação",
		Status:         "Em breve",
	},
	{
		ID:             "technical-specialist",
		Name:           "Especialista Técnico",
		Description:    "Foco em skills técnicas e certificações",
		Category:       "technical",
		RecommendedFor: "Desenvolvedores, Engenheiros, Analistas",
		Status:         "Em breve",
	},
}

// Templates returns the catalog of resume layouts.
func Templates() []model.Template {
	out := make([]model.Template, len(templateCatalog))
	copy(out, templateCatalog)
	return out
}
