package usecase

import "github.com/Erickrodrigues05/angohire/internal/domain/model"

// Recommendations produces human-readable improvement hints for the
// analyze endpoint, based on the computed ATS score and the raw data.
func Recommendations(data model.ResumeData, score int) []string {
	var recommendations []string

	switch {
	case score < 50:
		recommendations = append(recommendations, "O seu currículo precisa de melhorias significativas para passar pelos sistemas ATS")
	case score < 70:
		recommendations = append(recommendations, "O seu currículo está no caminho certo, mas ainda pode ser otimizado")
	case score < 85:
		recommendations = append(recommendations, "Bom currículo! Pequenos ajustes podem aumentar as suas chances")
	default:
		recommendations = append(recommendations, "Excelente! O seu currículo está otimizado para ATS")
	}

	if len([]rune(data.Summary)) < 50 {
		recommendations = append(recommendations, "Adicione um resumo profissional mais descritivo (mín. 50 caracteres)")
	}

	for _, exp := range data.Experience {
		if len(exp.Description) < 2 {
			recommendations = append(recommendations, "Adicione mais detalhes nas descrições de experiência (mín. 2 pontos por cargo)")
			break
		}
	}

	if len(data.Skills) < 2 {
		recommendations = append(recommendations, "Organize melhor as suas competências em categorias (Técnicas, Soft Skills, etc.)")
	}

	if data.PersonalInfo.LinkedIn == "" {
		recommendations = append(recommendations, "Considere adicionar o seu perfil LinkedIn para maior visibilidade")
	}

	return recommendations
}
