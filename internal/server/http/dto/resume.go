package dto

import "github.com/Erickrodrigues05/angohire/internal/domain/model"

// AnalyzeResponse carries the ATS score with improvement hints.
type AnalyzeResponse struct {
	Success         bool     `json:"success"`
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`
}

// TemplatesResponse lists the resume layout catalog.
type TemplatesResponse struct {
	Success   bool             `json:"success"`
	Templates []model.Template `json:"templates"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
