package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Erickrodrigues05/angohire/internal/domain/model"
	"github.com/Erickrodrigues05/angohire/internal/server/http/dto"
)

// ResumeHandler serves resume analysis and the template catalog.
type ResumeHandler struct {
	facade ResumeFacade
}

// NewResumeHandler constructs ResumeHandler.
func NewResumeHandler(facade ResumeFacade) *ResumeHandler {
	return &ResumeHandler{facade: facade}
}

// Analyze handles POST /api/resume/analyze.
func (h *ResumeHandler) Analyze(c *gin.Context) {
	var data model.ResumeData
	if err := c.ShouldBindJSON(&data); err != nil {
		abortError(c, http.StatusBadRequest, "Dados inválidos")
		return
	}

	score, recommendations := h.facade.AnalyzeResume(data)
	c.JSON(http.StatusOK, dto.AnalyzeResponse{
		Success:         true,
		Score:           score,
		Recommendations: recommendations,
	})
}

// Templates handles GET /api/templates.
func (h *ResumeHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TemplatesResponse{
		Success:   true,
		Templates: h.facade.Templates(),
	})
}
