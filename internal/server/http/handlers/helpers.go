package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Erickrodrigues05/angohire/internal/domain/model"
	"github.com/Erickrodrigues05/angohire/internal/server/http/dto"
)

func abortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:             order.ID,
		Package:        string(order.Package),
		Template:       order.Template,
		Price:          order.Price,
		Status:         string(order.Status),
		ClientData:     order.ClientData,
		PDFURL:         order.ArtifactURL,
		Attempts:       order.Attempts,
		CreatedAt:      order.CreatedAt,
		PaidAt:         order.PaidAt,
		PDFGeneratedAt: order.PDFGeneratedAt,
		CompletedAt:    order.CompletedAt,
	}
}
