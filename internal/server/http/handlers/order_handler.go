package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Erickrodrigues05/angohire/internal/config"
	domainErrors "github.com/Erickrodrigues05/angohire/internal/domain/errors"
	"github.com/Erickrodrigues05/angohire/internal/domain/model"
	"github.com/Erickrodrigues05/angohire/internal/server/http/dto"
	"github.com/Erickrodrigues05/angohire/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade      OrderFacade
	bankAccount string
	whatsApp    string
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		facade:      facade,
		bankAccount: cfg.BankAccount,
		whatsApp:    cfg.AdminWhatsApp,
	}
}

// Create handles POST /api/orders/create.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Dados inválidos")
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		Package:  model.Package(req.Package),
		Template: req.Template,
		Data:     req.ResumeData,
	})
	if err != nil {
		if ve, ok := domainErrors.IsValidation(err); ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Dados inválidos",
				Details: ve.Fields,
			})
			return
		}
		if errors.Is(err, domainErrors.ErrInvalidPackage) {
			abortError(c, http.StatusBadRequest, "Pacote inválido")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erro ao processar pedido")
		return
	}

	resp := dto.CreateOrderResponse{
		Success: true,
		OrderID: order.ID,
		IsFree:  order.Package.Free(),
		Message: "Pedido criado com sucesso!",
	}
	if resp.IsFree {
		resp.Message = "Pedido criado com sucesso! O seu currículo está a ser gerado."
	} else {
		resp.BankAccount = h.bankAccount
		resp.WhatsApp = h.whatsApp
	}

	c.JSON(http.StatusOK, resp)
}

// List handles GET /api/orders/list.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		abortError(c, http.StatusInternalServerError, "Erro ao buscar pedidos")
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, dto.OrdersResponse{Success: true, Orders: response})
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortError(c, http.StatusNotFound, "Pedido não encontrado")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erro ao buscar pedido")
		return
	}

	c.JSON(http.StatusOK, dto.OrderDetailResponse{Success: true, Order: toOrderResponse(*order)})
}

// ConfirmPayment handles POST /api/orders/:id/confirm-payment.
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	_, result, err := h.facade.ConfirmPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			abortError(c, http.StatusNotFound, "Pedido não encontrado")
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			abortError(c, http.StatusConflict, "Pedido não pode ser confirmado neste estado")
		case errors.Is(err, domainErrors.ErrGenerationFailed), errors.Is(err, domainErrors.ErrUploadFailed):
			abortError(c, http.StatusBadGateway, "Erro ao gerar o currículo")
		default:
			abortError(c, http.StatusInternalServerError, "Erro ao processar confirmação")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmPaymentResponse{
		Success:          true,
		Message:          "Pagamento confirmado e PDF gerado!",
		PDFURL:           result.ArtifactURL,
		NotificationSent: result.NotificationSent,
	})
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	if err := h.facade.CancelOrder(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			abortError(c, http.StatusNotFound, "Pedido não encontrado")
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			abortError(c, http.StatusConflict, "Pedido já foi finalizado")
		default:
			abortError(c, http.StatusInternalServerError, "Erro ao cancelar pedido")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// DownloadPDF handles GET /api/orders/:id/download-pdf.
func (h *OrderHandler) DownloadPDF(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortError(c, http.StatusNotFound, "Pedido não encontrado")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erro ao baixar PDF")
		return
	}
	if order.Status != model.OrderStatusCompleted || order.ArtifactURL == nil {
		abortError(c, http.StatusNotFound, "PDF não encontrado")
		return
	}

	c.Redirect(http.StatusFound, *order.ArtifactURL)
}
