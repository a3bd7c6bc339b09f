package dto

import (
	"time"

	"github.com/Erickrodrigues05/angohire/internal/domain/model"
)

// CreateOrderRequest is the order submission payload. Resume fields sit
// at the top level next to package and template.
type CreateOrderRequest struct {
	Package  string `json:"package"`
	Template string `json:"template"`
	model.ResumeData
}

// CreateOrderResponse confirms creation and carries the manual payment
// instructions for paid packages.
type CreateOrderResponse struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"orderId"`
	IsFree      bool   `json:"isFree"`
	Message     string `json:"message"`
	BankAccount string `json:"bankAccount,omitempty"`
	WhatsApp    string `json:"whatsapp,omitempty"`
}

// OrderResponse is the serialized view of an order.
type OrderResponse struct {
	ID             string           `json:"id"`
	Package        string           `json:"package"`
	Template       string           `json:"template"`
	Price          int64            `json:"price"`
	Status         string           `json:"status"`
	ClientData     model.ResumeData `json:"clientData"`
	PDFURL         *string          `json:"pdfUrl,omitempty"`
	Attempts       int              `json:"attempts,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	PaidAt         *time.Time       `json:"paidAt,omitempty"`
	PDFGeneratedAt *time.Time       `json:"pdfGeneratedAt,omitempty"`
	CompletedAt    *time.Time       `json:"completedAt,omitempty"`
}

// OrdersResponse wraps the admin order listing.
type OrdersResponse struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
}

// OrderDetailResponse wraps a single order lookup.
type OrderDetailResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}

// ConfirmPaymentResponse reports the fulfillment outcome, including
// whether the delivery email went out.
type ConfirmPaymentResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	PDFURL           string `json:"pdfUrl"`
	NotificationSent bool   `json:"notificationSent"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
