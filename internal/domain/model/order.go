package model

import "time"

// OrderStatus describes order fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// transitions enumerates every legal status change. Completed and
// cancelled are terminal; failed orders can be retried by an administrator.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusFailed, OrderStatusCancelled},
	OrderStatusFailed:     {OrderStatusProcessing, OrderStatusCancelled},
}

// CanTransitionTo reports whether moving to next is a legal transition.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leads out of the status.
func (s OrderStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// Order describes a commercial request for one generated resume document.
type Order struct {
	ID             string
	Package        Package
	Template       string
	Price          int64
	ClientData     ResumeData
	Status         OrderStatus
	ArtifactURL    *string
	Attempts       int
	CreatedAt      time.Time
	PaidAt         *time.Time
	PDFGeneratedAt *time.Time
	CompletedAt    *time.Time
	UpdatedAt      time.Time
}

// RecipientEmail returns the address notifications are delivered to.
func (o *Order) RecipientEmail() string {
	return o.ClientData.PersonalInfo.Email
}

// RecipientName returns the client display name used in notifications.
func (o *Order) RecipientName() string {
	return o.ClientData.PersonalInfo.FullName
}
