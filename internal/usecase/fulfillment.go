package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	domainErrors "github.com/Erickrodrigues05/angohire/internal/domain/errors"
	"github.com/Erickrodrigues05/angohire/internal/domain/model"
	"github.com/Erickrodrigues05/angohire/internal/domain/repository"
)

// DocumentRenderer turns resume data and a template id into document bytes.
type DocumentRenderer interface {
	Render(ctx context.Context, data model.ResumeData, templateID string) ([]byte, error)
}

// ArtifactStore persists document bytes under a name and returns a public URL.
type ArtifactStore interface {
	Put(ctx context.Context, name string, document []byte) (string, error)
}

// Notifier delivers a message to a recipient address.
type Notifier interface {
	Send(to, subject, body string) error
}

// FulfillmentResult reports the outcome of a fulfillment run.
type FulfillmentResult struct {
	ArtifactURL      string
	NotificationSent bool
}

// FulfillmentService runs the render, store, complete, notify sequence
// for one order. Concurrent calls for the same order id collapse into a
// single execution.
type FulfillmentService struct {
	orders   repository.OrderRepository
	renderer DocumentRenderer
	store    ArtifactStore
	notifier Notifier
	logger   *slog.Logger
	group    singleflight.Group
}

// NewFulfillmentService constructs FulfillmentService.
func NewFulfillmentService(orders repository.OrderRepository, renderer DocumentRenderer, store ArtifactStore, notifier Notifier, logger *slog.Logger) *FulfillmentService {
	return &FulfillmentService{
		orders:   orders,
		renderer: renderer,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Fulfill generates and delivers the document for a processing order.
// A completed order returns its existing artifact URL, so repeated
// payment confirmations stay idempotent. Render and upload failures
// leave the order in processing for a safe retry.
func (s *FulfillmentService) Fulfill(ctx context.Context, orderID string) (*FulfillmentResult, error) {
	result, err, _ := s.group.Do(orderID, func() (any, error) {
		return s.fulfill(ctx, orderID)
	})
	if err != nil {
		return nil, err
	}
	return result.(*FulfillmentResult), nil
}

func (s *FulfillmentService) fulfill(ctx context.Context, orderID string) (*FulfillmentResult, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == model.OrderStatusCompleted && order.ArtifactURL != nil {
		return &FulfillmentResult{ArtifactURL: *order.ArtifactURL}, nil
	}
	if order.Status != model.OrderStatusProcessing {
		return nil, fmt.Errorf("%w: order %s is %s", domainErrors.ErrInvalidTransition, orderID, order.Status)
	}

	data := SanitizeResumeData(order.ClientData)

	document, err := s.renderer.Render(ctx, data, order.Template)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s-%d.pdf", order.ID, time.Now().UnixNano())
	artifactURL, err := s.store.Put(ctx, name, document)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Complete(ctx, order.ID, artifactURL, time.Now()); err != nil {
		return nil, err
	}

	result := &FulfillmentResult{ArtifactURL: artifactURL}
	subject, body := deliveryMessage(order.RecipientName(), artifactURL)
	if err := s.notifier.Send(order.RecipientEmail(), subject, body); err != nil {
		s.logger.Warn("notification failed",
			slog.String("order", order.ID),
			slog.String("to", order.RecipientEmail()),
			slog.String("error", err.Error()),
		)
	} else {
		result.NotificationSent = true
	}

	s.logger.Info("order fulfilled",
		slog.String("order", order.ID),
		slog.String("artifact_url", artifactURL),
		slog.Bool("notified", result.NotificationSent),
	)
	return result, nil
}

// deliveryMessage composes the resume delivery email for a client.
func deliveryMessage(clientName, artifactURL string) (subject, body string) {
	subject = "O seu Currículo Profissional AngoHire chegou!"
	body = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
<h2>Olá, %s!</h2>
<p>O seu currículo profissional foi gerado com sucesso.</p>
<p>Este é o primeiro passo para conquistar a vaga dos seus sonhos. Não esqueça de sempre adaptar o currículo para cada vaga!</p>
<p><a href="%s">Baixar Currículo PDF</a></p>
<p>Boa sorte!<br>Equipa AngoHire</p>
</div>`, clientName, artifactURL)
	return subject, body
}
