package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/Erickrodrigues05/angohire/internal/domain/errors"
	"github.com/Erickrodrigues05/angohire/internal/domain/model"
	testhelpers "github.com/Erickrodrigues05/angohire/internal/test"
)

const testTemplate = "modern-professional"

func TestCreateOrderPaidPackage(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo, testTemplate)

	order, err := uc.Create(context.Background(), CreateOrderInput{
		Package: model.PackageStandard,
		Data:    fullResumeData(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID == "" {
		t.Fatal("expected generated order id")
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if order.Price != 2790 {
		t.Fatalf("expected standard price, got %d", order.Price)
	}
	if order.Template != testTemplate {
		t.Fatalf("expected default template, got %q", order.Template)
	}
	if order.PaidAt != nil {
		t.Fatal("paid package must not be marked paid at creation")
	}
	if _, ok := repo.Orders[order.ID]; !ok {
		t.Fatal("expected order persisted")
	}
}

func TestCreateOrderFreePackage(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo, testTemplate)

	order, err := uc.Create(context.Background(), CreateOrderInput{
		Package:  model.PackageBasic,
		Template: "classic",
		Data:     fullResumeData(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusProcessing {
		t.Fatalf("expected free order to start processing, got %s", order.Status)
	}
	if order.PaidAt == nil {
		t.Fatal("expected free order marked paid at creation")
	}
	if order.Price != 0 {
		t.Fatalf("expected zero price, got %d", order.Price)
	}
	if order.Template != "classic" {
		t.Fatalf("expected requested template kept, got %q", order.Template)
	}
}

func TestCreateOrderRejectsInvalidInput(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo, testTemplate)

	_, err := uc.Create(context.Background(), CreateOrderInput{
		Package: model.Package("vip"),
		Data:    model.ResumeData{},
	})
	if _, ok := domainErrors.IsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.Orders) != 0 {
		t.Fatal("invalid submission must not be persisted")
	}
}

func TestConfirmPaymentPending(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	repo.Seed(&model.Order{ID: "o-1", Status: model.OrderStatusPending})
	uc := NewOrderUseCase(repo, testTemplate)

	order, err := uc.ConfirmPayment(context.Background(), "o-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusProcessing {
		t.Fatalf("expected processing, got %s", order.Status)
	}
	if order.PaidAt == nil {
		t.Fatal("expected paidAt recorded")
	}
}

func TestConfirmPaymentFailedOrderRetries(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	repo.Seed(&model.Order{ID: "o-1", Status: model.OrderStatusFailed, Attempts: 3})
	uc := NewOrderUseCase(repo, testTemplate)

	order, err := uc.ConfirmPayment(context.Background(), "o-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusProcessing {
		t.Fatalf("expected failed order re-opened, got %s", order.Status)
	}
}

func TestConfirmPaymentIdempotent(t *testing.T) {
	for _, status := range []model.OrderStatus{model.OrderStatusProcessing, model.OrderStatusCompleted} {
		repo := testhelpers.NewOrderRepositoryStub()
		repo.Seed(&model.Order{ID: "o-1", Status: status})
		uc := NewOrderUseCase(repo, testTemplate)

		order, err := uc.ConfirmPayment(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", status, err)
		}
		if order.Status != status {
			t.Fatalf("expected %s unchanged, got %s", status, order.Status)
		}
	}
}

func TestConfirmPaymentCancelledOrder(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	repo.Seed(&model.Order{ID: "o-1", Status: model.OrderStatusCancelled})
	uc := NewOrderUseCase(repo, testTemplate)

	_, err := uc.ConfirmPayment(context.Background(), "o-1")
	if !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestConfirmPaymentMissingOrder(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo, testTemplate)

	_, err := uc.ConfirmPayment(context.Background(), "missing")
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCancelOrder(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	repo.Seed(&model.Order{ID: "o-1", Status: model.OrderStatusPending})
	uc := NewOrderUseCase(repo, testTemplate)

	if err := uc.Cancel(context.Background(), "o-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.Orders["o-1"].Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", repo.Orders["o-1"].Status)
	}

	if err := uc.Cancel(context.Background(), "o-1"); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected terminal order to reject cancel, got %v", err)
	}
}

func TestListOrders(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	now := time.Now()
	repo.Seed(&model.Order{ID: "o-1", Status: model.OrderStatusPending, CreatedAt: now})
	repo.Seed(&model.Order{ID: "o-2", Status: model.OrderStatusCompleted, CreatedAt: now})
	uc := NewOrderUseCase(repo, testTemplate)

	orders, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
}
