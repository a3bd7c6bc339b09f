package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Erickrodrigues05/angohire/internal/config"
	"github.com/Erickrodrigues05/angohire/internal/domain/model"
	pkgAuth "github.com/Erickrodrigues05/angohire/internal/pkg/auth"
	"github.com/Erickrodrigues05/angohire/internal/server/http/handlers"
	"github.com/Erickrodrigues05/angohire/internal/server/http/middleware"
	"github.com/Erickrodrigues05/angohire/internal/usecase"
)

type routerFacadeStub struct{}

func (routerFacadeStub) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error) {
	return &model.Order{ID: "o-1", Package: input.Package, Status: model.OrderStatusPending}, nil
}

func (routerFacadeStub) Orders(context.Context) ([]model.Order, error) {
	return []model.Order{{ID: "o-1", Status: model.OrderStatusPending}}, nil
}

func (routerFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	return &model.Order{ID: id, Status: model.OrderStatusPending}, nil
}

func (routerFacadeStub) ConfirmPayment(ctx context.Context, id string) (*model.Order, *usecase.FulfillmentResult, error) {
	url := "http://artifacts.local/resumes/" + id + ".pdf"
	return &model.Order{ID: id, Status: model.OrderStatusCompleted, ArtifactURL: &url},
		&usecase.FulfillmentResult{ArtifactURL: url}, nil
}

func (routerFacadeStub) CancelOrder(context.Context, string) error { return nil }

func (routerFacadeStub) AnalyzeResume(model.ResumeData) (int, []string) {
	return 75, []string{"Bom currículo!"}
}

func (routerFacadeStub) Templates() []model.Template { return usecase.Templates() }

func (routerFacadeStub) HealthCheck(context.Context) error { return nil }

var _ handlers.AngohireFacade = routerFacadeStub{}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{BankAccount: "005100002786460610174", AdminWhatsApp: "+244945625060"}
	return Setup(routerFacadeStub{}, pkgAuth.NewStaticVerifier("secret"), cfg, logger)
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := newTestEngine()

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for health, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/templates", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for templates, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/orders/o-1", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for order lookup, got %d", resp.Code)
	}
}

func TestSetupAdminRoutesRequireToken(t *testing.T) {
	engine := newTestEngine()

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/orders/list"},
		{http.MethodPost, "/api/orders/o-1/confirm-payment"},
		{http.MethodPost, "/api/orders/o-1/cancel"},
	} {
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(route.method, route.path, nil))
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s %s without token, got %d", route.method, route.path, resp.Code)
		}

		req := httptest.NewRequest(route.method, route.path, nil)
		req.Header.Set(middleware.AdminTokenHeader, "secret")
		resp = httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code == http.StatusUnauthorized {
			t.Fatalf("expected %s %s authorized with token, got 401", route.method, route.path)
		}
	}
}

func TestSetupListResponseShape(t *testing.T) {
	engine := newTestEngine()

	req := httptest.NewRequest(http.MethodGet, "/api/orders/list", nil)
	req.Header.Set(middleware.AdminTokenHeader, "secret")
	req.Header.Set("Accept-Encoding", "identity")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin list, got %d", resp.Code)
	}

	var out struct {
		Success bool `json:"success"`
		Orders  []struct {
			ID string `json:"id"`
		} `json:"orders"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Success || len(out.Orders) != 1 {
		t.Fatalf("unexpected response %+v", out)
	}
}
