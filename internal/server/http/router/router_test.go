package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pawmart/pawmart/internal/domain/model"
	pkgAuth "github.com/pawmart/pawmart/internal/pkg/auth"
	"github.com/pawmart/pawmart/internal/server/http/handlers"
	testhelpers "github.com/pawmart/pawmart/internal/test"
)

func newEngine(facade handlers.ShopFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, logger)
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := newEngine(&testhelpers.StoreFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	req.Header.Set("Accept-Encoding", "identity")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for product list, got %d", resp.Code)
	}

	body, _ := json.Marshal(map[string]string{"name": "Dana", "email": "dana@example.com", "subject": "Hours", "message": "Open Sunday?"})
	req = httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Encoding", "identity")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for contact form, got %d", resp.Code)
	}
}

func TestSetupRegisterAndAuthedRoutes(t *testing.T) {
	facade := &testhelpers.StoreFacadeStub{}
	engine := newEngine(facade)

	body, _ := json.Marshal(map[string]string{"name": "Dana", "email": "dana@example.com", "password": "secret-pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Encoding", "identity")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/order", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Accept-Encoding", "identity")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/order", nil)
	req.Header.Set("Accept-Encoding", "identity")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}

func TestSetupAdminGate(t *testing.T) {
	facade := &testhelpers.StoreFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{ParseFn: func(token string) (pkgAuth.Identity, error) {
			if token == "admin-token" {
				return pkgAuth.Identity{UserID: "admin-1", Role: model.RoleAdmin}, nil
			}
			return pkgAuth.Identity{UserID: "user-1", Role: model.RoleUser}, nil
		}},
	}
	engine := newEngine(facade)

	body, _ := json.Marshal(map[string]any{"name": "Chew Toy", "category": "toys", "price": 1500})

	req := httptest.NewRequest(http.MethodPost, "/api/product", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer user-token")
	req.Header.Set("Accept-Encoding", "identity")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/product", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer admin-token")
	req.Header.Set("Accept-Encoding", "identity")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for admin, got %d", resp.Code)
	}
}

func TestSetupWebhookBypassesCompression(t *testing.T) {
	received := make(chan []byte, 1)
	facade := &testhelpers.StoreFacadeStub{
		OrderFacadeStub: testhelpers.OrderFacadeStub{ProcessEventFn: func(ctx context.Context, body []byte, signature string) error {
			received <- body
			return nil
		}},
	}
	engine := newEngine(facade)

	payload := []byte(`{"id":"evt_1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for webhook, got %d", resp.Code)
	}

	select {
	case body := <-received:
		if !bytes.Equal(body, payload) {
			t.Fatalf("webhook body was altered: %q", body)
		}
	default:
		t.Fatal("webhook never reached the facade")
	}
}

var _ handlers.ShopFacade = (*testhelpers.StoreFacadeStub)(nil)
