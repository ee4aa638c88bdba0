package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"topup_store/internal/adapter/http/handlers"
	"topup_store/internal/adapter/http/handlers/mocks"
	"topup_store/internal/domain/entities"
	"topup_store/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIOrderUseCase, *mocks.MockISettingsUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockIOrderUseCase(ctrl)
	settings := mocks.NewMockISettingsUseCase(ctrl)
	r := NewRouter("/api", UseCases{
		Orders:     orders,
		Catalog:    mocks.NewMockICatalogUseCase(ctrl),
		Settings:   settings,
		Storefront: mocks.NewMockIStorefrontUseCase(ctrl),
	})
	return r, orders, settings
}

func TestNewRouter_Ping(t *testing.T) {
	r, _, _ := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_TransactionStatusRoute(t *testing.T) {
	r, orders, _ := newTestRouter(t)
	orders.EXPECT().GetStatus(gomock.Any(), "DEV-T1").Return(entities.Order{RefID: "DEV-T1", Status: entities.OrderStatusUnpaid}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/transaction/DEV-T1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_AdminRoutesRequirePassword(t *testing.T) {
	r, orders, settings := newTestRouter(t)
	settings.EXPECT().Authenticate(gomock.Any(), "").Return(usecase.ErrPasswordRequired)
	settings.EXPECT().Authenticate(gomock.Any(), "secret").Return(nil)
	orders.EXPECT().ListRecent(gomock.Any(), 0).Return(nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/transactions", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without password, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/transactions", nil)
	req.Header.Set(handlers.AdminPasswordHeader, "secret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with password, got %d", w.Code)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	r, _, _ := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
