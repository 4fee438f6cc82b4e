package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func TestPlaceOrder_Created(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	orders := deps.Orders.(*stubOrderService)
	orders.order = &domain.Order{
		ID:     "o1",
		UserID: "user-1",
		Status: domain.StatusPending,
		Total:  decimal.RequireFromString("39.99"),
	}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"shippingAddress":"Shipping address"}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, deps.Tokens, "user-1", domain.RoleUser))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if orders.lastUserID != "user-1" {
		t.Fatalf("expected order placed for user-1, got %q", orders.lastUserID)
	}
	if !strings.Contains(rec.Body.String(), `"status":"PENDING"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.Orders.(*stubOrderService).err = domain.ErrCartEmpty
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"shippingAddress":"Shipping address"}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, deps.Tokens, "user-1", domain.RoleUser))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Shopping cart is empty") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestPlaceOrder_MissingAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, deps.Tokens, "user-1", domain.RoleUser))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateOrderStatus_AdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"status":"SHIPPED"}`
	req := httptest.NewRequest(http.MethodPatch, "/orders/o1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, deps.Tokens, "user-1", domain.RoleUser))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestUpdateOrderStatus_Invalid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.Orders.(*stubOrderService).err = domain.ErrInvalidStatus
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"status":"delivered"}`
	req := httptest.NewRequest(http.MethodPatch, "/orders/o1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, deps.Tokens, "admin-1", domain.RoleAdmin))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateOrderStatus_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	orders := deps.Orders.(*stubOrderService)
	orders.order = &domain.Order{ID: "o1", Status: domain.StatusDelivered}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"status":"DELIVERED"}`
	req := httptest.NewRequest(http.MethodPatch, "/orders/o1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, deps.Tokens, "admin-1", domain.RoleAdmin))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if orders.lastStatus != "DELIVERED" {
		t.Fatalf("expected status DELIVERED passed through, got %q", orders.lastStatus)
	}
}

func TestOrderItemInfo_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.Orders.(*stubOrderService).err = domain.ErrNotFound
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodGet, "/orders/o1/items/missing", nil)
	req.Header.Set("Authorization", bearerFor(t, deps.Tokens, "user-1", domain.RoleUser))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
