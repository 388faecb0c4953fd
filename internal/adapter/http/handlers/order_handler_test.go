package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"nexus_settlement/internal/adapter/http/handlers/mocks"
	"nexus_settlement/internal/domain/entities"
	"nexus_settlement/internal/usecase"
	"nexus_settlement/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIOrderUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(uc)

	r := gin.New()
	g := r.Group("/api/v1/orders")
	g.POST("", h.Place)
	g.GET("", h.ListByUser)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id/status", h.UpdateStatus)
	return r, uc
}

func sampleOrder() entities.Order {
	placed := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	return entities.NewOrder("o-1", "fr-1", "p-1", "Fertilizer", 4, decimal.RequireFromString("25.00"), "funder-1", "supplier-1", placed)
}

func TestOrderHandler_Place(t *testing.T) {
	body := `{"productId":"p-1","quantity":4,"funderId":"funder-1","supplierId":"supplier-1","requestId":"fr-1"}`

	t.Run("validation", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := doRequest(r, http.MethodPost, "/api/v1/orders", `{"productId":"p-1","quantity":0,"funderId":"f","supplierId":"s","requestId":"fr-1"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		res := decodeError(t, w.Body.Bytes())
		if res.Code != "INVALID_ORDER_INPUT" || len(res.Details) != 1 || res.Details[0].Field != "quantity" {
			t.Fatalf("unexpected error body: %+v", res)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not funded", usecase.ErrFundingRequestNotFunded, http.StatusConflict},
		{"funding request missing", usecase.ErrFundingRequestNotFound, http.StatusNotFound},
		{"product missing", interfaces.ErrProductNotFound, http.StatusNotFound},
		{"insufficient stock", usecase.ErrInsufficientStock, http.StatusBadRequest},
		{"stock conflict", fmt.Errorf("decrement stock: %w", interfaces.ErrStockConflict), http.StatusConflict},
		{"funder wallet rejected", interfaces.ErrWalletRejected, http.StatusBadRequest},
		{"product service down", interfaces.ErrUpstreamUnavailable, http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newOrderRouter(t)
			uc.EXPECT().Place(gomock.Any(), gomock.Any()).Return(entities.Order{}, tc.err)

			w := doRequest(r, http.MethodPost, "/api/v1/orders", body, nil)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().Place(gomock.Any(), usecase.PlaceOrderInput{
			ProductID: "p-1", Quantity: 4, FunderID: "funder-1", SupplierID: "supplier-1", RequestID: "fr-1",
		}).Return(sampleOrder(), nil)

		w := doRequest(r, http.MethodPost, "/api/v1/orders", body, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["orderId"] != "o-1" || res["status"] != "PLACED" || res["totalAmount"] != "100" {
			t.Fatalf("unexpected body: %v", res)
		}
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := doRequest(r, http.MethodPut, "/api/v1/orders/o-1/status", `{}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("backwards transition", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "o-1", "PLACED").Return(entities.Order{}, usecase.ErrInvalidStatusTransition)

		w := doRequest(r, http.MethodPut, "/api/v1/orders/o-1/status", `{"status":"PLACED"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "o-404", "SHIPPED").Return(entities.Order{}, usecase.ErrOrderNotFound)

		w := doRequest(r, http.MethodPut, "/api/v1/orders/o-404/status", `{"status":"SHIPPED"}`, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("escrow unavailable", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "o-1", "DELIVERED").Return(entities.Order{}, interfaces.ErrUpstreamUnavailable)

		w := doRequest(r, http.MethodPut, "/api/v1/orders/o-1/status", `{"status":"DELIVERED"}`, nil)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("delivered and paid", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		o := sampleOrder()
		now := o.PlacedAt.Add(72 * time.Hour)
		o.Status = entities.OrderStatusDelivered
		o.SupplierPaid = true
		o.DeliveredAt = &now
		o.PaidAt = &now
		uc.EXPECT().UpdateStatus(gomock.Any(), "o-1", "DELIVERED").Return(o, nil)

		w := doRequest(r, http.MethodPut, "/api/v1/orders/o-1/status", `{"status":"DELIVERED"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["supplierPaid"] != true || res["paidAt"] == nil {
			t.Fatalf("unexpected body: %v", res)
		}
	})
}

func TestOrderHandler_Queries(t *testing.T) {
	view := entities.NewOrderView(sampleOrder(), time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC))

	t.Run("list requires user id", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := doRequest(r, http.MethodGet, "/api/v1/orders", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list by user", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().ListByUser(gomock.Any(), "supplier-1").Return([]entities.OrderView{view}, nil)

		w := doRequest(r, http.MethodGet, "/api/v1/orders?userId=supplier-1", "", nil)
		var res []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if w.Code != http.StatusOK || len(res) != 1 || res[0]["productName"] != "Fertilizer" {
			t.Fatalf("unexpected response: %d %v", w.Code, res)
		}
	})

	t.Run("get by id not found", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "o-404").Return(entities.OrderView{}, usecase.ErrOrderNotFound)

		w := doRequest(r, http.MethodGet, "/api/v1/orders/o-404", "", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "o-1").Return(view, nil)

		w := doRequest(r, http.MethodGet, "/api/v1/orders/o-1", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
