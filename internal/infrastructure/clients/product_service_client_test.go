package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"nexus_settlement/internal/domain/entities"
	"nexus_settlement/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductServiceClient_GetByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/product/p-1":
			_, _ = w.Write([]byte(`{"id":"p-1","name":"Widget","category":"tools","quantity":10,"price":12.5,"supplierId":"sup-1"}`))
		case "/api/v1/product/p-500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	c := NewProductServiceClient(srv.URL, time.Second, nil)

	p, err := c.GetByID(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, 10, p.Quantity)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "sup-1", p.SupplierID)

	_, err = c.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, interfaces.ErrProductNotFound)

	_, err = c.GetByID(context.Background(), "p-500")
	assert.ErrorIs(t, err, interfaces.ErrUpstreamUnavailable)
}

// stockServer serves one product whose PUT overwrites the stored quantity
// without honouring expectedQuantity.
type stockServer struct {
	mu        sync.Mutex
	quantity  int
	putStatus int
	puts      []map[string]any
}

func (s *stockServer) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/product/p-1", r.URL.Path)
		s.mu.Lock()
		defer s.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			_, _ = fmt.Fprintf(w, `{"id":"p-1","name":"Widget","quantity":%d,"price":12.5,"supplierId":"sup-1"}`, s.quantity)
		case http.MethodPut:
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode body: %v", err)
			}
			s.puts = append(s.puts, body)
			if s.putStatus != 0 && s.putStatus != http.StatusOK {
				w.WriteHeader(s.putStatus)
				_, _ = w.Write([]byte(`{"message":"quantity must not be negative"}`))
				return
			}
			s.quantity = int(body["quantity"].(float64))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})
}

func (s *stockServer) putCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.puts)
}

func TestProductServiceClient_UpdateQuantity(t *testing.T) {
	product := entities.Product{ID: "p-1", Name: "Widget", Quantity: 10, Price: decimal.RequireFromString("12.5"), SupplierID: "sup-1"}

	t.Run("sends new and expected quantity", func(t *testing.T) {
		stock := &stockServer{quantity: 10}
		srv := httptest.NewServer(stock.handler(t))
		defer srv.Close()

		require.NoError(t, NewProductServiceClient(srv.URL, time.Second, nil).UpdateQuantity(context.Background(), product, 6))
		require.Equal(t, 1, stock.putCount())
		body := stock.puts[0]
		assert.Equal(t, float64(6), body["quantity"])
		assert.Equal(t, float64(10), body["expectedQuantity"])
		assert.Equal(t, "Widget", body["name"])
	})

	t.Run("stale snapshot is refused before writing", func(t *testing.T) {
		stock := &stockServer{quantity: 7}
		srv := httptest.NewServer(stock.handler(t))
		defer srv.Close()

		err := NewProductServiceClient(srv.URL, time.Second, nil).UpdateQuantity(context.Background(), product, 6)
		assert.ErrorIs(t, err, interfaces.ErrStockConflict)
		assert.Equal(t, 0, stock.putCount())
	})

	t.Run("concurrent updates from one snapshot cannot oversell", func(t *testing.T) {
		stock := &stockServer{quantity: 10}
		srv := httptest.NewServer(stock.handler(t))
		defer srv.Close()
		c := NewProductServiceClient(srv.URL, time.Second, nil)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, next := range []int{6, 7} {
			wg.Add(1)
			go func(i, next int) {
				defer wg.Done()
				errs[i] = c.UpdateQuantity(context.Background(), product, next)
			}(i, next)
		}
		wg.Wait()

		var ok, conflicts int
		for _, err := range errs {
			switch {
			case err == nil:
				ok++
			case errors.Is(err, interfaces.ErrStockConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, 1, conflicts)
		assert.Equal(t, 1, stock.putCount())
	})

	t.Run("409 is a stock conflict", func(t *testing.T) {
		stock := &stockServer{quantity: 10, putStatus: http.StatusConflict}
		srv := httptest.NewServer(stock.handler(t))
		defer srv.Close()

		err := NewProductServiceClient(srv.URL, time.Second, nil).UpdateQuantity(context.Background(), product, 6)
		assert.ErrorIs(t, err, interfaces.ErrStockConflict)
	})

	t.Run("other 4xx is rejected", func(t *testing.T) {
		stock := &stockServer{quantity: 10, putStatus: http.StatusUnprocessableEntity}
		srv := httptest.NewServer(stock.handler(t))
		defer srv.Close()

		err := NewProductServiceClient(srv.URL, time.Second, nil).UpdateQuantity(context.Background(), product, -1)
		assert.ErrorIs(t, err, interfaces.ErrUpstreamRejected)
		assert.ErrorContains(t, err, "quantity must not be negative")
	})

	t.Run("missing product", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		err := NewProductServiceClient(srv.URL, time.Second, nil).UpdateQuantity(context.Background(), product, 6)
		assert.ErrorIs(t, err, interfaces.ErrProductNotFound)
	})
}
