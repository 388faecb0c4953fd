package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"nexus_settlement/internal/domain/entities"
	"nexus_settlement/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type productPayload struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	SupplierID string          `json:"supplierId"`
	// ExpectedQuantity makes the update conditional on the stored quantity.
	ExpectedQuantity *int `json:"expectedQuantity,omitempty"`
}

// ProductServiceClient reads product snapshots and applies conditional stock updates.
//
// Updates to one product are serialized in this process and re-check the stored
// quantity before writing. Across instances the write relies on the product service
// rejecting a stale expectedQuantity with 409.
type ProductServiceClient struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	locks   sync.Map // product id -> *sync.Mutex
}

var _ interfaces.IProductCatalog = (*ProductServiceClient)(nil)

func NewProductServiceClient(baseURL string, timeout time.Duration, log *zap.Logger) *ProductServiceClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductServiceClient{baseURL: baseURL, http: newHTTPClient(timeout), log: log}
}

func (c *ProductServiceClient) endpoint(id string) string {
	return c.baseURL + "/api/v1/product/" + url.PathEscape(id)
}

func (c *ProductServiceClient) GetByID(ctx context.Context, id string) (entities.Product, error) {
	status, body, err := doJSON(ctx, c.http, http.MethodGet, c.endpoint(id), nil)
	if err != nil {
		return entities.Product{}, err
	}
	switch {
	case status == http.StatusNotFound:
		return entities.Product{}, interfaces.ErrProductNotFound
	case status >= 500:
		return entities.Product{}, fmt.Errorf("%w: product service HTTP %d", interfaces.ErrUpstreamUnavailable, status)
	case status >= 400:
		return entities.Product{}, fmt.Errorf("%w: %s", interfaces.ErrUpstreamRejected, reason(status, body))
	}

	var p productPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return entities.Product{}, fmt.Errorf("%w: decode product: %v", interfaces.ErrUpstreamUnavailable, err)
	}
	if p.ID == "" {
		return entities.Product{}, interfaces.ErrProductNotFound
	}
	c.log.Debug("[product][client] fetched", zap.String("product_id", p.ID), zap.Int("quantity", p.Quantity))
	return entities.Product{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Quantity:   p.Quantity,
		Price:      p.Price,
		SupplierID: p.SupplierID,
	}, nil
}

func (c *ProductServiceClient) lock(productID string) func() {
	m, _ := c.locks.LoadOrStore(productID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// UpdateQuantity writes newQuantity if the stored quantity is still expected.Quantity.
func (c *ProductServiceClient) UpdateQuantity(ctx context.Context, expected entities.Product, newQuantity int) error {
	exp := expected.Quantity
	unlock := c.lock(expected.ID)
	defer unlock()

	current, err := c.GetByID(ctx, expected.ID)
	if err != nil {
		return err
	}
	if current.Quantity != exp {
		c.log.Warn("[product][client] stock changed before update", zap.String("product_id", expected.ID),
			zap.Int("expected", exp), zap.Int("stored", current.Quantity))
		return interfaces.ErrStockConflict
	}

	payload := productPayload{
		ID:               expected.ID,
		Name:             expected.Name,
		Category:         expected.Category,
		Quantity:         newQuantity,
		Price:            expected.Price,
		SupplierID:       expected.SupplierID,
		ExpectedQuantity: &exp,
	}
	status, body, err := doJSON(ctx, c.http, http.MethodPut, c.endpoint(expected.ID), payload)
	if err != nil {
		c.log.Error("[product][client] update transport failure", zap.String("product_id", expected.ID), zap.Error(err))
		return err
	}
	switch {
	case status == http.StatusConflict, status == http.StatusPreconditionFailed:
		c.log.Warn("[product][client] stock changed concurrently", zap.String("product_id", expected.ID), zap.Int("expected", exp))
		return interfaces.ErrStockConflict
	case status == http.StatusNotFound:
		return interfaces.ErrProductNotFound
	case status >= 500:
		return fmt.Errorf("%w: product service HTTP %d", interfaces.ErrUpstreamUnavailable, status)
	case status >= 400:
		return fmt.Errorf("%w: %s", interfaces.ErrUpstreamRejected, reason(status, body))
	}
	c.log.Info("[product][client] quantity updated", zap.String("product_id", expected.ID),
		zap.Int("from", exp), zap.Int("to", newQuantity))
	return nil
}
