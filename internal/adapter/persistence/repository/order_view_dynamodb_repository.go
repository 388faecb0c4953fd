package repository

import (
	"context"
	"sort"

	"nexus_settlement/internal/domain/entities"
	"nexus_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const (
	ordersByFunderIndex   = "funder_id-index"
	ordersBySupplierIndex = "supplier_id-index"
)

type orderViewItem struct {
	OrderID      string `dynamodbav:"order_id"`
	RequestID    string `dynamodbav:"request_id"`
	ProductID    string `dynamodbav:"product_id"`
	ProductName  string `dynamodbav:"product_name"`
	Quantity     int    `dynamodbav:"quantity"`
	UnitPrice    string `dynamodbav:"unit_price"`
	TotalAmount  string `dynamodbav:"total_amount"`
	FunderID     string `dynamodbav:"funder_id"`
	SupplierID   string `dynamodbav:"supplier_id"`
	Status       string `dynamodbav:"status"`
	SupplierPaid bool   `dynamodbav:"supplier_paid"`
	PlacedAt     string `dynamodbav:"placed_at"`
	DeliveredAt  string `dynamodbav:"delivered_at,omitempty"`
	PaidAt       string `dynamodbav:"paid_at,omitempty"`
	UpdatedAt    string `dynamodbav:"updated_at"`
	Version      int64  `dynamodbav:"version"`
}

// OrderViewDynamoRepository stores the order read view.
//
// Table requirements:
//   - PK: order_id (string)
//   - GSI funder_id-index: funder_id (string)
//   - GSI supplier_id-index: supplier_id (string)

type OrderViewDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderViewRepository = (*OrderViewDynamoRepository)(nil)

func NewOrderViewDynamoRepository(ddb dynamoAPI, tableName string) *OrderViewDynamoRepository {
	return &OrderViewDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderViewDynamoRepository) Upsert(ctx context.Context, v entities.OrderView) error {
	av, err := attributevalue.MarshalMap(toOrderViewItem(v))
	if err != nil {
		return err
	}
	return putIfNewer(ctx, r.ddb, r.tableName, "order_id", av, v.Version)
}

func (r *OrderViewDynamoRepository) GetByID(ctx context.Context, orderID string) (entities.OrderView, error) {
	item, err := getItem(ctx, r.ddb, r.tableName, "order_id", orderID, false)
	if err != nil {
		return entities.OrderView{}, err
	}
	if len(item) == 0 {
		return entities.OrderView{}, nil
	}
	var it orderViewItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.OrderView{}, err
	}
	return fromOrderViewItem(it)
}

// ListByUserID merges the orders a user funded with those they supply, newest first.
func (r *OrderViewDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.OrderView, error) {
	seen := map[string]bool{}
	var out []entities.OrderView
	for _, idx := range []struct{ name, attr string }{
		{ordersByFunderIndex, "funder_id"},
		{ordersBySupplierIndex, "supplier_id"},
	} {
		items, err := queryIndex(ctx, r.ddb, r.tableName, idx.name, idx.attr, userID)
		if err != nil {
			return nil, err
		}
		var its []orderViewItem
		if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
			return nil, err
		}
		for _, it := range its {
			if seen[it.OrderID] {
				continue
			}
			seen[it.OrderID] = true
			v, err := fromOrderViewItem(it)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PlacedAt.After(out[j].PlacedAt) })
	return out, nil
}

func toOrderViewItem(v entities.OrderView) orderViewItem {
	return orderViewItem{
		OrderID:      v.OrderID,
		RequestID:    v.RequestID,
		ProductID:    v.ProductID,
		ProductName:  v.ProductName,
		Quantity:     v.Quantity,
		UnitPrice:    v.UnitPrice.String(),
		TotalAmount:  v.TotalAmount.String(),
		FunderID:     v.FunderID,
		SupplierID:   v.SupplierID,
		Status:       string(v.Status),
		SupplierPaid: v.SupplierPaid,
		PlacedAt:     formatTime(v.PlacedAt),
		DeliveredAt:  formatTimePtr(v.DeliveredAt),
		PaidAt:       formatTimePtr(v.PaidAt),
		UpdatedAt:    formatTime(v.UpdatedAt),
		Version:      v.Version,
	}
}

func fromOrderViewItem(it orderViewItem) (entities.OrderView, error) {
	var dr decimalReader
	out := entities.OrderView{
		OrderID:      it.OrderID,
		RequestID:    it.RequestID,
		ProductID:    it.ProductID,
		ProductName:  it.ProductName,
		Quantity:     it.Quantity,
		UnitPrice:    dr.parse("unit_price", it.UnitPrice),
		TotalAmount:  dr.parse("total_amount", it.TotalAmount),
		FunderID:     it.FunderID,
		SupplierID:   it.SupplierID,
		Status:       entities.OrderStatus(it.Status),
		SupplierPaid: it.SupplierPaid,
		PlacedAt:     parseTime(it.PlacedAt),
		DeliveredAt:  parseTimePtr(it.DeliveredAt),
		PaidAt:       parseTimePtr(it.PaidAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
		Version:      it.Version,
	}
	if dr.err != nil {
		return entities.OrderView{}, dr.err
	}
	return out, nil
}
