package repository

import (
	"context"

	"nexus_settlement/internal/domain/entities"
	"nexus_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type orderItem struct {
	ID           string `dynamodbav:"id"`
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
	Version      int64  `dynamodbav:"version"`
}

// OrderDynamoRepository persists the Order write model.
//
// Table requirements:
//   - PK: id (string)

type OrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb dynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.Version = 1
	if err := r.put(ctx, o, 0); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Save(ctx context.Context, o entities.Order) (entities.Order, error) {
	expected := o.Version
	o.Version++
	if err := r.put(ctx, o, expected); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) put(ctx context.Context, o entities.Order, expected int64) error {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return err
	}
	return putVersioned(ctx, r.ddb, r.tableName, "id", av, expected)
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	item, err := getItem(ctx, r.ddb, r.tableName, "id", id, true)
	if err != nil {
		return entities.Order{}, err
	}
	if len(item) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:           o.ID,
		RequestID:    o.RequestID,
		ProductID:    o.ProductID,
		ProductName:  o.ProductName,
		Quantity:     o.Quantity,
		UnitPrice:    o.UnitPrice.String(),
		TotalAmount:  o.TotalAmount.String(),
		FunderID:     o.FunderID,
		SupplierID:   o.SupplierID,
		Status:       string(o.Status),
		SupplierPaid: o.SupplierPaid,
		PlacedAt:     formatTime(o.PlacedAt),
		DeliveredAt:  formatTimePtr(o.DeliveredAt),
		PaidAt:       formatTimePtr(o.PaidAt),
		Version:      o.Version,
	}
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	var dr decimalReader
	out := entities.Order{
		ID:           it.ID,
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
		Version:      it.Version,
	}
	if dr.err != nil {
		return entities.Order{}, dr.err
	}
	return out, nil
}
