package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of an order placed against funded capital.
//
// Domain notes:
//   - Status only moves forward: PLACED -> CONFIRMED -> SHIPPED -> DELIVERED.
//   - DELIVERED triggers the escrow -> supplier payout.

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusPlaced:    0,
	OrderStatusConfirmed: 1,
	OrderStatusShipped:   2,
	OrderStatusDelivered: 3,
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// CanAdvanceTo reports whether next is strictly later in the lifecycle.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	cur, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	nxt, ok := orderStatusRank[next]
	if !ok {
		return false
	}
	return nxt > cur
}

// Order is the write model of the settlement engine.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: optimistic concurrency token
//
// TotalAmount is computed once at placement (Quantity x UnitPrice) and never recomputed.
// ProductName is captured at placement so later projections do not depend on the read side.
type Order struct {
	ID           string
	RequestID    string
	ProductID    string
	ProductName  string
	Quantity     int
	UnitPrice    decimal.Decimal
	TotalAmount  decimal.Decimal
	FunderID     string
	SupplierID   string
	Status       OrderStatus
	SupplierPaid bool
	PlacedAt     time.Time
	DeliveredAt  *time.Time
	PaidAt       *time.Time
	Version      int64
}

// NewOrder builds a PLACED order and fixes its total.
func NewOrder(id, requestID, productID, productName string, quantity int, unitPrice decimal.Decimal, funderID, supplierID string, placedAt time.Time) Order {
	return Order{
		ID:          id,
		RequestID:   requestID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalAmount: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		FunderID:    funderID,
		SupplierID:  supplierID,
		Status:      OrderStatusPlaced,
		PlacedAt:    placedAt,
	}
}
