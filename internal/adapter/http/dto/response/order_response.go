package response

import (
	"time"

	"nexus_settlement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// OrderResponse is returned by the order commands.
type OrderResponse struct {
	OrderID      string          `json:"orderId"`
	RequestID    string          `json:"requestId"`
	ProductID    string          `json:"productId"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	FunderID     string          `json:"funderId"`
	SupplierID   string          `json:"supplierId"`
	Status       string          `json:"status"`
	SupplierPaid bool            `json:"supplierPaid"`
	PlacedAt     time.Time       `json:"placedAt"`
	DeliveredAt  *time.Time      `json:"deliveredAt,omitempty"`
	PaidAt       *time.Time      `json:"paidAt,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:      o.ID,
		RequestID:    o.RequestID,
		ProductID:    o.ProductID,
		Quantity:     o.Quantity,
		UnitPrice:    o.UnitPrice,
		TotalAmount:  o.TotalAmount,
		FunderID:     o.FunderID,
		SupplierID:   o.SupplierID,
		Status:       string(o.Status),
		SupplierPaid: o.SupplierPaid,
		PlacedAt:     o.PlacedAt,
		DeliveredAt:  o.DeliveredAt,
		PaidAt:       o.PaidAt,
	}
}

// OrderViewResponse is returned by the order queries.
type OrderViewResponse struct {
	OrderID      string          `json:"orderId"`
	RequestID    string          `json:"requestId"`
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	FunderID     string          `json:"funderId"`
	SupplierID   string          `json:"supplierId"`
	Status       string          `json:"status"`
	SupplierPaid bool            `json:"supplierPaid"`
	PlacedAt     time.Time       `json:"placedAt"`
	DeliveredAt  *time.Time      `json:"deliveredAt,omitempty"`
	PaidAt       *time.Time      `json:"paidAt,omitempty"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func FromOrderView(v entities.OrderView) OrderViewResponse {
	return OrderViewResponse{
		OrderID:      v.OrderID,
		RequestID:    v.RequestID,
		ProductID:    v.ProductID,
		ProductName:  v.ProductName,
		Quantity:     v.Quantity,
		UnitPrice:    v.UnitPrice,
		TotalAmount:  v.TotalAmount,
		FunderID:     v.FunderID,
		SupplierID:   v.SupplierID,
		Status:       string(v.Status),
		SupplierPaid: v.SupplierPaid,
		PlacedAt:     v.PlacedAt,
		DeliveredAt:  v.DeliveredAt,
		PaidAt:       v.PaidAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromOrderViews(vs []entities.OrderView) []OrderViewResponse {
	out := make([]OrderViewResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromOrderView(v))
	}
	return out
}
