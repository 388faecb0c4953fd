package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundingRequestView is the denormalized read copy of a FundingRequest.
// Version mirrors the write model so a late projection never replaces a newer one.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (funder_id-index): funder_id
type FundingRequestView struct {
	ID                    string
	Title                 string
	Description           string
	RequiredAmount        decimal.Decimal
	CurrentFunded         decimal.Decimal
	RemainingAmount       decimal.Decimal
	FunderID              string
	Status                FundingRequestStatus
	Deadline              time.Time
	CommittedReturnAmount decimal.Decimal
	InvestorAmounts       map[string]decimal.Decimal
	InvestorCount         int
	ReturnDistributed     bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Version               int64
}

func NewFundingRequestView(f FundingRequest) FundingRequestView {
	return FundingRequestView{
		ID:                    f.ID,
		Title:                 f.Title,
		Description:           f.Description,
		RequiredAmount:        f.RequiredAmount,
		CurrentFunded:         f.CurrentFunded,
		RemainingAmount:       f.RemainingAmount(),
		FunderID:              f.FunderID,
		Status:                f.Status,
		Deadline:              f.Deadline,
		CommittedReturnAmount: f.CommittedReturnAmount,
		InvestorAmounts:       f.CloneInvestorAmounts(),
		InvestorCount:         len(f.InvestorAmounts),
		ReturnDistributed:     f.ReturnDistributed,
		CreatedAt:             f.CreatedAt,
		UpdatedAt:             f.UpdatedAt,
		Version:               f.Version,
	}
}

// OrderView is the denormalized read copy of an Order used by the query endpoints.
// Version mirrors the write model version it was projected from.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - GSI (funder_id-index): funder_id
//   - GSI (supplier_id-index): supplier_id
type OrderView struct {
	OrderID      string
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
	UpdatedAt    time.Time
	Version      int64
}

func NewOrderView(o Order, now time.Time) OrderView {
	return OrderView{
		OrderID:      o.ID,
		RequestID:    o.RequestID,
		ProductID:    o.ProductID,
		ProductName:  o.ProductName,
		Quantity:     o.Quantity,
		UnitPrice:    o.UnitPrice,
		TotalAmount:  o.TotalAmount,
		FunderID:     o.FunderID,
		SupplierID:   o.SupplierID,
		Status:       o.Status,
		SupplierPaid: o.SupplierPaid,
		PlacedAt:     o.PlacedAt,
		DeliveredAt:  o.DeliveredAt,
		PaidAt:       o.PaidAt,
		UpdatedAt:    now,
		Version:      o.Version,
	}
}
