package entities

import "github.com/shopspring/decimal"

// Product is the snapshot of a catalog product read from the product service.
type Product struct {
	ID         string
	Name       string
	Category   string
	Quantity   int
	Price      decimal.Decimal
	SupplierID string
}

func (p Product) IsAvailable() bool { return p.Quantity > 0 }

// UserContact is the result of the batch user-email lookup.
type UserContact struct {
	ID    string
	Email string
}

// NotificationMessage is the fire-and-forget payload produced for the notification service.
type NotificationMessage struct {
	OrderID   string `json:"orderId"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}
