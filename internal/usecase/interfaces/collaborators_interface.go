package interfaces

import (
	"context"
	"nexus_settlement/internal/domain/entities"
)

//go:generate mockgen -source=collaborators_interface.go -destination=mocks/mock_collaborators.go -package=mock_interfaces

// IProductCatalog abstracts the product service.
//
// GetByID returns ErrProductNotFound for unknown products.
// UpdateQuantity is conditional: the product service applies newQuantity only if
// the stored quantity still equals expected.Quantity, otherwise ErrStockConflict.
type IProductCatalog interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
	UpdateQuantity(ctx context.Context, expected entities.Product, newQuantity int) error
}

// IUserDirectory resolves user contact data in one batch call.
type IUserDirectory interface {
	GetContacts(ctx context.Context, userIDs []string) ([]entities.UserContact, error)
}

// INotificationPublisher hands a message to the broker without waiting for acknowledgment.
// Publish must not block on the broker.
type INotificationPublisher interface {
	Publish(ctx context.Context, msg entities.NotificationMessage) error
}
