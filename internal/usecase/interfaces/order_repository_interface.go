package interfaces

import (
	"context"
	"nexus_settlement/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/mock_order_repository.go -package=mock_interfaces

// IOrderRepository abstracts DynamoDB persistence for the Order write model.
// Save follows the same version contract as IFundingRequestRepository.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Save(ctx context.Context, o entities.Order) (entities.Order, error)
}

// IOrderViewRepository stores the order read view.
//
// ListByUserID returns orders where the user is either the funder or the supplier.
type IOrderViewRepository interface {
	Upsert(ctx context.Context, v entities.OrderView) error
	GetByID(ctx context.Context, orderID string) (entities.OrderView, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.OrderView, error)
}
