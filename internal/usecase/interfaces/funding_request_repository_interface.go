package interfaces

import (
	"context"
	"nexus_settlement/internal/domain/entities"
)

//go:generate mockgen -source=funding_request_repository_interface.go -destination=mocks/mock_funding_request_repository.go -package=mock_interfaces

// IFundingRequestRepository abstracts DynamoDB persistence for FundingRequest.
//
// Save is a compare-and-swap on Version: it succeeds only when the stored
// document still carries the version the caller read, and returns the entity
// with the incremented version. A mismatch yields ErrVersionConflict.
// GetByID returns a zero entity (empty ID) when the document does not exist.

type IFundingRequestRepository interface {
	Create(ctx context.Context, f entities.FundingRequest) (entities.FundingRequest, error)
	GetByID(ctx context.Context, id string) (entities.FundingRequest, error)
	Save(ctx context.Context, f entities.FundingRequest) (entities.FundingRequest, error)
}

// IFundingRequestLookup is the read-only view of funding requests the order engine depends on.
type IFundingRequestLookup interface {
	GetByID(ctx context.Context, id string) (entities.FundingRequest, error)
}

// IFundingRequestViewRepository stores the denormalized funding request projection.
type IFundingRequestViewRepository interface {
	Upsert(ctx context.Context, v entities.FundingRequestView) error
	GetByID(ctx context.Context, id string) (entities.FundingRequestView, error)
	List(ctx context.Context) ([]entities.FundingRequestView, error)
	ListByFunderID(ctx context.Context, funderID string) ([]entities.FundingRequestView, error)
}
