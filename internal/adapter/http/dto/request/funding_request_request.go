package request

import (
	"time"

	"nexus_settlement/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateFundingRequestRequest struct {
	Title                 string          `json:"title" binding:"required"`
	Description           string          `json:"description" binding:"required"`
	RequiredAmount        decimal.Decimal `json:"requiredAmount" binding:"decimal_gt0"`
	CommittedReturnAmount decimal.Decimal `json:"committedReturnAmount" binding:"decimal_gte0"`
	Deadline              time.Time       `json:"deadline" binding:"required"`
}

func (r CreateFundingRequestRequest) ToInput(funderID string) usecase.CreateFundingRequestInput {
	return usecase.CreateFundingRequestInput{
		FunderID:              funderID,
		Title:                 r.Title,
		Description:           r.Description,
		RequiredAmount:        r.RequiredAmount,
		CommittedReturnAmount: r.CommittedReturnAmount,
		Deadline:              r.Deadline,
	}
}

// UpdateFundingRequestRequest is a partial update; absent fields stay unchanged.
type UpdateFundingRequestRequest struct {
	Title                 *string          `json:"title" binding:"omitnil,min=1"`
	Description           *string          `json:"description"`
	Deadline              *time.Time       `json:"deadline"`
	CommittedReturnAmount *decimal.Decimal `json:"committedReturnAmount" binding:"omitnil,decimal_gte0"`
}

func (r UpdateFundingRequestRequest) ToInput() usecase.UpdateFundingRequestInput {
	return usecase.UpdateFundingRequestInput{
		Title:                 r.Title,
		Description:           r.Description,
		Deadline:              r.Deadline,
		CommittedReturnAmount: r.CommittedReturnAmount,
	}
}

// InvestmentRequest carries a negative walletAdjustment: the amount taken from
// the investor's wallet. The investor is always the caller named by X-User-Id.
type InvestmentRequest struct {
	WalletAdjustment decimal.Decimal `json:"walletAdjustment" binding:"required"`
}
