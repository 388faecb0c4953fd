package response

import (
	"time"

	"nexus_settlement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type FundingRequestResponse struct {
	ID                    string                     `json:"id"`
	Title                 string                     `json:"title"`
	Description           string                     `json:"description"`
	RequiredAmount        decimal.Decimal            `json:"requiredAmount"`
	CurrentFunded         decimal.Decimal            `json:"currentFunded"`
	RemainingAmount       decimal.Decimal            `json:"remainingAmount"`
	FunderID              string                     `json:"funderId"`
	Status                string                     `json:"status"`
	Deadline              time.Time                  `json:"deadline"`
	CommittedReturnAmount decimal.Decimal            `json:"committedReturnAmount"`
	InvestorAmounts       map[string]decimal.Decimal `json:"investorAmounts"`
	InvestorCount         int                        `json:"investorCount"`
	ReturnDistributed     bool                       `json:"returnDistributed"`
	CreatedAt             time.Time                  `json:"createdAt"`
	UpdatedAt             time.Time                  `json:"updatedAt"`
}

func FromFundingRequest(f entities.FundingRequest) FundingRequestResponse {
	return FromFundingRequestView(entities.NewFundingRequestView(f))
}

func FromFundingRequestView(v entities.FundingRequestView) FundingRequestResponse {
	amounts := v.InvestorAmounts
	if amounts == nil {
		amounts = map[string]decimal.Decimal{}
	}
	return FundingRequestResponse{
		ID:                    v.ID,
		Title:                 v.Title,
		Description:           v.Description,
		RequiredAmount:        v.RequiredAmount,
		CurrentFunded:         v.CurrentFunded,
		RemainingAmount:       v.RemainingAmount,
		FunderID:              v.FunderID,
		Status:                string(v.Status),
		Deadline:              v.Deadline,
		CommittedReturnAmount: v.CommittedReturnAmount,
		InvestorAmounts:       amounts,
		InvestorCount:         v.InvestorCount,
		ReturnDistributed:     v.ReturnDistributed,
		CreatedAt:             v.CreatedAt,
		UpdatedAt:             v.UpdatedAt,
	}
}

func FromFundingRequestViews(vs []entities.FundingRequestView) []FundingRequestResponse {
	out := make([]FundingRequestResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromFundingRequestView(v))
	}
	return out
}
