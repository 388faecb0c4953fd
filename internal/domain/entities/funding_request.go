package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// FundingRequestStatus represents the lifecycle of a funding request.
//
// A request is created OPEN and moves once, irreversibly, to FUNDED when the
// invested principal reaches the required amount.

type FundingRequestStatus string

const (
	FundingRequestStatusOpen   FundingRequestStatus = "OPEN"
	FundingRequestStatusFunded FundingRequestStatus = "FUNDED"
)

// FundingRequest is the funding request aggregate persisted by the investment ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: optimistic concurrency token, incremented on every successful save
//
// Monetary representation:
//   - all amounts are decimals; InvestorAmounts holds accumulated principal per investor.
type FundingRequest struct {
	ID                    string
	Title                 string
	Description           string
	RequiredAmount        decimal.Decimal
	CurrentFunded         decimal.Decimal
	FunderID              string
	Status                FundingRequestStatus
	Deadline              time.Time
	CommittedReturnAmount decimal.Decimal
	InvestorAmounts       map[string]decimal.Decimal
	ReturnDistributed     bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Version               int64
}

func (f FundingRequest) IsOpen() bool { return f.Status == FundingRequestStatusOpen }

func (f FundingRequest) IsFunded() bool { return f.Status == FundingRequestStatusFunded }

// RemainingAmount is the principal still needed to reach RequiredAmount.
func (f FundingRequest) RemainingAmount() decimal.Decimal {
	remaining := f.RequiredAmount.Sub(f.CurrentFunded)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// RecordInvestment merges amount into the investor's accumulated principal and
// the request total, flipping the status to FUNDED when the target is reached.
// It reports whether this call caused the transition.
func (f *FundingRequest) RecordInvestment(investorID string, amount decimal.Decimal) bool {
	if f.InvestorAmounts == nil {
		f.InvestorAmounts = map[string]decimal.Decimal{}
	}
	f.InvestorAmounts[investorID] = f.InvestorAmounts[investorID].Add(amount)
	f.CurrentFunded = f.CurrentFunded.Add(amount)
	if f.IsOpen() && f.CurrentFunded.GreaterThanOrEqual(f.RequiredAmount) {
		f.Status = FundingRequestStatusFunded
		return true
	}
	return false
}

// InvestorIDs returns the investor ids in a stable order.
func (f FundingRequest) InvestorIDs() []string {
	ids := make([]string, 0, len(f.InvestorAmounts))
	for id := range f.InvestorAmounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// InvestedTotal sums InvestorAmounts. It must always equal CurrentFunded.
func (f FundingRequest) InvestedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range f.InvestorAmounts {
		total = total.Add(amount)
	}
	return total
}

// CloneInvestorAmounts returns a copy of InvestorAmounts.
func (f FundingRequest) CloneInvestorAmounts() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(f.InvestorAmounts))
	for k, v := range f.InvestorAmounts {
		out[k] = v
	}
	return out
}
