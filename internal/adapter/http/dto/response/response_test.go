package response

import (
	"encoding/json"
	"testing"
	"time"

	"nexus_settlement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromFundingRequest(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := entities.FundingRequest{
		ID:                    "fr-1",
		Title:                 "Inventory",
		RequiredAmount:        decimal.RequireFromString("1000"),
		CurrentFunded:         decimal.RequireFromString("600"),
		FunderID:              "funder-1",
		Status:                entities.FundingRequestStatusOpen,
		CommittedReturnAmount: decimal.RequireFromString("200"),
		InvestorAmounts:       map[string]decimal.Decimal{"inv-a": decimal.RequireFromString("600")},
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	res := FromFundingRequest(f)
	if res.ID != "fr-1" || res.Status != "OPEN" || res.FunderID != "funder-1" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.RemainingAmount.Equal(decimal.RequireFromString("400")) {
		t.Fatalf("expected remaining 400, got %s", res.RemainingAmount)
	}
	if res.InvestorCount != 1 {
		t.Fatalf("expected 1 investor, got %d", res.InvestorCount)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["currentFunded"] != "600" {
		t.Fatalf("expected currentFunded as decimal string, got %v", decoded["currentFunded"])
	}
}

func TestFromFundingRequestView_NilInvestorsRendersEmptyObject(t *testing.T) {
	res := FromFundingRequestView(entities.FundingRequestView{ID: "fr-1"})
	body, _ := json.Marshal(res)
	var decoded map[string]any
	_ = json.Unmarshal(body, &decoded)
	if m, ok := decoded["investorAmounts"].(map[string]any); !ok || len(m) != 0 {
		t.Fatalf("expected empty investorAmounts object, got %v", decoded["investorAmounts"])
	}
	if got := FromFundingRequestViews(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestFromOrderAndView(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	o := entities.NewOrder("o-1", "fr-1", "p-1", "Cement", 3, decimal.RequireFromString("12.50"), "funder-1", "supplier-1", now)

	res := FromOrder(o)
	if res.OrderID != "o-1" || res.Status != "PLACED" {
		t.Fatalf("unexpected order response: %+v", res)
	}
	if !res.TotalAmount.Equal(decimal.RequireFromString("37.50")) {
		t.Fatalf("expected total 37.50, got %s", res.TotalAmount)
	}

	views := FromOrderViews([]entities.OrderView{entities.NewOrderView(o, now)})
	if len(views) != 1 || views[0].ProductName != "Cement" || views[0].SupplierID != "supplier-1" {
		t.Fatalf("unexpected view responses: %+v", views)
	}
}
