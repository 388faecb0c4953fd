package usecase

import (
	"context"
	"fmt"
	"time"

	"nexus_settlement/internal/domain/entities"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// adjustmentMatcher compares decimals numerically; reflect.DeepEqual would not.
type adjustmentMatcher struct {
	account entities.LedgerAccount
	delta   decimal.Decimal
}

func adjustment(account entities.LedgerAccount, delta string) gomock.Matcher {
	return adjustmentMatcher{account: account, delta: dec(delta)}
}

func (m adjustmentMatcher) Matches(x any) bool {
	adj, ok := x.(entities.WalletAdjustment)
	return ok && adj.Account == m.account && adj.Delta.Equal(m.delta)
}

func (m adjustmentMatcher) String() string {
	return fmt.Sprintf("adjust %s:%s by %s", m.account.Role, m.account.ID, m.delta)
}

// bumpFunding and bumpOrder mimic the repository's compare-and-swap success.
func bumpFunding(_ context.Context, f entities.FundingRequest) (entities.FundingRequest, error) {
	f.Version++
	return f, nil
}

func bumpOrder(_ context.Context, o entities.Order) (entities.Order, error) {
	o.Version++
	return o, nil
}
