package settlement

import (
	"context"
	"fmt"

	"nexus_settlement/internal/domain/entities"
	"nexus_settlement/internal/usecase/interfaces"
)

// WalletStep applies adj on the ledger and compensates with its inverse.
func WalletStep(ledger interfaces.IWalletLedger, adj entities.WalletAdjustment) Step {
	verb := "credit"
	if adj.Delta.IsNegative() {
		verb = "debit"
	}
	return Step{
		Name: fmt.Sprintf("%s %s:%s %s", verb, adj.Account.Role, adj.Account.ID, adj.Delta.Abs().StringFixed(2)),
		Apply: func(ctx context.Context) error {
			return ledger.Adjust(ctx, adj)
		},
		Compensate: func(ctx context.Context) error {
			return ledger.Adjust(ctx, adj.Inverse())
		},
	}
}
