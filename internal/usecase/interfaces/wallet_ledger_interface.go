package interfaces

import (
	"context"
	"nexus_settlement/internal/domain/entities"
)

//go:generate mockgen -source=wallet_ledger_interface.go -destination=mocks/mock_wallet_ledger.go -package=mock_interfaces

// IWalletLedger abstracts the external balance-adjustment endpoint (user service wallet).
//
// Adjust is atomic at the remote ledger. It returns nil on success,
// ErrWalletRejected when the ledger refuses the change (e.g. it would go negative)
// and ErrUpstreamUnavailable when the outcome is unknown. No retry is attempted.
type IWalletLedger interface {
	Adjust(ctx context.Context, adj entities.WalletAdjustment) error
}
