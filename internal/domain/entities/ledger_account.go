package entities

import "github.com/shopspring/decimal"

// LedgerRole identifies why an account takes part in a money movement.
type LedgerRole string

const (
	LedgerRoleFunder   LedgerRole = "funder"
	LedgerRoleInvestor LedgerRole = "investor"
	LedgerRoleSupplier LedgerRole = "supplier"
	// LedgerRoleEscrow is the platform account order payouts are routed through.
	// Its balance must never go negative; the engine only credits it to undo its own debit.
	LedgerRoleEscrow LedgerRole = "escrow"
)

// LedgerAccount is a named participant of a wallet adjustment.
type LedgerAccount struct {
	ID   string
	Role LedgerRole
}

func FunderAccount(id string) LedgerAccount   { return LedgerAccount{ID: id, Role: LedgerRoleFunder} }
func InvestorAccount(id string) LedgerAccount { return LedgerAccount{ID: id, Role: LedgerRoleInvestor} }
func SupplierAccount(id string) LedgerAccount { return LedgerAccount{ID: id, Role: LedgerRoleSupplier} }
func EscrowAccount(id string) LedgerAccount   { return LedgerAccount{ID: id, Role: LedgerRoleEscrow} }

// WalletAdjustment is one signed balance change on a ledger account.
// A negative Delta debits the account, a positive one credits it.
type WalletAdjustment struct {
	Account          LedgerAccount
	Delta            decimal.Decimal
	FundingRequestID string
}

// Inverse returns the adjustment that undoes a.
func (a WalletAdjustment) Inverse() WalletAdjustment {
	return WalletAdjustment{Account: a.Account, Delta: a.Delta.Neg(), FundingRequestID: a.FundingRequestID}
}
