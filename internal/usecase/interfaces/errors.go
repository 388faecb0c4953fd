package interfaces

import "errors"

// Errors returned by adapters. Use cases translate them into their own sentinels
// where the caller needs a different meaning.
var (
	// ErrVersionConflict means the stored document changed since it was read.
	ErrVersionConflict = errors.New("version conflict")
	// ErrAlreadyExists means a create hit an existing id.
	ErrAlreadyExists = errors.New("document already exists")

	// ErrWalletRejected is a business-rule rejection from the wallet ledger (e.g. insufficient funds).
	ErrWalletRejected = errors.New("wallet adjustment rejected")
	// ErrUpstreamUnavailable covers timeouts, transport errors and unexpected 5xx responses.
	// The caller cannot tell whether the remote side applied the change.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	// ErrUpstreamRejected is a 4xx answer from a non-wallet collaborator.
	ErrUpstreamRejected = errors.New("upstream service rejected request")

	ErrProductNotFound = errors.New("product not found")
	// ErrStockConflict means the product quantity changed between read and decrement.
	ErrStockConflict = errors.New("product stock changed concurrently")
)
