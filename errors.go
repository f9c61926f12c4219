package stockfolio

import "errors"

// Error kinds surfaced by account and order book operations. Callers match
// them with errors.Is; every returned error wraps exactly one of these.
var (
	// ErrInvalidArgument reports a zero asset or order, a non-positive
	// quantity or price, or an empty symbol.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientFunds reports a purchase whose total cost exceeds the
	// available cash. The purchase is rejected before any mutation.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientHoldings reports a sale of more units than held.
	ErrInsufficientHoldings = errors.New("insufficient holdings")

	// ErrUnknownSymbol reports an operation on a symbol with no ledger.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrCapacityExceeded reports a new symbol past the configured cap.
	// Increasing the quantity of an already-held symbol always succeeds.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
