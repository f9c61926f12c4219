package stockfolio

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Account owns the cash balance, the simulated day counter, and one
// HoldingLedger per held symbol.
//
// Every operation is an atomic transaction against that state: all
// validation happens before any mutation, so a failed operation leaves the
// account exactly as it was. The account is not safe for concurrent use;
// callers exposing it to multiple goroutines must serialize access
// externally.
type Account struct {
	cash     Money
	day      int
	holdings map[string]*HoldingLedger
	sequence []string // symbols in first-acquisition order, keeps reports stable
	cap      int      // max distinct symbols, 0 means unbounded
}

// Option configures an Account at construction.
type Option func(*Account)

// WithSymbolCap bounds the number of distinct symbols the account may hold.
// Adding quantity to an already-held symbol always succeeds regardless of
// the cap.
func WithSymbolCap(n int) Option {
	return func(a *Account) { a.cap = n }
}

// New creates an account holding initialCash and no assets, at day 0.
func New(initialCash Money, opts ...Option) (*Account, error) {
	if initialCash.IsNegative() {
		return nil, fmt.Errorf("%w: initial cash cannot be negative, got %s", ErrInvalidArgument, initialCash)
	}
	a := &Account{
		cash:     initialCash,
		holdings: make(map[string]*HoldingLedger),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *Account) Cash() Money        { return a.cash }
func (a *Account) CurrentDay() int    { return a.day }
func (a *Account) HoldingsCount() int { return len(a.holdings) }

// Position returns the total quantity held for a symbol, zero if unknown.
func (a *Account) Position(symbol string) Quantity {
	h, ok := a.holdings[normalizeSymbol(symbol)]
	if !ok {
		return Quantity{}
	}
	return h.TotalQuantity()
}

// Ledger returns the holding ledger for a symbol, or nil if unknown.
func (a *Account) Ledger(symbol string) *HoldingLedger {
	return a.holdings[normalizeSymbol(symbol)]
}

// Ledgers iterates over the holding ledgers in first-acquisition order.
func (a *Account) Ledgers() iter.Seq2[string, *HoldingLedger] {
	return func(yield func(string, *HoldingLedger) bool) {
		for _, symbol := range a.sequence {
			if !yield(symbol, a.holdings[symbol]) {
				return
			}
		}
	}
}

// AdvanceDay moves simulated time forward by delta days. Non-positive
// deltas are ignored; time never goes backward.
func (a *Account) AdvanceDay(delta int) {
	if delta > 0 {
		a.day += delta
	}
}

// Buy purchases quantity units of asset at its market price plus the kind's
// acquisition cost. It fails with ErrInsufficientFunds when the total cost
// exceeds the cash balance, leaving the account untouched.
//
// On success the ledger's stored asset definition is replaced by the one
// just purchased, so subsequent valuations and reports see the latest known
// price, and a new lot is appended dated at the account's current day.
func (a *Account) Buy(asset Asset, quantity Quantity) error {
	if asset.IsZero() {
		return fmt.Errorf("%w: asset cannot be zero", ErrInvalidArgument)
	}
	if !quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be positive, got %s", ErrInvalidArgument, quantity)
	}

	totalCost := asset.price.Mul(quantity).Add(AcquisitionCost(asset.kind, asset.price, quantity))
	if totalCost.GreaterThan(a.cash) {
		return fmt.Errorf("%w: cost %s exceeds cash %s", ErrInsufficientFunds, totalCost, a.cash)
	}
	ledger, err := a.ensureLedger(asset)
	if err != nil {
		return err
	}

	a.cash = a.cash.Sub(totalCost)
	ledger.asset = asset
	ledger.AddLot(a.day, asset.price, quantity)
	return nil
}

// Sell liquidates quantity units of symbol at the caller-supplied current
// market price, which is authoritative for the revenue even when it differs
// from the ledger's stored price. It returns the realized profit computed
// against the FIFO cost basis.
//
// A symbol with no ledger fails with ErrUnknownSymbol; selling more than
// held fails with ErrInsufficientHoldings; neither mutates the account.
func (a *Account) Sell(symbol string, quantity Quantity, currentPrice Money) (Money, error) {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return Money{}, fmt.Errorf("%w: symbol cannot be empty", ErrInvalidArgument)
	}
	if !quantity.IsPositive() {
		return Money{}, fmt.Errorf("%w: quantity must be positive, got %s", ErrInvalidArgument, quantity)
	}
	if !currentPrice.IsPositive() {
		return Money{}, fmt.Errorf("%w: price must be positive, got %s", ErrInvalidArgument, currentPrice)
	}
	ledger, ok := a.holdings[symbol]
	if !ok {
		return Money{}, fmt.Errorf("%w: %s is not held", ErrUnknownSymbol, symbol)
	}

	profit, err := ledger.ConsumeFifo(quantity, currentPrice)
	if err != nil {
		return Money{}, fmt.Errorf("selling %s %s: %w", quantity, symbol, err)
	}
	a.cash = a.cash.Add(currentPrice.Mul(quantity))
	if ledger.TotalQuantity().IsZero() {
		a.removeLedger(symbol)
	}
	return profit, nil
}

// BulkLoad inserts a lot exactly like Buy but bypasses the cash deduction
// and the funds check entirely. It is the re-hydration path used when
// restoring persisted state, where the cost was paid in a prior session.
func (a *Account) BulkLoad(asset Asset, quantity Quantity, purchaseDay int) error {
	if asset.IsZero() {
		return fmt.Errorf("%w: asset cannot be zero", ErrInvalidArgument)
	}
	if !quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be positive, got %s", ErrInvalidArgument, quantity)
	}
	if purchaseDay < 0 {
		return fmt.Errorf("%w: purchase day cannot be negative, got %d", ErrInvalidArgument, purchaseDay)
	}
	ledger, err := a.ensureLedger(asset)
	if err != nil {
		return err
	}
	ledger.asset = asset
	ledger.AddLot(purchaseDay, asset.price, quantity)
	return nil
}

// HoldingsValue sums the aggregate value of every ledger at the current day.
func (a *Account) HoldingsValue() Money {
	var total Money
	for _, symbol := range a.sequence {
		total = total.Add(a.holdings[symbol].AggregateValue(a.day))
	}
	return total
}

// TotalValue is cash plus holdings value.
func (a *Account) TotalValue() Money {
	return a.cash.Add(a.HoldingsValue())
}

// HoldingSummary is one line of the account's deterministic snapshot.
type HoldingSummary struct {
	Kind     Kind
	Symbol   string
	Quantity Quantity
	Value    Money
}

// Summaries returns one summary per held symbol, grouped by kind in the
// fixed order Share, Commodity, Currency and by aggregate value descending
// within a kind. Value ties keep first-acquisition order.
func (a *Account) Summaries() []HoldingSummary {
	summaries := make([]HoldingSummary, 0, len(a.sequence))
	for _, symbol := range a.sequence {
		h := a.holdings[symbol]
		if !h.TotalQuantity().IsPositive() {
			continue
		}
		summaries = append(summaries, HoldingSummary{
			Kind:     h.asset.kind,
			Symbol:   symbol,
			Quantity: h.TotalQuantity(),
			Value:    h.AggregateValue(a.day),
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Kind != summaries[j].Kind {
			return summaries[i].Kind < summaries[j].Kind
		}
		return summaries[i].Value.GreaterThan(summaries[j].Value)
	})
	return summaries
}

// ensureLedger returns the ledger for the asset's symbol, creating it when
// absent. Creation honors the symbol cap.
func (a *Account) ensureLedger(asset Asset) (*HoldingLedger, error) {
	if ledger, ok := a.holdings[asset.symbol]; ok {
		return ledger, nil
	}
	if a.cap > 0 && len(a.holdings) >= a.cap {
		return nil, fmt.Errorf("%w: cannot hold more than %d distinct symbols", ErrCapacityExceeded, a.cap)
	}
	ledger := newHoldingLedger(asset)
	a.holdings[asset.symbol] = ledger
	a.sequence = append(a.sequence, asset.symbol)
	return ledger, nil
}

func (a *Account) removeLedger(symbol string) {
	delete(a.holdings, symbol)
	for i, s := range a.sequence {
		if s == symbol {
			a.sequence = append(a.sequence[:i], a.sequence[i+1:]...)
			return
		}
	}
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
