package stockfolio

// HoldingLedger tracks everything an account knows about one symbol: the
// current asset definition (latest known kind and price) and the purchase
// lots in acquisition order.
//
// In a HoldingLedger lots are always in chronological order: insertion order
// is acquisition order, which is what the FIFO consumption relies on.
type HoldingLedger struct {
	asset Asset
	lots  lots
}

func newHoldingLedger(asset Asset) *HoldingLedger {
	return &HoldingLedger{asset: asset}
}

// Asset returns the current definition for this symbol.
func (h *HoldingLedger) Asset() Asset { return h.asset }

// AddLot appends a new lot. Lots with identical price or day are never
// merged; each purchase event remains its own lot.
func (h *HoldingLedger) AddLot(day int, unitPrice Money, quantity Quantity) {
	h.lots = append(h.lots, PurchaseLot{Day: day, UnitPrice: unitPrice, Quantity: quantity})
}

// ConsumeFifo sells quantity units oldest-lot-first at salePrice and returns
// the realized profit. It fails with ErrInsufficientHoldings, without
// mutating any lot, when fewer units than requested are held.
func (h *HoldingLedger) ConsumeFifo(quantity Quantity, salePrice Money) (Money, error) {
	return h.lots.consume(quantity, salePrice)
}

// AggregateValue sums the real value of every live lot at currentDay, each
// lot valued with its own acquisition price and holding duration.
func (h *HoldingLedger) AggregateValue(currentDay int) Money {
	return h.lots.value(h.asset.kind, currentDay)
}

// TotalQuantity sums the remaining quantity across all lots.
func (h *HoldingLedger) TotalQuantity() Quantity {
	return h.lots.totalQuantity()
}

// Lots returns a copy of the live lots, for reporting and persistence.
func (h *HoldingLedger) Lots() []PurchaseLot {
	out := make([]PurchaseLot, len(h.lots))
	copy(out, h.lots)
	return out
}
