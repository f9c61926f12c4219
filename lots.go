package stockfolio

import "fmt"

// PurchaseLot records a single acquisition event, used for cost basis
// calculations. The quantity only decreases, through FIFO consumption; a
// drained lot is removed from its ledger.
type PurchaseLot struct {
	Day       int   // account day of the acquisition
	UnitPrice Money // unit price at acquisition
	Quantity  Quantity
}

type lots []PurchaseLot

func (l lots) totalQuantity() Quantity {
	var total Quantity
	for _, lot := range l {
		total = total.Add(lot.Quantity)
	}
	return total
}

// consume sells quantityToSell units using the FIFO method and returns the
// realized profit against the consumed cost basis.
//
// Availability is checked before any lot is touched, so a failed consume
// leaves the lots untouched. Drained lots are compacted out in a single pass
// after the walk, to avoid removing entries mid-iteration.
func (l *lots) consume(quantityToSell Quantity, salePrice Money) (Money, error) {
	if l.totalQuantity().LessThan(quantityToSell) {
		return Money{}, fmt.Errorf("%w: %s requested, %s available",
			ErrInsufficientHoldings, quantityToSell, l.totalQuantity())
	}

	remaining := quantityToSell
	var costBasis Money
	for i := range *l {
		if remaining.IsZero() {
			break
		}
		currentLot := &(*l)[i]
		taken := currentLot.Quantity
		if remaining.LessThan(taken) {
			// Partial sale from this lot
			taken = remaining
		}
		costBasis = costBasis.Add(currentLot.UnitPrice.Mul(taken))
		currentLot.Quantity = currentLot.Quantity.Sub(taken)
		remaining = remaining.Sub(taken)
	}

	kept := (*l)[:0]
	for _, lot := range *l {
		if lot.Quantity.IsPositive() {
			kept = append(kept, lot)
		}
	}
	*l = kept

	return salePrice.Mul(quantityToSell).Sub(costBasis), nil
}

// value sums the real value of every live lot at currentDay. Each lot is
// valued independently with its own acquisition price and holding duration.
func (l lots) value(kind Kind, currentDay int) Money {
	var total Money
	for _, lot := range l {
		if !lot.Quantity.IsPositive() {
			continue
		}
		total = total.Add(RealValue(kind, lot.UnitPrice, lot.Quantity, currentDay-lot.Day))
	}
	return total
}
