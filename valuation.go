package stockfolio

// Valuation rules per asset kind. Each kind models a different real-world
// friction: brokerage minimums on small share orders, storage decay on
// commodities, and the bid/ask spread on currencies. Costs are computed per
// lot, never on a symbol's aggregate, because lots of the same symbol carry
// different acquisition prices and holding durations.

var (
	// shareFeeThreshold is the transaction value under which the flat
	// brokerage fee applies.
	shareFeeThreshold = M(1000)
	// shareFlatFee is the brokerage fee for small share transactions.
	shareFlatFee = M(5)
	// storagePerUnitDay is the commodity storage cost per unit per day.
	storagePerUnitDay = M(0.5)
	// currencySpread is the bid/ask spread rate, charged once as
	// acquisition friction and once as a markdown on held value.
	currencySpread = Q(0.005)
)

// AcquisitionCost returns the cost charged at purchase time beyond the
// nominal price*quantity.
func AcquisitionCost(kind Kind, price Money, quantity Quantity) Money {
	switch kind {
	case Share:
		if price.Mul(quantity).LessThan(shareFeeThreshold) {
			return shareFlatFee
		}
		return Money{}
	case Commodity:
		// storage is charged at valuation time only.
		return Money{}
	case Currency:
		return price.Mul(quantity).Mul(currencySpread)
	default:
		panic("stockfolio: unknown asset kind")
	}
}

// RealValue returns the value of holding quantity units at price for
// daysHeld days, net of the kind's friction. Per-day charges apply for at
// least one day even when daysHeld is zero.
func RealValue(kind Kind, price Money, quantity Quantity, daysHeld int) Money {
	nominal := price.Mul(quantity)
	switch kind {
	case Share:
		return nominal.Sub(AcquisitionCost(Share, price, quantity))
	case Commodity:
		days := daysHeld
		if days < 1 {
			days = 1
		}
		return nominal.Sub(storagePerUnitDay.Mul(quantity).Mul(Q(days)))
	case Currency:
		return nominal.Sub(nominal.Mul(currencySpread))
	default:
		panic("stockfolio: unknown asset kind")
	}
}
