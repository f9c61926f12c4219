package stockfolio

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of an asset. The set is closed: every switch
// over Kind in this package is exhaustive, so adding a kind is a
// compile-time-checked change.
type Kind int

const (
	Share Kind = iota
	Commodity
	Currency
)

// kinds in report order.
var kinds = []Kind{Share, Commodity, Currency}

func (k Kind) String() string {
	switch k {
	case Share:
		return "SHARE"
	case Commodity:
		return "COMMODITY"
	case Currency:
		return "CURRENCY"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SHARE":
		return Share, nil
	case "COMMODITY":
		return Commodity, nil
	case "CURRENCY":
		return Currency, nil
	default:
		return 0, fmt.Errorf("unknown asset kind: %q", s)
	}
}

// Asset is the current definition of a tradable asset: its kind, its
// case-normalized symbol, and the latest known market price.
//
// The symbol is the identity key: two assets are equal iff they have the
// same kind and symbol, regardless of price. An Asset is immutable once
// constructed; an account replaces the whole stored definition when a newer
// price is learned on purchase.
type Asset struct {
	kind   Kind
	symbol string
	price  Money
}

// NewAsset creates an asset definition. The symbol must be non-empty and the
// market price strictly positive. Symbols are normalized to upper case.
func NewAsset(kind Kind, symbol string, price Money) (Asset, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Asset{}, fmt.Errorf("%w: asset symbol cannot be empty", ErrInvalidArgument)
	}
	if !price.IsPositive() {
		return Asset{}, fmt.Errorf("%w: asset price must be positive, got %s", ErrInvalidArgument, price)
	}
	return Asset{kind: kind, symbol: symbol, price: price}, nil
}

func (a Asset) Kind() Kind     { return a.kind }
func (a Asset) Symbol() string { return a.symbol }
func (a Asset) Price() Money   { return a.price }

// IsZero reports whether a is the zero definition, used as the "no asset"
// sentinel in validation.
func (a Asset) IsZero() bool { return a.symbol == "" }

// Equal reports identity: same kind and same symbol, price ignored.
func (a Asset) Equal(b Asset) bool { return a.kind == b.kind && a.symbol == b.symbol }

func (a Asset) String() string {
	return fmt.Sprintf("%s %s @ %s", a.kind, a.symbol, a.price)
}
