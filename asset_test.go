package stockfolio

import (
	"errors"
	"testing"
)

func TestNewAsset(t *testing.T) {
	testCases := []struct {
		name    string
		symbol  string
		price   Money
		wantErr bool
	}{
		{"valid", "AAPL", M(150), false},
		{"lower case is normalized", "aapl", M(150), false},
		{"surrounding spaces are trimmed", " aapl ", M(150), false},
		{"empty symbol", "", M(150), true},
		{"blank symbol", "   ", M(150), true},
		{"zero price", "AAPL", M(0), true},
		{"negative price", "AAPL", M(-1), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := NewAsset(Share, tc.symbol, tc.price)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("NewAsset = %v; want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAsset: %v", err)
			}
			if a.Symbol() != "AAPL" {
				t.Errorf("Symbol() = %q; want %q", a.Symbol(), "AAPL")
			}
		})
	}
}

func TestAsset_Equal(t *testing.T) {
	a, _ := NewAsset(Share, "AAPL", M(150))
	b, _ := NewAsset(Share, "aapl", M(999)) // price plays no role in identity
	c, _ := NewAsset(Commodity, "AAPL", M(150))
	d, _ := NewAsset(Share, "GOOG", M(150))

	if !a.Equal(b) {
		t.Error("same kind and symbol with different prices should be equal")
	}
	if a.Equal(c) {
		t.Error("different kinds with the same symbol should not be equal")
	}
	if a.Equal(d) {
		t.Error("different symbols should not be equal")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range kinds {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
	if got, err := ParseKind(" share "); err != nil || got != Share {
		t.Errorf("ParseKind is not case/space insensitive: %v, %v", got, err)
	}
	if _, err := ParseKind("BOND"); err == nil {
		t.Error("ParseKind(BOND) should fail")
	}
}
