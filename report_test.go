package stockfolio

import (
	"strings"
	"testing"
)

func TestAccount_Report(t *testing.T) {
	a, _ := New(M(10000))
	mustBuy(t, a, mustAsset(t, Share, "AAPL", 150), Q(10))

	want := strings.Join([]string{
		"PORTFOLIO REPORT (Day 0)",
		"--------------------------------------------------",
		"TYPE       | SYMBOL     | QUANTITY   | VALUE",
		"--------------------------------------------------",
		"SHARE      | AAPL       | 10         | 1500.00",
		"--------------------------------------------------",
		"CASH: 8500.00",
		"TOTAL NET WORTH: 10000.00",
		"",
	}, "\n")

	if got := a.Report(); got != want {
		t.Errorf("Report() = %q; want %q", got, want)
	}
}

func TestAccount_Summaries_Ordering(t *testing.T) {
	a, _ := New(M(1000000))

	// Insertion order deliberately scrambled across kinds and values.
	mustBuy(t, a, mustAsset(t, Currency, "EUR", 1000), Q(2))    // currency, value 1990
	mustBuy(t, a, mustAsset(t, Share, "SMALL", 200), Q(10))     // share, value 2000
	mustBuy(t, a, mustAsset(t, Commodity, "GOLD", 1800), Q(2))  // commodity
	mustBuy(t, a, mustAsset(t, Share, "BIG", 500), Q(10))       // share, value 5000
	mustBuy(t, a, mustAsset(t, Commodity, "OIL", 80), Q(10))    // commodity

	var got []string
	for _, s := range a.Summaries() {
		got = append(got, s.Symbol)
	}

	// Kinds in fixed order; within a kind, value descending.
	want := []string{"BIG", "SMALL", "GOLD", "OIL", "EUR"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Summaries order = %v; want %v", got, want)
	}
}

func TestAccount_Summaries_StableTies(t *testing.T) {
	a, _ := New(M(100000))

	// Two shares with identical aggregate value keep insertion order.
	mustBuy(t, a, mustAsset(t, Share, "FIRST", 100), Q(20))
	mustBuy(t, a, mustAsset(t, Share, "SECOND", 100), Q(20))

	s := a.Summaries()
	if len(s) != 2 || s[0].Symbol != "FIRST" || s[1].Symbol != "SECOND" {
		t.Errorf("tied summaries reordered: %+v", s)
	}
}
