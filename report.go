package stockfolio

import (
	"fmt"
	"strings"
)

const reportRule = "--------------------------------------------------"

// Report produces a deterministic plain-text snapshot of the account:
// holdings grouped by kind in the fixed order Share, Commodity, Currency,
// sorted by aggregate value descending within a kind, followed by the cash
// balance and the total net worth.
func (a *Account) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PORTFOLIO REPORT (Day %d)\n", a.day)
	fmt.Fprintln(&b, reportRule)
	fmt.Fprintf(&b, "%-10s | %-10s | %-10s | %s\n", "TYPE", "SYMBOL", "QUANTITY", "VALUE")
	fmt.Fprintln(&b, reportRule)

	for _, s := range a.Summaries() {
		fmt.Fprintf(&b, "%-10s | %-10s | %-10s | %s\n",
			s.Kind, s.Symbol, s.Quantity, s.Value.Fixed())
	}

	fmt.Fprintln(&b, reportRule)
	fmt.Fprintf(&b, "CASH: %s\n", a.cash.Fixed())
	fmt.Fprintf(&b, "TOTAL NET WORTH: %s\n", a.TotalValue().Fixed())
	return b.String()
}
