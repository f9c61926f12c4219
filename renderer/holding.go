package renderer

import (
	"github.com/etnz/stockfolio"
)

// HoldingRow is one asset line of the holding report, already formatted.
type HoldingRow struct {
	Kind     string
	Symbol   string
	Quantity string
	Value    string
}

// Holding is the renderable view of an account at its current day.
type Holding struct {
	Day   int
	Rows  []HoldingRow
	Cash  string
	Total string
}

// NewHolding builds the renderable view from an account.
func NewHolding(a *stockfolio.Account) *Holding {
	h := &Holding{
		Day:   a.CurrentDay(),
		Cash:  a.Cash().String(),
		Total: a.TotalValue().String(),
	}
	for _, s := range a.Summaries() {
		h.Rows = append(h.Rows, HoldingRow{
			Kind:     s.Kind.String(),
			Symbol:   s.Symbol,
			Quantity: s.Quantity.String(),
			Value:    s.Value.String(),
		})
	}
	return h
}

// HoldingMarkdown renders the Holding struct to a markdown string.
func HoldingMarkdown(h *Holding) string {
	partials := map[string]string{
		"holding_title":  "holding_title.md",
		"holding_assets": "holding_assets.md",
		"holding_cash":   "holding_cash.md",
	}
	return renderTemplate("holding", "holding.md", partials, h)
}
