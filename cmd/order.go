package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type orderCmd struct {
	side     string
	kind     string
	symbol   string
	price    string
	quantity string
}

func (*orderCmd) Name() string     { return "order" }
func (*orderCmd) Synopsis() string { return "place a pending buy or sell intent" }
func (*orderCmd) Usage() string {
	return `sfo order -side <buy|sell> -k <kind> -s <symbol> -p <limit> -q <quantity>

  Records an intent in the pending orders file without moving any cash or
  holdings. A buy intent must fit in the current cash balance and a sell
  intent must name a currently held quantity, but nothing is reserved:
  the checks happen again when the intent is acted on with buy or sell.

Usage Examples:
$ sfo order -side buy -k share -s AAPL -p 140 -q 10
$ sfo order -side sell -s AAPL -p 180 -q 5

`
}

func (c *orderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.side, "side", "", "Order side: buy or sell.")
	f.StringVar(&c.kind, "k", "share", "Asset kind: share, commodity or currency.")
	f.StringVar(&c.symbol, "s", "", "Asset symbol.")
	f.StringVar(&c.price, "p", "", "Price limit per unit.")
	f.StringVar(&c.quantity, "q", "", "Quantity the intent covers.")
}

func (c *orderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := parseKindFlag(c.kind)
	if err != nil {
		return fail(err)
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		return fail(fmt.Errorf("invalid -p value %q: %w", c.price, err))
	}
	quantity, err := stockfolio.ParseQuantity(c.quantity)
	if err != nil {
		return fail(fmt.Errorf("invalid -q value %q: %w", c.quantity, err))
	}
	order, err := stockfolio.NewOrder(
		stockfolio.Side(strings.ToUpper(c.side)), kind, c.symbol, stockfolio.M(price), quantity)
	if err != nil {
		return fail(err)
	}

	account, err := loadAccount()
	if err != nil {
		return fail(err)
	}
	book, err := loadOrderBook(account)
	if err != nil {
		return fail(err)
	}
	if err := book.Place(order); err != nil {
		return fail(err)
	}
	if err := saveOrderBook(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Placed %s\n", order)
	return subcommands.ExitSuccess
}
