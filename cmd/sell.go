package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type sellCmd struct {
	symbol   string
	price    string
	quantity string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell a held asset at the current quote" }
func (*sellCmd) Usage() string {
	return `sfo sell -s <symbol> -q <quantity> -p <price>

  Sells first-in-first-out: the oldest purchase lots are consumed first,
  and the realized profit is computed against their exact cost basis.
  The supplied price is the live quote and is authoritative for the
  revenue, even when it differs from the last recorded purchase price.

Usage Examples:
$ sfo sell -s AAPL -q 4 -p 160

`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Asset symbol.")
	f.StringVar(&c.price, "p", "", "Current market price per unit.")
	f.StringVar(&c.quantity, "q", "", "Quantity to sell.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		return fail(fmt.Errorf("invalid -p value %q: %w", c.price, err))
	}
	quantity, err := stockfolio.ParseQuantity(c.quantity)
	if err != nil {
		return fail(fmt.Errorf("invalid -q value %q: %w", c.quantity, err))
	}

	account, err := loadAccount()
	if err != nil {
		return fail(err)
	}
	profit, err := account.Sell(c.symbol, quantity, stockfolio.M(price))
	if err != nil {
		return fail(err)
	}
	if err := saveAccount(account); err != nil {
		return fail(err)
	}
	fmt.Printf("Sold %s %s, realized profit %s, cash balance %s\n",
		quantity, c.symbol, profit.SignedString(), account.Cash())
	return subcommands.ExitSuccess
}
