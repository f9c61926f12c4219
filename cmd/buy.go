package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type buyCmd struct {
	kind     string
	symbol   string
	price    string
	quantity string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase an asset at its market price" }
func (*buyCmd) Usage() string {
	return `sfo buy -k <kind> -s <symbol> -p <price> -q <quantity>

  Records a purchase dated at the portfolio's current day. The cash
  balance is reduced by price*quantity plus the kind's acquisition cost;
  the purchase is rejected when that exceeds the available cash.

Usage Examples:
$ sfo buy -k share -s AAPL -p 150 -q 10
$ sfo buy -k commodity -s GOLD -p 1800 -q 2

`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "share", "Asset kind: share, commodity or currency.")
	f.StringVar(&c.symbol, "s", "", "Asset symbol.")
	f.StringVar(&c.price, "p", "", "Market price per unit.")
	f.StringVar(&c.quantity, "q", "", "Quantity to buy.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	asset, err := stockfolio.NewAsset(kind, c.symbol, stockfolio.M(price))
	if err != nil {
		return fail(err)
	}

	account, err := loadAccount()
	if err != nil {
		return fail(err)
	}
	if err := account.Buy(asset, quantity); err != nil {
		return fail(err)
	}
	if err := saveAccount(account); err != nil {
		return fail(err)
	}
	fmt.Printf("Bought %s %s, cash balance %s\n", quantity, asset.Symbol(), account.Cash())
	return subcommands.ExitSuccess
}
