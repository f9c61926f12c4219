package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type initCmd struct {
	cash string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new portfolio snapshot file" }
func (*initCmd) Usage() string {
	return `sfo init -cash <amount>

  Creates the portfolio snapshot file with an initial cash balance and
  no holdings. Refuses to overwrite an existing file.

Usage Examples:
$ sfo init -cash 10000

`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cash, "cash", "0", "Initial cash balance.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(*portfolioFile); err == nil {
		return fail(fmt.Errorf("portfolio file %q already exists", *portfolioFile))
	}

	cash, err := decimal.NewFromString(c.cash)
	if err != nil {
		return fail(fmt.Errorf("invalid -cash value %q: %w", c.cash, err))
	}
	account, err := stockfolio.New(stockfolio.M(cash))
	if err != nil {
		return fail(err)
	}
	if err := saveAccount(account); err != nil {
		return fail(err)
	}
	fmt.Printf("Created %s with %s in cash\n", *portfolioFile, account.Cash())
	return subcommands.ExitSuccess
}
