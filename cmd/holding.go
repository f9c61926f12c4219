package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stockfolio/renderer"
	"github.com/google/subcommands"
)

type holdingCmd struct {
	plain bool
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "show the portfolio holdings and net worth" }
func (*holdingCmd) Usage() string {
	return `sfo holding [-plain]

  Shows every held asset grouped by kind, with its quantity and current
  value, followed by the cash balance and the total net worth. With
  -plain, prints the fixed-width text report instead of markdown.

Usage Examples:
$ sfo holding

`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print the plain fixed-width report.")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := loadAccount()
	if err != nil {
		return fail(err)
	}
	if c.plain {
		fmt.Print(account.Report())
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.HoldingMarkdown(renderer.NewHolding(account)))
	return subcommands.ExitSuccess
}
