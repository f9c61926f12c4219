package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type ordersCmd struct{}

func (*ordersCmd) Name() string           { return "orders" }
func (*ordersCmd) Synopsis() string       { return "show the best pending buy and sell intents" }
func (*ordersCmd) SetFlags(*flag.FlagSet) {}
func (*ordersCmd) Usage() string {
	return `sfo orders

  Peeks at the pending orders file: the buy intent with the highest price
  limit and the sell intent with the lowest one, without removing either.

Usage Examples:
$ sfo orders

`
}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := loadAccount()
	if err != nil {
		return fail(err)
	}
	book, err := loadOrderBook(account)
	if err != nil {
		return fail(err)
	}

	if best, ok := book.PeekBestBuy(); ok {
		fmt.Printf("Best of %d pending buys:  %s\n", book.PendingBuys(), best)
	} else {
		fmt.Println("No pending buy intent.")
	}
	if best, ok := book.PeekBestSell(); ok {
		fmt.Printf("Best of %d pending sells: %s\n", book.PendingSells(), best)
	} else {
		fmt.Println("No pending sell intent.")
	}
	return subcommands.ExitSuccess
}
