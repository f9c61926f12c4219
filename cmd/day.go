package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type dayCmd struct {
	days int
}

func (*dayCmd) Name() string     { return "day" }
func (*dayCmd) Synopsis() string { return "advance the simulated day counter" }
func (*dayCmd) Usage() string {
	return `sfo day -n <days>

  Moves simulated time forward. Duration-dependent valuations (commodity
  storage) and lot holding durations follow the day counter, so advance
  it before recording trades meant to happen on a later day.

Usage Examples:
$ sfo day -n 10

`
}

func (c *dayCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "n", 1, "Number of days to advance.")
}

func (c *dayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days <= 0 {
		return fail(fmt.Errorf("-n must be positive, got %d", c.days))
	}
	account, err := loadAccount()
	if err != nil {
		return fail(err)
	}
	account.AdvanceDay(c.days)
	if err := saveAccount(account); err != nil {
		return fail(err)
	}
	fmt.Printf("Now at day %d\n", account.CurrentDay())
	return subcommands.ExitSuccess
}
