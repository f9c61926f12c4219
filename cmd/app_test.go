package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

// run executes a command with the given arguments against its own flag set.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %s flags: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), f)
}

func TestCommands_Workflow(t *testing.T) {
	*portfolioFile = filepath.Join(t.TempDir(), "portfolio.txt")

	if got := run(t, &initCmd{}, "-cash", "10000"); got != subcommands.ExitSuccess {
		t.Fatalf("init = %v", got)
	}
	// init refuses to clobber an existing snapshot.
	if got := run(t, &initCmd{}, "-cash", "1"); got != subcommands.ExitFailure {
		t.Fatalf("second init = %v; want failure", got)
	}

	if got := run(t, &buyCmd{}, "-k", "share", "-s", "AAPL", "-p", "150", "-q", "10"); got != subcommands.ExitSuccess {
		t.Fatalf("buy = %v", got)
	}
	if got := run(t, &dayCmd{}, "-n", "10"); got != subcommands.ExitSuccess {
		t.Fatalf("day = %v", got)
	}
	if got := run(t, &sellCmd{}, "-s", "AAPL", "-q", "4", "-p", "160"); got != subcommands.ExitSuccess {
		t.Fatalf("sell = %v", got)
	}

	account, err := stockfolio.LoadAccount(*portfolioFile)
	if err != nil {
		t.Fatal(err)
	}
	if !account.Position("AAPL").Equal(stockfolio.Q(6)) {
		t.Errorf("Position(AAPL) = %s; want 6", account.Position("AAPL"))
	}
	if account.CurrentDay() != 10 {
		t.Errorf("CurrentDay() = %d; want 10", account.CurrentDay())
	}
	// 10000 - 1500 + 4*160
	if !account.Cash().Equal(stockfolio.M(9140)) {
		t.Errorf("cash = %s; want %s", account.Cash(), stockfolio.M(9140))
	}
}

func TestCommands_Orders(t *testing.T) {
	dir := t.TempDir()
	*portfolioFile = filepath.Join(dir, "portfolio.txt")
	*ordersFile = filepath.Join(dir, "orders.txt")

	if got := run(t, &initCmd{}, "-cash", "10000"); got != subcommands.ExitSuccess {
		t.Fatalf("init = %v", got)
	}
	if got := run(t, &buyCmd{}, "-k", "share", "-s", "AAPL", "-p", "150", "-q", "10"); got != subcommands.ExitSuccess {
		t.Fatalf("buy = %v", got)
	}

	// peeking an empty book is fine
	if got := run(t, &ordersCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("orders on empty book = %v", got)
	}

	if got := run(t, &orderCmd{}, "-side", "buy", "-s", "AAPL", "-p", "140", "-q", "5"); got != subcommands.ExitSuccess {
		t.Fatalf("buy order = %v", got)
	}
	if got := run(t, &orderCmd{}, "-side", "sell", "-s", "AAPL", "-p", "180", "-q", "4"); got != subcommands.ExitSuccess {
		t.Fatalf("sell order = %v", got)
	}
	// advisory checks still reject impossible intents
	if got := run(t, &orderCmd{}, "-side", "buy", "-s", "AAPL", "-p", "150", "-q", "1000"); got != subcommands.ExitFailure {
		t.Fatalf("oversized buy order = %v; want failure", got)
	}
	if got := run(t, &orderCmd{}, "-side", "sell", "-s", "NOPE", "-p", "1", "-q", "1"); got != subcommands.ExitFailure {
		t.Fatalf("sell order on unheld symbol = %v; want failure", got)
	}
	if got := run(t, &orderCmd{}, "-side", "hold", "-s", "AAPL", "-p", "1", "-q", "1"); got != subcommands.ExitFailure {
		t.Fatalf("bad side = %v; want failure", got)
	}

	if got := run(t, &ordersCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("orders = %v", got)
	}

	// intents survive on disk across invocations
	account, err := stockfolio.LoadAccount(*portfolioFile)
	if err != nil {
		t.Fatal(err)
	}
	book, err := stockfolio.LoadOrders(*ordersFile, account)
	if err != nil {
		t.Fatal(err)
	}
	if book.PendingBuys() != 1 || book.PendingSells() != 1 {
		t.Errorf("pending = %d buys, %d sells; want 1 and 1", book.PendingBuys(), book.PendingSells())
	}
	// cash and holdings never moved
	if !account.Cash().Equal(stockfolio.M(8495)) || !account.Position("AAPL").Equal(stockfolio.Q(10)) {
		t.Errorf("account mutated by orders: cash %s, position %s", account.Cash(), account.Position("AAPL"))
	}
}

func TestCommands_Rejections(t *testing.T) {
	*portfolioFile = filepath.Join(t.TempDir(), "portfolio.txt")

	// every trading command needs an initialized portfolio
	if got := run(t, &buyCmd{}, "-s", "AAPL", "-p", "150", "-q", "1"); got != subcommands.ExitFailure {
		t.Errorf("buy without init = %v; want failure", got)
	}

	if got := run(t, &initCmd{}, "-cash", "100"); got != subcommands.ExitSuccess {
		t.Fatalf("init = %v", got)
	}

	testCases := []struct {
		name string
		cmd  subcommands.Command
		args []string
	}{
		{"bad kind", &buyCmd{}, []string{"-k", "bond", "-s", "X", "-p", "1", "-q", "1"}},
		{"bad price", &buyCmd{}, []string{"-s", "X", "-p", "abc", "-q", "1"}},
		{"insufficient funds", &buyCmd{}, []string{"-s", "X", "-p", "1000", "-q", "1"}},
		{"sell unknown symbol", &sellCmd{}, []string{"-s", "NOPE", "-q", "1", "-p", "1"}},
		{"non positive day", &dayCmd{}, []string{"-n", "0"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := run(t, tc.cmd, tc.args...); got != subcommands.ExitFailure {
				t.Errorf("%s = %v; want failure", tc.name, got)
			}
		})
	}

	// rejected commands never altered the snapshot
	account, err := stockfolio.LoadAccount(*portfolioFile)
	if err != nil {
		t.Fatal(err)
	}
	if !account.Cash().Equal(stockfolio.M(100)) || account.HoldingsCount() != 0 {
		t.Errorf("snapshot mutated by rejected commands: cash %s, holdings %d",
			account.Cash(), account.HoldingsCount())
	}
}
