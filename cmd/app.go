// Package cmd implements the CLI application to manage a portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

// Commands lists the subcommands the sfo binary registers.
var Commands = []subcommands.Command{
	subcommands.HelpCommand(),
	subcommands.FlagsCommand(),
	subcommands.CommandsCommand(),
	&initCmd{},
	&buyCmd{},
	&sellCmd{},
	&dayCmd{},
	&orderCmd{},
	&ordersCmd{},
	&holdingCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.txt", "Path to the portfolio snapshot file")
var ordersFile = flag.String("orders-file", "orders.txt", "Path to the pending orders file")

// loadAccount reads the account from the app snapshot file.
func loadAccount() (*stockfolio.Account, error) {
	a, err := stockfolio.LoadAccount(*portfolioFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("portfolio file %q does not exist, run 'sfo init' first", *portfolioFile)
	}
	return a, err
}

// saveAccount writes the account back to the app snapshot file.
func saveAccount(a *stockfolio.Account) error {
	return stockfolio.SaveAccount(*portfolioFile, a)
}

// loadOrderBook reads the pending intents for the account. A missing orders
// file simply means an empty book.
func loadOrderBook(a *stockfolio.Account) (*stockfolio.OrderBook, error) {
	b, err := stockfolio.LoadOrders(*ordersFile, a)
	if errors.Is(err, fs.ErrNotExist) {
		return stockfolio.NewOrderBook(a), nil
	}
	return b, err
}

// saveOrderBook writes the pending intents back to the orders file.
func saveOrderBook(b *stockfolio.OrderBook) error {
	return stockfolio.SaveOrders(*ordersFile, b)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when no pretty rendering is possible.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// parseKindFlag parses the -k flag value into an asset kind.
func parseKindFlag(k string) (stockfolio.Kind, error) {
	kind, err := stockfolio.ParseKind(k)
	if err != nil {
		return 0, fmt.Errorf("invalid -k value: %w (expected share, commodity or currency)", err)
	}
	return kind, nil
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
