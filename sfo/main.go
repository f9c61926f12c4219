package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stockfolio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)

	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{}
	}

	// Shell completion; a no-op outside of a completion request.
	(&complete.Command{Sub: sub}).Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
