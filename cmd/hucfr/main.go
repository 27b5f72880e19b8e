// Command hucfr trains and queries a heads-up pot-limit hold'em CFR
// strategy table.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

var version = "dev"

type cli struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`
	Train   trainCmd         `cmd:"" help:"Run CFR training and write a strategy file"`
	Query   queryCmd         `cmd:"" help:"Query a move from a trained strategy file"`
	Inspect inspectCmd       `cmd:"" help:"Print the number of info sets in a strategy file"`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("hucfr"),
		kong.Description("Heads-up pot-limit hold'em CFR solver"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	logger := log.New(os.Stderr)
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	if err := ctx.Run(logger); err != nil {
		fmt.Fprintln(os.Stderr, "hucfr:", err)
		os.Exit(1)
	}
}
