package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/nwilkes/hucfr/pkg/solver"
)

// inspectCmd prints the size of a persisted strategy table, a quick
// sanity check that a training run produced something usable.
type inspectCmd struct {
	Strategy string `kong:"required,help='Path to a trained strategy JSON file'"`
}

func (c *inspectCmd) Run(logger *log.Logger) error {
	table, err := solver.LoadFromFile(c.Strategy)
	if err != nil {
		return err
	}
	fmt.Printf("info sets: %d\n", table.NumInfoSets())
	logger.Debug("inspected strategy file", "path", c.Strategy, "infosets", table.NumInfoSets())
	return nil
}
