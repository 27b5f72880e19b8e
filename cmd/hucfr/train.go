package main

import (
	"github.com/charmbracelet/log"

	"github.com/nwilkes/hucfr/pkg/solver"
)

// trainCmd runs CFR self-play and writes the resulting average-strategy
// table to disk (spec.md §4.5, §6).
type trainCmd struct {
	Iterations int    `kong:"default='10000',help='Number of root-level CFR iterations'"`
	Seed       *int64 `kong:"help='Deterministic RNG seed (omit for a fresh entropy source)'"`
	Out        string `kong:"default='strategy.json',help='Output path for the strategy file'"`
}

func (c *trainCmd) Run(logger *log.Logger) error {
	logger.Info("starting training", "iterations", c.Iterations, "out", c.Out)

	trainer := solver.NewTrainer(c.Seed, logger)
	table, err := trainer.Train(c.Iterations)
	if err != nil {
		return err
	}

	if err := table.SaveToFile(c.Out); err != nil {
		return err
	}

	iterations, avgValue := trainer.Stats()
	logger.Info("training finished",
		"iterations", iterations,
		"infosets", table.NumInfoSets(),
		"avg_game_value", avgValue,
		"out", c.Out,
	)
	return nil
}
