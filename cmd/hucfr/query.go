package main

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/nwilkes/hucfr/pkg/game"
	"github.com/nwilkes/hucfr/pkg/solver"
)

// queryCmd loads a trained strategy table and resolves the recommended
// move for a fresh dealt hand (spec.md §4.6).
type queryCmd struct {
	Strategy string `kong:"required,help='Path to a trained strategy JSON file'"`
	Dealer   int    `kong:"default='0',help='Seat (0 or 1) that is on the button'"`
	Seed     *int64 `kong:"help='Deterministic RNG seed for dealing and the uniform fallback'"`
}

func (c *queryCmd) Run(logger *log.Logger) error {
	table, err := solver.LoadFromFile(c.Strategy)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if c.Seed != nil {
		rng = rand.New(rand.NewSource(*c.Seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	state := game.NewHand(c.Dealer, rng)
	action, err := solver.SelectMove(table, state, rng, logger)
	if err != nil {
		return err
	}

	fmt.Printf("fingerprint: %s\n", state.Fingerprint())
	fmt.Printf("recommended action: %s\n", action)
	return nil
}
