package solver

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/nwilkes/hucfr/pkg/game"
)

// SelectMove is the move-query operation (spec §4.6): a pure, idempotent
// function of (strategy table, state, player) that never mutates table.
// If no node exists for the state's fingerprint, it falls back to a
// uniformly random legal action (UnknownInfoSet is not an error).
func SelectMove(table *StrategyTable, state *game.State, rng *rand.Rand, logger *log.Logger) (game.Action, error) {
	if err := game.Validate(state); err != nil {
		return 0, err
	}

	legal := state.LegalActions()
	fingerprint := state.Fingerprint()

	dist, ok := table.Lookup(fingerprint)
	if !ok {
		if logger != nil {
			logger.Debug("unknown info set, falling back to uniform random", "fingerprint", fingerprint)
		}
		if rng == nil {
			rng = rand.New(rand.NewSource(rand.Int63()))
		}
		return legal[rng.Intn(len(legal))], nil
	}

	return bestAction(dist, legal), nil
}
