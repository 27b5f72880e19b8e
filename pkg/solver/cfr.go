package solver

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/nwilkes/hucfr/pkg/cards"
	"github.com/nwilkes/hucfr/pkg/game"
)

// Trainer runs outcome-sampled-over-chance, exhaustive-over-actions CFR
// (spec §4.5) and tracks average-game-value diagnostics across iterations
// (the original_source convergence supplement, see SPEC_FULL.md §11).
type Trainer struct {
	store  *Store
	rng    *rand.Rand
	logger *log.Logger

	iterations int
	utilitySum float64
}

// NewTrainer returns a Trainer seeded for reproducibility, or with a
// fresh entropy source when seed is nil (spec §6). A nil logger disables
// progress logging.
func NewTrainer(seed *int64, logger *log.Logger) *Trainer {
	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Trainer{
		store:  NewStore(),
		rng:    rng,
		logger: logger,
	}
}

// Train runs CFR for the given number of iterations and returns the
// resulting average-strategy table. Each iteration deals a fresh hand
// with a randomly chosen dealer seat so the table generalizes over both
// dealer positions rather than only ever training dealer-is-seat-0.
func (t *Trainer) Train(iterations int) (*StrategyTable, error) {
	for i := 0; i < iterations; i++ {
		dealer := t.rng.Intn(2)
		state := game.NewHand(dealer, t.rng)
		if err := game.Validate(state); err != nil {
			return nil, err
		}

		util := t.cfr(state, 1.0, 1.0)
		t.iterations++
		t.utilitySum += util

		if t.logger != nil && (i+1)%max(1, iterations/10) == 0 {
			t.logger.Info("training progress",
				"iteration", i+1,
				"total", iterations,
				"infosets", t.store.Len(),
				"avg_game_value", t.utilitySum/float64(t.iterations),
			)
		}
	}

	if t.logger != nil {
		t.logger.Info("training complete",
			"iterations", t.iterations,
			"infosets", t.store.Len(),
			"avg_game_value", t.AverageGameValue(),
		)
	}

	return newStrategyTable(t.store), nil
}

// Stats returns the number of completed iterations and the average
// terminal utility (from player 0's perspective) across them — a
// convergence smoke-test diagnostic, per SPEC_FULL.md §11.
func (t *Trainer) Stats() (iterations int, averageGameValue float64) {
	return t.iterations, t.AverageGameValue()
}

// AverageGameValue returns the running mean of the player-0 utility
// returned by each completed root iteration. It should trend toward zero
// as training approaches a symmetric equilibrium (spec §8 property 9).
func (t *Trainer) AverageGameValue() float64 {
	if t.iterations == 0 {
		return 0
	}
	return t.utilitySum / float64(t.iterations)
}

// Store exposes the underlying information-set store, primarily for
// tests that need to inspect node counts or regrets directly.
func (t *Trainer) Store() *Store {
	return t.store
}

// cfr recurses over the game tree using the "always player 0" utility
// convention (spec §9 Open Question): every return value, at every
// depth, is the expected utility for player 0. Regret updates convert to
// the acting player's perspective internally via utilForActor.
func (t *Trainer) cfr(state *game.State, reachP0, reachP1 float64) float64 {
	if state.Terminal {
		return state.Utility()
	}
	if state.Stage == game.Showdown {
		return showdownUtility(state)
	}

	player := state.Player
	fingerprint := state.Fingerprint()
	actions := state.LegalActions()
	node := t.store.GetOrCreate(fingerprint, actions)

	ownReach := reachP0
	if player == 1 {
		ownReach = reachP1
	}
	strategy := node.GetStrategy(ownReach)

	actionUtilP0 := make([]float64, len(actions))
	nodeUtilP0 := 0.0
	for i, a := range actions {
		child := state.Clone()
		child.Apply(a)

		var childUtil float64
		if player == 0 {
			childUtil = t.cfr(child, reachP0*strategy[i], reachP1)
		} else {
			childUtil = t.cfr(child, reachP0, reachP1*strategy[i])
		}
		actionUtilP0[i] = childUtil
		nodeUtilP0 += strategy[i] * childUtil
	}

	utilForActor := func(utilP0 float64) float64 {
		if player == 0 {
			return utilP0
		}
		return -utilP0
	}
	nodeUtilForActor := utilForActor(nodeUtilP0)

	oppReach := reachP1
	if player == 1 {
		oppReach = reachP0
	}

	regrets := make([]float64, len(actions))
	for i := range actions {
		regrets[i] = oppReach * (utilForActor(actionUtilP0[i]) - nodeUtilForActor)
	}
	node.AddRegrets(regrets)

	return nodeUtilP0
}

// showdownUtility evaluates both hole hands against the board and returns
// the result from player 0's perspective (spec §4.2.2): +pot if player 0
// wins, -pot if player 1 wins, 0 on an exact tie.
func showdownUtility(state *game.State) float64 {
	board := state.BoardCards()
	hand0 := append(append([]cards.Card{}, state.Hole[0][:]...), board...)
	hand1 := append(append([]cards.Card{}, state.Hole[1][:]...), board...)

	score0 := cards.Evaluate(hand0)
	score1 := cards.Evaluate(hand1)

	switch score0.Compare(score1) {
	case 1:
		return float64(state.Pot)
	case -1:
		return -float64(state.Pot)
	default:
		return 0
	}
}
