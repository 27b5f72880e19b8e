// Package solver implements the information-set store, CFR recursion,
// average-strategy derivation, move query, and strategy persistence.
package solver

import (
	"github.com/nwilkes/hucfr/pkg/game"
)

// InfoSet owns the regret and strategy-sum vectors for a single
// information set. It is created lazily on first visit and its action
// set is immutable thereafter (spec §4.4).
type InfoSet struct {
	Actions     []game.Action
	RegretSum   []float64
	StrategySum []float64
}

func newInfoSet(actions []game.Action) *InfoSet {
	return &InfoSet{
		Actions:     actions,
		RegretSum:   make([]float64, len(actions)),
		StrategySum: make([]float64, len(actions)),
	}
}

// GetStrategy computes the current strategy by regret matching, weighted
// by the realization weight w, accumulates it into StrategySum, and
// returns it (spec §4.4).
func (n *InfoSet) GetStrategy(w float64) []float64 {
	strategy := make([]float64, len(n.Actions))

	positiveSum := 0.0
	for i, r := range n.RegretSum {
		if r > 0 {
			strategy[i] = r
			positiveSum += r
		}
	}

	if positiveSum > 0 {
		for i := range strategy {
			strategy[i] /= positiveSum
		}
	} else {
		uniform := 1.0 / float64(len(strategy))
		for i := range strategy {
			strategy[i] = uniform
		}
	}

	for i, p := range strategy {
		n.StrategySum[i] += w * p
	}
	return strategy
}

// AddRegrets accumulates the counterfactual-regret update for each action.
func (n *InfoSet) AddRegrets(regrets []float64) {
	for i, r := range regrets {
		n.RegretSum[i] += r
	}
}

// AverageStrategy returns the time-averaged strategy that converges to
// the equilibrium (spec §4.4), or uniform if the node was never visited
// with positive realization weight.
func (n *InfoSet) AverageStrategy() []float64 {
	avg := make([]float64, len(n.Actions))
	total := 0.0
	for _, s := range n.StrategySum {
		total += s
	}
	if total <= 0 {
		uniform := 1.0 / float64(len(avg))
		for i := range avg {
			avg[i] = uniform
		}
		return avg
	}
	for i, s := range n.StrategySum {
		avg[i] = s / total
	}
	return avg
}

// Store maps fingerprints to information-set nodes. It is mutated only by
// the training loop and requires no locking because training is
// single-threaded (spec §5).
type Store struct {
	nodes map[string]*InfoSet
}

// NewStore returns an empty information-set store.
func NewStore() *Store {
	return &Store{nodes: make(map[string]*InfoSet)}
}

// GetOrCreate returns the node for fingerprint, creating it with a
// zero-initialized regret/strategy vector if this is the first visit.
func (s *Store) GetOrCreate(fingerprint string, actions []game.Action) *InfoSet {
	if n, ok := s.nodes[fingerprint]; ok {
		return n
	}
	n := newInfoSet(actions)
	s.nodes[fingerprint] = n
	return n
}

// Len returns the number of information sets created so far.
func (s *Store) Len() int {
	return len(s.nodes)
}
