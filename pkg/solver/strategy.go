package solver

import "github.com/nwilkes/hucfr/pkg/game"

// StrategyTable is the serialized average-strategy output: a mapping from
// fingerprint string to an action-code -> probability distribution
// (spec §3, §6). Once built or loaded it is treated as immutable — move
// queries only ever read it.
type StrategyTable struct {
	entries map[string]map[int]float64
}

// newStrategyTable flattens an information-set store into its
// average-strategy table (spec §4.5: "After training, produce the
// strategy table by averaging each node").
func newStrategyTable(store *Store) *StrategyTable {
	t := &StrategyTable{entries: make(map[string]map[int]float64, len(store.nodes))}
	for fp, node := range store.nodes {
		avg := node.AverageStrategy()
		dist := make(map[int]float64, len(node.Actions))
		for i, a := range node.Actions {
			dist[int(a)] = avg[i]
		}
		t.entries[fp] = dist
	}
	return t
}

// Lookup returns the action -> probability distribution for a
// fingerprint, and whether one was found.
func (t *StrategyTable) Lookup(fingerprint string) (map[int]float64, bool) {
	dist, ok := t.entries[fingerprint]
	return dist, ok
}

// NumInfoSets returns the number of fingerprints carried by the table.
func (t *StrategyTable) NumInfoSets() int {
	return len(t.entries)
}

// bestAction returns the action with the highest probability in dist,
// breaking ties by the lowest numeric action code (spec §4.6) regardless
// of the order legal is given in.
func bestAction(dist map[int]float64, legal []game.Action) game.Action {
	best := legal[0]
	bestProb := dist[int(best)]
	for _, a := range legal[1:] {
		p := dist[int(a)]
		if p > bestProb || (p == bestProb && a < best) {
			best = a
			bestProb = p
		}
	}
	return best
}
