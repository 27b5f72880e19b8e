package solver

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/google/uuid"
)

// MalformedStrategyError reports a loaded strategy file that violates the
// fingerprint -> action-code -> probability mapping contract (spec §6,
// §7). It is fatal at load time.
type MalformedStrategyError struct {
	Reason string
}

func (e *MalformedStrategyError) Error() string {
	return fmt.Sprintf("solver: malformed strategy: %s", e.Reason)
}

// probabilityTolerance is the floating-point slack allowed when checking
// that a fingerprint's action distribution sums to 1 (spec §6).
const probabilityTolerance = 1e-6

// serializedProfile is the on-disk JSON shape. The logical contract is
// the fingerprint -> action-code-string -> probability mapping in spec
// §6; RunID is purely an ambient operator convenience (SPEC_FULL.md §9.4)
// and has no bearing on that contract.
type serializedProfile struct {
	Version    string                        `json:"version"`
	RunID      string                        `json:"run_id"`
	Strategies map[string]map[string]float64 `json:"strategies"`
}

// ToJSON serializes the strategy table to its JSON contract form.
func (t *StrategyTable) ToJSON() ([]byte, error) {
	return t.toJSON(uuid.NewString())
}

func (t *StrategyTable) toJSON(runID string) ([]byte, error) {
	profile := serializedProfile{
		Version:    "1.0",
		RunID:      runID,
		Strategies: make(map[string]map[string]float64, len(t.entries)),
	}
	for fp, dist := range t.entries {
		strDist := make(map[string]float64, len(dist))
		for action, prob := range dist {
			strDist[strconv.Itoa(action)] = prob
		}
		profile.Strategies[fp] = strDist
	}
	return json.MarshalIndent(profile, "", "  ")
}

// FromJSON parses and validates a strategy table from its JSON contract
// form, returning a *MalformedStrategyError if the mapping contract is
// violated (spec §7).
func FromJSON(data []byte) (*StrategyTable, error) {
	var profile serializedProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, &MalformedStrategyError{Reason: err.Error()}
	}

	table := &StrategyTable{entries: make(map[string]map[int]float64, len(profile.Strategies))}
	for fp, strDist := range profile.Strategies {
		dist := make(map[int]float64, len(strDist))
		sum := 0.0
		for actionStr, prob := range strDist {
			action, err := strconv.Atoi(actionStr)
			if err != nil {
				return nil, &MalformedStrategyError{Reason: fmt.Sprintf("fingerprint %q: action code %q is not numeric", fp, actionStr)}
			}
			if action < 0 || action > 2 {
				return nil, &MalformedStrategyError{Reason: fmt.Sprintf("fingerprint %q: action code %d out of range [0,2]", fp, action)}
			}
			if prob < 0 {
				return nil, &MalformedStrategyError{Reason: fmt.Sprintf("fingerprint %q: negative probability for action %d", fp, action)}
			}
			dist[action] = prob
			sum += prob
		}
		if math.Abs(sum-1) > probabilityTolerance {
			return nil, &MalformedStrategyError{Reason: fmt.Sprintf("fingerprint %q: probabilities sum to %f, want 1", fp, sum)}
		}
		table.entries[fp] = dist
	}
	return table, nil
}

// SaveToFile persists the strategy table as JSON. I/O failures surface as
// the stdlib's own wrapped *fs.PathError, per SPEC_FULL.md §7.
func (t *StrategyTable) SaveToFile(path string) error {
	data, err := t.ToJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFromFile loads and validates a strategy table from a JSON file.
func LoadFromFile(path string) (*StrategyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromJSON(data)
}
