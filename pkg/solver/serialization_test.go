package solver

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSONFromJSONRoundTrip(t *testing.T) {
	original := &StrategyTable{entries: map[string]map[int]float64{
		"fp1": {0: 0.4, 1: 0.6},
		"fp2": {1: 1.0},
	}}

	data, err := original.ToJSON()
	require.NoError(t, err)

	restored, err := FromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, original.NumInfoSets(), restored.NumInfoSets())
	dist, ok := restored.Lookup("fp1")
	require.True(t, ok)
	assert.InDelta(t, 0.4, dist[0], 1e-9)
	assert.InDelta(t, 0.6, dist[1], 1e-9)
}

func TestSaveToFileLoadFromFileRoundTrip(t *testing.T) {
	original := &StrategyTable{entries: map[string]map[int]float64{
		"fp": {0: 1.0},
	}}
	path := filepath.Join(t.TempDir(), "strategy.json")

	require.NoError(t, original.SaveToFile(path))

	restored, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, restored.NumInfoSets())
}

func TestLoadFromFileMissingFileReturnsError(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
}

func TestFromJSONRejectsNonNumericActionCode(t *testing.T) {
	data := []byte(`{"version":"1.0","run_id":"x","strategies":{"fp":{"raise":1.0}}}`)
	_, err := FromJSON(data)
	require.Error(t, err)
	var malformed *MalformedStrategyError
	assert.ErrorAs(t, err, &malformed)
}

func TestFromJSONRejectsOutOfRangeActionCode(t *testing.T) {
	data := []byte(`{"version":"1.0","run_id":"x","strategies":{"fp":{"7":1.0}}}`)
	_, err := FromJSON(data)
	require.Error(t, err)
	var malformed *MalformedStrategyError
	assert.ErrorAs(t, err, &malformed)
}

func TestFromJSONRejectsNegativeProbability(t *testing.T) {
	data := []byte(`{"version":"1.0","run_id":"x","strategies":{"fp":{"0":-0.1,"1":1.1}}}`)
	_, err := FromJSON(data)
	require.Error(t, err)
	var malformed *MalformedStrategyError
	assert.ErrorAs(t, err, &malformed)
}

func TestFromJSONRejectsProbabilitiesNotSummingToOne(t *testing.T) {
	data := []byte(`{"version":"1.0","run_id":"x","strategies":{"fp":{"0":0.2,"1":0.2}}}`)
	_, err := FromJSON(data)
	require.Error(t, err)
	var malformed *MalformedStrategyError
	assert.ErrorAs(t, err, &malformed)
}

func TestFromJSONRejectsInvalidTopLevelJSON(t *testing.T) {
	_, err := FromJSON([]byte(`not json`))
	require.Error(t, err)
	var malformed *MalformedStrategyError
	assert.ErrorAs(t, err, &malformed)
}

func TestToJSONEmbedsFreshRunIDPerCall(t *testing.T) {
	table := &StrategyTable{entries: map[string]map[int]float64{"fp": {0: 1.0}}}
	a, err := table.ToJSON()
	require.NoError(t, err)
	b, err := table.ToJSON()
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "run_id should vary between serializations")
}
