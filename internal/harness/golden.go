package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// RunWithGolden loads a scenario file, runs it, requires it to pass,
// and compares the serialized result against the golden file named
// after the scenario. Regenerate goldens with `go test -update`.
func RunWithGolden(t *testing.T, scenarioPath string) {
	t.Helper()

	scenario, err := LoadScenario(scenarioPath)
	require.NoError(t, err, "scenario must load")

	result, err := Run(scenario)
	require.NoError(t, err, "scenario must execute")
	require.True(t, result.Pass, "scenario failed: %v", result.Errors)

	data, err := json.MarshalIndent(result, "", "  ")
	require.NoError(t, err)
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
}
