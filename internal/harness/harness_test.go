package harness

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	scenariosDir  = filepath.Join("..", "..", "testdata", "scenarios")
	valuesFixture = filepath.Join("..", "..", "testdata", "fixtures", "values.yaml")
)

func TestRunWithGolden_Scenarios(t *testing.T) {
	for _, name := range []string{"number_arrays", "length_first"} {
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(filepath.Join(scenariosDir, name+".yaml"))
			require.NoError(t, err)

			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}

func TestRun_ReportsFailedChecks(t *testing.T) {
	scenario := &Scenario{
		Name:        "wrong_expectations",
		Description: "Expectations that do not hold",
		Fixture:     valuesFixture,
		Checks: []Check{
			{Type: CheckCompare, Values: []string{"ints", "floats"}, Want: "less"},
			{Type: CheckEqual, Values: []string{"one", "ints"}, Want: "false"},
			{Type: CheckSameHash, Values: []string{"ints", "ints-greater"}, Want: "true"},
			{Type: CheckSort, Values: []string{"one", "empty-ints"}, Order: []string{"one", "empty-ints"}},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Trace, 4)
	require.Len(t, result.Errors, 3)

	assert.Equal(t, "equal", result.Trace[0].Got)
	assert.True(t, result.Trace[1].Pass)
	assert.Equal(t, "empty-ints,one", result.Trace[3].Got)
	assert.Contains(t, result.Errors[0], "want less, got equal")

	for i, event := range result.Trace {
		assert.Equal(t, i+1, event.Seq)
	}
}

func TestRun_LengthFirstChangesOrder(t *testing.T) {
	fixture := filepath.Join(t.TempDir(), "arrays.yaml")
	doc := `values:
  - name: two
    kind: int[]
    value: [2]
  - name: one-nine
    kind: int[]
    value: [1, 9]
`
	require.NoError(t, os.WriteFile(fixture, []byte(doc), 0644))

	scenario := &Scenario{Name: "s", Fixture: fixture, Checks: []Check{
		{Type: CheckCompare, Values: []string{"two", "one-nine"}, Want: "greater"},
	}}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass)

	scenario.Options.LengthFirst = true
	result, err = Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Equal(t, "less", result.Trace[0].Got)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		contains string
	}{
		{
			name: "unknown value",
			scenario: Scenario{Name: "s", Fixture: valuesFixture, Checks: []Check{
				{Type: CheckEqual, Values: []string{"ints", "nope"}, Want: "true"},
			}},
			contains: `no value named "nope"`,
		},
		{
			name:     "bad precedence",
			scenario: Scenario{Name: "s", Fixture: valuesFixture, Options: Options{Precedence: []string{"colour"}}},
			contains: "colour",
		},
		{
			name:     "missing fixture",
			scenario: Scenario{Name: "s", Fixture: filepath.Join(t.TempDir(), "missing.yaml")},
			contains: "F001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(&tt.scenario)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestHarness_Logger(t *testing.T) {
	buf := &bytes.Buffer{}
	h := New(WithLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	scenario, err := LoadScenario(filepath.Join(scenariosDir, "number_arrays.yaml"))
	require.NoError(t, err)

	_, err = h.Run(scenario)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "running scenario")
	assert.Contains(t, buf.String(), "name=number_arrays")
}
