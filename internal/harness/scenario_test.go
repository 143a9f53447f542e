package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario writes a scenario file pointing at the sample fixture and
// returns its path.
func writeScenario(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	fixture, err := filepath.Abs(valuesFixture)
	require.NoError(t, err)

	path := filepath.Join(dir, "scenario.yaml")
	content = "fixture: " + fixture + "\n" + content
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	path := writeScenario(t, `
name: valid
description: "Valid scenario"
options:
  length_first: true
  precedence: [number]
checks:
  - type: compare
    values: [ints, floats]
    want: equal
  - type: sort
    values: [ints, one]
    order: [one, ints]
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "valid", scenario.Name)
	assert.True(t, scenario.Options.LengthFirst)
	assert.Equal(t, []string{"number"}, scenario.Options.Precedence)
	require.Len(t, scenario.Checks, 2)
	assert.Equal(t, CheckSort, scenario.Checks[1].Type)
	assert.Equal(t, []string{"one", "ints"}, scenario.Checks[1].Order)
}

func TestLoadScenario_ResolvesRelativeFixture(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join(scenariosDir, "number_arrays.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(scenariosDir, "..", "fixtures", "values.yaml"), scenario.Fixture)
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{
			name:     "unknown field",
			content:  "name: x\ndescription: d\ncheck: []\n",
			contains: "failed to parse YAML",
		},
		{
			name:     "missing name",
			content:  "description: d\nchecks: [{type: equal, values: [a, b], want: \"true\"}]\n",
			contains: "name is required",
		},
		{
			name:     "missing description",
			content:  "name: x\nchecks: [{type: equal, values: [a, b], want: \"true\"}]\n",
			contains: "description is required",
		},
		{
			name:     "no checks",
			content:  "name: x\ndescription: d\n",
			contains: "checks list is required",
		},
		{
			name:     "unknown check type",
			content:  "name: x\ndescription: d\nchecks: [{type: between, values: [a, b]}]\n",
			contains: `unknown check type "between"`,
		},
		{
			name:     "compare arity",
			content:  "name: x\ndescription: d\nchecks: [{type: compare, values: [a], want: less}]\n",
			contains: "exactly 2 values",
		},
		{
			name:     "compare want",
			content:  "name: x\ndescription: d\nchecks: [{type: compare, values: [a, b], want: smaller}]\n",
			contains: "want must be less, equal or greater",
		},
		{
			name:     "equal want",
			content:  "name: x\ndescription: d\nchecks: [{type: equal, values: [a, b], want: maybe}]\n",
			contains: "want must be true or false",
		},
		{
			name:     "sort order length",
			content:  "name: x\ndescription: d\nchecks: [{type: sort, values: [a, b], order: [a]}]\n",
			contains: "order must list all 2 values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadScenario_MissingFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := "name: x\ndescription: d\nfixture: nowhere.yaml\nchecks: [{type: equal, values: [a, b], want: \"true\"}]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixture file not found")
}

func TestLoadScenario_FileNotFound(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}
