package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/storable/internal/values"
)

func TestHashCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewHashCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{valuesFixture, "ints", "floats", "ints-greater"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	hashes := make(map[string]string, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 2)
		hashes[fields[0]] = fields[1]
	}

	assert.Equal(t, values.Hash(values.NewIntegralArray(1, 2, 3)), hashes["ints"])
	assert.Equal(t, hashes["ints"], hashes["floats"])
	assert.NotEqual(t, hashes["ints"], hashes["ints-greater"])
}

func TestHashCommandAll(t *testing.T) {
	out, err := execute(t, "hash", valuesFixture)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 16)
}
