package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/storable/internal/values"
)

// HashedValue is a fixture value with its content hash.
type HashedValue struct {
	NamedValue
	Hash string `json:"hash"`
}

// NewHashCommand creates the hash command.
func NewHashCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <fixture> [names...]",
		Short: "Print content hashes of fixture values",
		Long: `Print the content hash of values from a fixture file.

Equal values have equal hashes, so [1, 2, 3] as integers and as floats
hash the same.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(rootOpts, args[0], args[1:], cmd)
		},
	}

	return cmd
}

func runHash(opts *RootOptions, path string, names []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	set, err := loadFixture(formatter, path)
	if err != nil {
		return err
	}
	names, vs, err := lookupValues(formatter, set, names)
	if err != nil {
		return err
	}

	out := make([]HashedValue, len(vs))
	rows := make([][]string, len(vs))
	for i, v := range vs {
		out[i] = HashedValue{NamedValue: newNamedValue(names[i], v), Hash: values.Hash(v)}
		rows[i] = []string{names[i], out[i].Hash}
	}
	return formatter.Rows(out, rows)
}
