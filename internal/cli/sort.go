package cli

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/storable/internal/values"
)

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <fixture> [names...]",
		Short: "Sort fixture values",
		Long: `Sort values from a fixture file, all of them or only the named ones.

Prints one "name<TAB>group<TAB>value" line per value. Equal values keep
their file order.

Example:
  valuecmp sort testdata/fixtures/values.yaml
  valuecmp sort --precedence number,text values.yaml answer greeting`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(rootOpts, args[0], args[1:], cmd)
		},
	}

	return cmd
}

func runSort(opts *RootOptions, path string, names []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	c, err := comparator(formatter, opts)
	if err != nil {
		return err
	}
	set, err := loadFixture(formatter, path)
	if err != nil {
		return err
	}
	names, vs, err := lookupValues(formatter, set, names)
	if err != nil {
		return err
	}

	type entry struct {
		name string
		v    values.Value
	}
	entries := make([]entry, len(vs))
	for i := range vs {
		entries[i] = entry{names[i], vs[i]}
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return c.Compare(a.v, b.v).Sign()
	})

	out := make([]NamedValue, len(entries))
	rows := make([][]string, len(entries))
	for i, e := range entries {
		out[i] = newNamedValue(e.name, e.v)
		rows[i] = out[i].row()
	}
	return formatter.Rows(out, rows)
}

// Matrix is the pairwise comparison of fixture values.
// Cells[i][j] orders Names[i] against Names[j].
type Matrix struct {
	Names []string   `json:"names"`
	Cells [][]string `json:"cells"`
}

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix <fixture> [names...]",
		Short: "Compare every pair of fixture values",
		Long: `Compare every pair of values from a fixture file.

Text output is a table with one row per value; each cell is <, = or >
for the row value against the column value.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(rootOpts, args[0], args[1:], cmd)
		},
	}

	return cmd
}

func runMatrix(opts *RootOptions, path string, names []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	c, err := comparator(formatter, opts)
	if err != nil {
		return err
	}
	set, err := loadFixture(formatter, path)
	if err != nil {
		return err
	}
	names, vs, err := lookupValues(formatter, set, names)
	if err != nil {
		return err
	}

	m := Matrix{Names: names, Cells: make([][]string, len(vs))}
	rows := make([][]string, 0, len(vs)+1)
	rows = append(rows, append([]string{""}, names...))
	for i, a := range vs {
		m.Cells[i] = make([]string, len(vs))
		for j, b := range vs {
			m.Cells[i][j] = symbol(c.Compare(a, b))
		}
		rows = append(rows, append([]string{names[i]}, m.Cells[i]...))
	}
	return formatter.Rows(m, rows)
}

func symbol(c values.Comparison) string {
	switch c {
	case values.Less:
		return "<"
	case values.Greater:
		return ">"
	default:
		return "="
	}
}
