package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/storable/internal/values"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string   // "json" | "text"
	LengthFirst bool     // order arrays by length before elements
	Precedence  []string // group names, highest precedence first
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the valuecmp CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "valuecmp",
		Short: "Compare and store property values",
		Long: `Compare, sort, hash and store typed property values.

Values are read from YAML fixture files validated against an embedded CUE
schema. Ordering follows group precedence first and then the group's own
rule; equal values compare equal across number flavors.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if _, err := opts.Comparator(); err != nil {
				return WrapExitError(ExitCommandError, ErrCodePrecedence, err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVar(&opts.LengthFirst, "length-first", false, "order arrays by length before comparing elements")
	cmd.PersistentFlags().StringSliceVar(&opts.Precedence, "precedence", nil, "group order, e.g. number,text (unlisted groups follow)")

	cmd.AddCommand(NewCompareCommand(opts))
	cmd.AddCommand(NewEqualCommand(opts))
	cmd.AddCommand(NewSortCommand(opts))
	cmd.AddCommand(NewMatrixCommand(opts))
	cmd.AddCommand(NewHashCommand(opts))
	cmd.AddCommand(NewStoreCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// Comparator builds the comparator selected by the global flags.
func (o *RootOptions) Comparator() (*values.Comparator, error) {
	var opts []values.Option
	if len(o.Precedence) > 0 {
		p, err := values.ParsePrecedence(o.Precedence)
		if err != nil {
			return nil, err
		}
		opts = append(opts, values.WithPrecedence(p))
	}
	if o.LengthFirst {
		opts = append(opts, values.WithArrayOrdering(values.LengthFirst))
	}
	return values.NewComparator(opts...), nil
}

// Logger returns a text logger writing to w: Debug under --verbose,
// Info otherwise.
func (o *RootOptions) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  o.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: o.Verbose,
	}
}
