package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/storable/internal/values"
)

// CompareResult is the output of compare and equal.
type CompareResult struct {
	Left   NamedValue `json:"left"`
	Right  NamedValue `json:"right"`
	Result string     `json:"result"`
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <fixture> <left> <right>",
		Short: "Order two fixture values",
		Long: `Order two named values from a fixture file.

Prints less, equal or greater. Honors --length-first and --precedence.

Example:
  valuecmp compare testdata/fixtures/values.yaml ints floats
  valuecmp compare --length-first values.yaml one ints-greater`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(rootOpts, args[0], args[1], args[2], cmd)
		},
	}

	return cmd
}

func runCompare(opts *RootOptions, path, left, right string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	c, err := comparator(formatter, opts)
	if err != nil {
		return err
	}
	set, err := loadFixture(formatter, path)
	if err != nil {
		return err
	}
	names, vs, err := lookupValues(formatter, set, []string{left, right})
	if err != nil {
		return err
	}

	result := c.Compare(vs[0], vs[1])
	if formatter.Format == "json" {
		return formatter.Success(CompareResult{
			Left:   newNamedValue(names[0], vs[0]),
			Right:  newNamedValue(names[1], vs[1]),
			Result: result.String(),
		})
	}
	return formatter.Success(result.String())
}

// EqualOptions holds flags for the equal command.
type EqualOptions struct {
	*RootOptions
	Check bool
}

// NewEqualCommand creates the equal command.
func NewEqualCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EqualOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "equal <fixture> <left> <right>",
		Short: "Test two fixture values for equality",
		Long: `Test two named values from a fixture file for equality.

Prints true or false. Equality does not depend on --length-first or
--precedence. With --check, unequal values exit with status 1.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEqual(opts, args[0], args[1], args[2], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Check, "check", false, "exit with status 1 if the values differ")

	return cmd
}

func runEqual(opts *EqualOptions, path, left, right string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	set, err := loadFixture(formatter, path)
	if err != nil {
		return err
	}
	names, vs, err := lookupValues(formatter, set, []string{left, right})
	if err != nil {
		return err
	}

	equal := values.Equals(vs[0], vs[1])
	if opts.Check && !equal {
		return formatter.Fail(ExitFailure, ErrCodeNotEqual,
			fmt.Sprintf("%s %s != %s %s", names[0], vs[0], names[1], vs[1]), nil)
	}

	if formatter.Format == "json" {
		return formatter.Success(CompareResult{
			Left:   newNamedValue(names[0], vs[0]),
			Right:  newNamedValue(names[1], vs[1]),
			Result: fmt.Sprint(equal),
		})
	}
	return formatter.Success(equal)
}
