package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/storable/internal/harness"
)

// ScenarioResult is the outcome of one scenario in check output.
type ScenarioResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Checks int      `json:"checks"`
	Errors []string `json:"errors,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <scenario.yaml>...",
		Short: "Run conformance scenarios",
		Long: `Run conformance scenarios against the ordering and equality rules.

Each scenario names a fixture file and lists compare, equal, sort and
same_hash checks. Scenario options replace --length-first and --precedence.
Exits with status 1 if any check fails.

Example:
  valuecmp check testdata/scenarios/*.yaml`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	h := harness.New(harness.WithLogger(opts.Logger(cmd.ErrOrStderr())))

	results := make([]ScenarioResult, 0, len(paths))
	failed := 0
	for _, path := range paths {
		scenario, err := harness.LoadScenario(path)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeScenario, fmt.Sprintf("%s: %v", path, err), err)
		}
		result, err := h.Run(scenario)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeScenario, err.Error(), err)
		}
		if !result.Pass {
			failed++
		}
		results = append(results, ScenarioResult{
			Name:   scenario.Name,
			Pass:   result.Pass,
			Checks: len(result.Trace),
			Errors: result.Errors,
		})
	}

	if formatter.Format == "json" {
		if err := formatter.Success(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Pass {
				fmt.Fprintf(formatter.Writer, "✓ %s (%d checks)\n", r.Name, r.Checks)
				continue
			}
			fmt.Fprintf(formatter.Writer, "✗ %s\n", r.Name)
			for _, msg := range r.Errors {
				fmt.Fprintf(formatter.Writer, "  %s\n", msg)
			}
		}
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenario(s) failed", failed, len(results)))
	}
	return nil
}
