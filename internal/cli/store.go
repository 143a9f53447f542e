package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/storable/internal/store"
)

// StoreOptions holds flags for the store commands.
type StoreOptions struct {
	*RootOptions
	Database string
	Property string
}

// StoredValue is one stored property value in command output.
type StoredValue struct {
	NamedValue
	ID        string `json:"id"`
	Seq       int64  `json:"seq"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

// NewStoreCommand creates the store command and its subcommands.
func NewStoreCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StoreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Store and list property values",
		Long: `Store and list property values in a SQLite database.

A property keeps one row per distinct value: putting a value equal to a
stored one (for example [1.0, 2.0] after [1, 2]) reports a duplicate.

Example:
  valuecmp store put --db ./values.db --property scores values.yaml ints floats
  valuecmp store list --db ./values.db --property scores --length-first`,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.PersistentFlags().StringVar(&opts.Property, "property", "", "property name (required)")
	_ = cmd.MarkPersistentFlagRequired("db")
	_ = cmd.MarkPersistentFlagRequired("property")

	cmd.AddCommand(newStorePutCommand(opts))
	cmd.AddCommand(newStoreListCommand(opts))

	return cmd
}

func newStorePutCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "put <fixture> [names...]",
		Short:         "Store fixture values under a property",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStorePut(opts, args[0], args[1:], cmd)
		},
	}
}

func newStoreListCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List the values of a property in comparator order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreList(opts, cmd)
		},
	}
}

func openStore(formatter *OutputFormatter, opts *StoreOptions, cmd *cobra.Command) (*store.Store, error) {
	c, err := comparator(formatter, opts.RootOptions)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(opts.Database,
		store.WithComparator(c),
		store.WithLogger(opts.Logger(cmd.ErrOrStderr())),
	)
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeStore, "failed to open database", err)
	}
	return st, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runStorePut(opts *StoreOptions, path string, names []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	set, err := loadFixture(formatter, path)
	if err != nil {
		return err
	}
	names, vs, err := lookupValues(formatter, set, names)
	if err != nil {
		return err
	}

	st, err := openStore(formatter, opts, cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := commandContext(cmd)
	out := make([]StoredValue, 0, len(vs))
	rows := make([][]string, 0, len(vs))
	for i, v := range vs {
		rec, dup, err := st.Put(ctx, opts.Property, v)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeEncode, fmt.Sprintf("cannot store %s", names[i]), err)
		}
		status := "stored"
		if dup {
			status = "duplicate"
		}
		out = append(out, StoredValue{
			NamedValue: newNamedValue(names[i], v),
			ID:         rec.ID,
			Seq:        rec.Seq,
			Duplicate:  dup,
		})
		rows = append(rows, []string{status, names[i], strconv.FormatInt(rec.Seq, 10)})
	}
	return formatter.Rows(out, rows)
}

func runStoreList(opts *StoreOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	st, err := openStore(formatter, opts, cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.List(commandContext(cmd), opts.Property)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, "failed to list values", err)
	}

	out := make([]StoredValue, len(records))
	rows := make([][]string, len(records))
	for i, rec := range records {
		out[i] = StoredValue{
			NamedValue: newNamedValue(rec.Property, rec.Value),
			ID:         rec.ID,
			Seq:        rec.Seq,
		}
		rows[i] = []string{strconv.FormatInt(rec.Seq, 10), out[i].Group, out[i].Value}
	}
	return formatter.Rows(out, rows)
}
