package harness

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/storable/internal/fixture"
	"github.com/roach88/storable/internal/values"
)

// Harness evaluates scenarios.
type Harness struct {
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a default Harness.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(scenario)
}

// Run executes a scenario and returns the result.
//
// The returned error covers problems that stop the whole scenario (fixture
// cannot be loaded, invalid precedence, unknown value name). Failed checks
// are reported in the Result.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	comparator, err := scenario.Options.Comparator()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	set, err := fixture.LoadFile(scenario.Fixture)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	h.logger.Debug("running scenario", "name", scenario.Name, "checks", len(scenario.Checks))

	result := NewResult()
	for i, check := range scenario.Checks {
		vs := make([]values.Value, len(check.Values))
		for j, name := range check.Values {
			v, ok := set.Get(name)
			if !ok {
				return nil, fmt.Errorf("scenario %s: checks[%d]: no value named %q", scenario.Name, i, name)
			}
			vs[j] = v
		}

		event := evaluate(comparator, check, vs)
		result.AddTrace(event)
		if !event.Pass {
			result.AddError(fmt.Sprintf("checks[%d] %s %v: want %s, got %s",
				i, check.Type, check.Values, event.Want, event.Got))
		}
		h.logger.Debug("check evaluated", "index", i, "type", check.Type, "pass", event.Pass)
	}

	return result, nil
}

// Comparator builds the comparator selected by o.
func (o Options) Comparator() (*values.Comparator, error) {
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

func evaluate(c *values.Comparator, check Check, vs []values.Value) TraceEvent {
	event := TraceEvent{Type: check.Type, Values: check.Values, Want: check.Want}

	switch check.Type {
	case CheckCompare:
		event.Got = c.Compare(vs[0], vs[1]).String()
	case CheckEqual:
		event.Got = strconv.FormatBool(values.Equals(vs[0], vs[1]))
	case CheckSameHash:
		event.Got = strconv.FormatBool(values.Hash(vs[0]) == values.Hash(vs[1]))
	case CheckSort:
		idx := make([]int, len(vs))
		for i := range idx {
			idx[i] = i
		}
		slices.SortStableFunc(idx, func(a, b int) int {
			return c.Compare(vs[a], vs[b]).Sign()
		})
		names := make([]string, len(idx))
		for i, j := range idx {
			names[i] = check.Values[j]
		}
		event.Want = strings.Join(check.Order, ",")
		event.Got = strings.Join(names, ",")
	}

	event.Pass = event.Got == event.Want
	return event
}
