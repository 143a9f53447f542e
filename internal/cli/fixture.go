package cli

import (
	"errors"
	"fmt"

	"github.com/roach88/storable/internal/fixture"
	"github.com/roach88/storable/internal/values"
)

// NamedValue is a fixture value in command output.
type NamedValue struct {
	Name  string `json:"name"`
	Group string `json:"group"`
	Value string `json:"value"`
}

func newNamedValue(name string, v values.Value) NamedValue {
	return NamedValue{Name: name, Group: v.Group().String(), Value: v.String()}
}

func (n NamedValue) row() []string {
	return []string{n.Name, n.Group, n.Value}
}

// loadFixture loads a fixture file, reporting failures through f.
func loadFixture(f *OutputFormatter, path string) (*fixture.Set, error) {
	set, err := fixture.LoadFile(path)
	if err != nil {
		var loadErr *fixture.LoadError
		if errors.As(err, &loadErr) {
			msg := loadErr.Message
			if loadErr.Entry != "" {
				msg = fmt.Sprintf("entry %s: %s", loadErr.Entry, msg)
			}
			return nil, f.Fail(ExitCommandError, loadErr.Code, msg, err)
		}
		return nil, f.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), err)
	}
	return set, nil
}

// lookupValues resolves names in set. With no names it returns every entry
// in file order.
func lookupValues(f *OutputFormatter, set *fixture.Set, names []string) ([]string, []values.Value, error) {
	if len(names) == 0 {
		return set.Names(), set.Values(), nil
	}
	vs := make([]values.Value, len(names))
	for i, name := range names {
		v, ok := set.Get(name)
		if !ok {
			return nil, nil, f.Fail(ExitCommandError, ErrCodeUnknownValue, fmt.Sprintf("no value named %q", name), nil)
		}
		vs[i] = v
	}
	return names, vs, nil
}

// comparator builds the comparator for a command, reporting failures through f.
func comparator(f *OutputFormatter, opts *RootOptions) (*values.Comparator, error) {
	c, err := opts.Comparator()
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodePrecedence, err.Error(), err)
	}
	return c, nil
}
