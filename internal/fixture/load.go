package fixture

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/roach88/storable/internal/values"
)

//go:embed schema.cue
var schemaCUE string

// File is the document layout of a fixture file.
type File struct {
	Values []Entry `yaml:"values"`
}

// Set holds the values of a fixture file in file order.
type Set struct {
	names  []string
	byName map[string]values.Value
}

// Names returns entry names in file order. Unnamed entries are "#<index>".
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Get returns the value named name.
func (s *Set) Get(name string) (values.Value, bool) {
	v, ok := s.byName[name]
	return v, ok
}

// Values returns all values in file order.
func (s *Set) Values() []values.Value {
	out := make([]values.Value, len(s.names))
	for i, name := range s.names {
		out[i] = s.byName[name]
	}
	return out
}

// Len returns the number of values.
func (s *Set) Len() int {
	return len(s.names)
}

// LoadFile reads and loads a fixture file.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeRead, Message: fmt.Sprintf("open fixture: %v", err), Err: err}
	}
	defer f.Close()
	return Load(f)
}

// Load parses, validates and decodes a fixture document.
func Load(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeRead, Message: fmt.Sprintf("read fixture: %v", err), Err: err}
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: err.Error(), Err: err}
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: err.Error(), Err: err}
	}

	set := &Set{
		names:  make([]string, 0, len(file.Values)),
		byName: make(map[string]values.Value, len(file.Values)),
	}
	for i, e := range file.Values {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if _, dup := set.byName[name]; dup {
			return nil, &LoadError{Code: ErrCodeDuplicateName, Message: "name already used", Entry: name}
		}

		v, err := Decode(normalize(e))
		if err != nil {
			return nil, &LoadError{Code: ErrCodeDecode, Message: err.Error(), Entry: name, Err: err}
		}
		set.names = append(set.names, name)
		set.byName[name] = v
	}
	return set, nil
}

// validate checks the raw document against the #File definition.
func validate(raw any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile fixture schema: %w", err)
	}

	doc := ctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return &LoadError{Code: ErrCodeSchema, Message: cueerrors.Details(err, nil), Err: err}
	}

	v := schema.LookupPath(cue.ParsePath("#File")).Unify(doc)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return &LoadError{Code: ErrCodeSchema, Message: cueerrors.Details(err, nil), Err: err}
	}
	return nil
}

// normalize applies NFC to the text literals of e.
func normalize(e Entry) Entry {
	switch e.Kind {
	case KindChar, KindText:
		if s, ok := e.Value.(string); ok {
			e.Value = norm.NFC.String(s)
		}
	case KindCharArray, KindTextArray:
		if list, ok := e.Value.([]any); ok {
			out := make([]any, len(list))
			for i, it := range list {
				if s, ok := it.(string); ok {
					it = norm.NFC.String(s)
				}
				out[i] = it
			}
			e.Value = out
		}
	}
	return e
}
