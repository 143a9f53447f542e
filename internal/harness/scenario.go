package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance scenario over one fixture file.
type Scenario struct {
	// Name uniquely identifies this scenario. Also the golden file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Fixture is the path of the fixture file holding the values.
	// Relative paths are resolved against the scenario file's directory.
	Fixture string `yaml:"fixture"`

	// Options select the comparator used by compare and sort checks.
	Options Options `yaml:"options,omitempty"`

	// Checks are evaluated in order.
	Checks []Check `yaml:"checks"`
}

// Options configure the comparator.
type Options struct {
	LengthFirst bool     `yaml:"length_first,omitempty"`
	Precedence  []string `yaml:"precedence,omitempty"`
}

// Check is one expectation on fixture values.
type Check struct {
	// Type is one of the Check* constants.
	Type string `yaml:"type"`

	// Values are fixture entry names.
	Values []string `yaml:"values"`

	// Want is the expected outcome of compare, equal and same_hash.
	Want string `yaml:"want,omitempty"`

	// Order is the expected name order of sort.
	Order []string `yaml:"order,omitempty"`
}

// Check type constants.
const (
	CheckCompare  = "compare"
	CheckEqual    = "equal"
	CheckSort     = "sort"
	CheckSameHash = "same_hash"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict decoding catches typos like "check:" vs "checks:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Fixture != "" && !filepath.IsAbs(scenario.Fixture) {
		scenario.Fixture = filepath.Join(filepath.Dir(path), scenario.Fixture)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Fixture == "" {
		return fmt.Errorf("fixture is required")
	}
	if _, err := os.Stat(s.Fixture); os.IsNotExist(err) {
		return fmt.Errorf("fixture file not found: %s", s.Fixture)
	}

	if len(s.Checks) == 0 {
		return fmt.Errorf("checks list is required and must be non-empty")
	}

	for i := range s.Checks {
		if err := validateCheck(i, &s.Checks[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateCheck validates a single check based on its type.
func validateCheck(index int, c *Check) error {
	switch c.Type {
	case "":
		return fmt.Errorf("checks[%d]: type is required", index)
	case CheckCompare:
		if len(c.Values) != 2 {
			return fmt.Errorf("checks[%d]: compare needs exactly 2 values", index)
		}
		switch c.Want {
		case "less", "equal", "greater":
		default:
			return fmt.Errorf("checks[%d]: want must be less, equal or greater, got %q", index, c.Want)
		}
	case CheckEqual, CheckSameHash:
		if len(c.Values) != 2 {
			return fmt.Errorf("checks[%d]: %s needs exactly 2 values", index, c.Type)
		}
		if c.Want != "true" && c.Want != "false" {
			return fmt.Errorf("checks[%d]: want must be true or false, got %q", index, c.Want)
		}
	case CheckSort:
		if len(c.Values) == 0 {
			return fmt.Errorf("checks[%d]: values list is required for sort", index)
		}
		if len(c.Order) != len(c.Values) {
			return fmt.Errorf("checks[%d]: order must list all %d values", index, len(c.Values))
		}
	default:
		return fmt.Errorf("checks[%d]: unknown check type %q", index, c.Type)
	}

	return nil
}
