package values

import (
	"errors"
	"fmt"
)

// ValueGroup is the coarse kind tag of a value.
// Values in different groups are never equal; their relative order comes
// from a Precedence.
type ValueGroup uint8

// Declaration order matches DefaultPrecedence.
const (
	GroupUnknown ValueGroup = iota
	GroupGeometryArray
	GroupZonedDateTimeArray
	GroupLocalDateTimeArray
	GroupDateArray
	GroupZonedTimeArray
	GroupLocalTimeArray
	GroupDurationArray
	GroupTextArray
	GroupBooleanArray
	GroupNumberArray
	GroupGeometry
	GroupZonedDateTime
	GroupLocalDateTime
	GroupDate
	GroupZonedTime
	GroupLocalTime
	GroupDuration
	GroupText
	GroupBoolean
	GroupNumber
	GroupNoValue

	groupCount
)

var groupNames = [groupCount]string{
	GroupUnknown:            "unknown",
	GroupGeometryArray:      "geometry_array",
	GroupZonedDateTimeArray: "zoned_date_time_array",
	GroupLocalDateTimeArray: "local_date_time_array",
	GroupDateArray:          "date_array",
	GroupZonedTimeArray:     "zoned_time_array",
	GroupLocalTimeArray:     "local_time_array",
	GroupDurationArray:      "duration_array",
	GroupTextArray:          "text_array",
	GroupBooleanArray:       "boolean_array",
	GroupNumberArray:        "number_array",
	GroupGeometry:           "geometry",
	GroupZonedDateTime:      "zoned_date_time",
	GroupLocalDateTime:      "local_date_time",
	GroupDate:               "date",
	GroupZonedTime:          "zoned_time",
	GroupLocalTime:          "local_time",
	GroupDuration:           "duration",
	GroupText:               "text",
	GroupBoolean:            "boolean",
	GroupNumber:             "number",
	GroupNoValue:            "no_value",
}

func (g ValueGroup) String() string {
	if g < groupCount {
		return groupNames[g]
	}
	return fmt.Sprintf("group(%d)", uint8(g))
}

// IsArray reports whether the group holds array values.
func (g ValueGroup) IsArray() bool {
	return g >= GroupGeometryArray && g <= GroupNumberArray
}

var (
	// ErrUnknownGroup is returned when a group name does not match any ValueGroup.
	ErrUnknownGroup = errors.New("unknown value group")

	// ErrDuplicateGroup is returned when a precedence lists a group twice.
	ErrDuplicateGroup = errors.New("duplicate value group")
)

// ParseValueGroup looks a group up by its String form.
func ParseValueGroup(name string) (ValueGroup, error) {
	for g, n := range groupNames {
		if n == name {
			return ValueGroup(g), nil
		}
	}
	return GroupUnknown, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
}

// Precedence is a total order over groups, earliest first.
// Groups it does not list rank after every listed group, in declaration order.
type Precedence []ValueGroup

// DefaultPrecedence orders groups by declaration: arrays before scalars,
// NoValue last.
var DefaultPrecedence = func() Precedence {
	p := make(Precedence, groupCount)
	for g := range p {
		p[g] = ValueGroup(g)
	}
	return p
}()

// ParsePrecedence builds a Precedence from group names.
func ParsePrecedence(names []string) (Precedence, error) {
	p := make(Precedence, 0, len(names))
	seen := make(map[ValueGroup]bool, len(names))
	for _, name := range names {
		g, err := ParseValueGroup(name)
		if err != nil {
			return nil, err
		}
		if seen[g] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGroup, name)
		}
		seen[g] = true
		p = append(p, g)
	}
	return p, nil
}

// Rank returns the position of g. Unlisted groups get len(p) + g.
func (p Precedence) Rank(g ValueGroup) int {
	for i, it := range p {
		if it == g {
			return i
		}
	}
	return len(p) + int(g)
}

// Compare orders two groups by rank.
func (p Precedence) Compare(a, b ValueGroup) Comparison {
	if a == b {
		return Equal
	}
	return FromSign(p.Rank(a) - p.Rank(b))
}
