package fixture

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/roach88/storable/internal/values"
)

// Kind names used in fixture entries.
const (
	KindNone       = "none"
	KindInt        = "int"
	KindFloat      = "float"
	KindBool       = "bool"
	KindChar       = "char"
	KindText       = "text"
	KindPoint      = "point"
	KindIntArray   = "int[]"
	KindFloatArray = "float[]"
	KindBoolArray  = "bool[]"
	KindCharArray  = "char[]"
	KindTextArray  = "text[]"
	KindPointArray = "point[]"
)

// Entry is one value literal.
type Entry struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Kind  string `yaml:"kind" json:"kind"`
	CRS   string `yaml:"crs,omitempty" json:"crs,omitempty"`
	Value any    `yaml:"value,omitempty" json:"value,omitempty"`
}

// Decode builds the value described by e. Text is taken as is.
func Decode(e Entry) (values.Value, error) {
	switch e.Kind {
	case KindNone:
		return values.NoValue, nil
	case KindInt:
		i, err := toInt64(e.Value)
		if err != nil {
			return nil, err
		}
		return values.Int(i), nil
	case KindFloat:
		f, err := toFloat64(e.Value)
		if err != nil {
			return nil, err
		}
		return values.Float(f), nil
	case KindBool:
		b, ok := e.Value.(bool)
		if !ok {
			return nil, invalid(e.Value, "bool")
		}
		return values.Bool(b), nil
	case KindChar:
		r, err := toRune(e.Value)
		if err != nil {
			return nil, err
		}
		return values.Char(r), nil
	case KindText:
		s, ok := e.Value.(string)
		if !ok {
			return nil, invalid(e.Value, "string")
		}
		return values.Text(s), nil
	case KindPoint:
		crs, err := lookupCRS(e.CRS)
		if err != nil {
			return nil, err
		}
		return toPoint(crs, e.Value)
	case KindIntArray:
		elems, err := mapList(e.Value, toInt64)
		if err != nil {
			return nil, err
		}
		return values.NewIntegralArray(elems...), nil
	case KindFloatArray:
		elems, err := mapList(e.Value, toFloat64)
		if err != nil {
			return nil, err
		}
		return values.NewFloatingPointArray(elems...), nil
	case KindBoolArray:
		elems, err := mapList(e.Value, func(v any) (bool, error) {
			b, ok := v.(bool)
			if !ok {
				return false, invalid(v, "bool")
			}
			return b, nil
		})
		if err != nil {
			return nil, err
		}
		return values.NewBooleanArray(elems...), nil
	case KindCharArray:
		elems, err := mapList(e.Value, toRune)
		if err != nil {
			return nil, err
		}
		return values.NewCharArray(elems...), nil
	case KindTextArray:
		elems, err := mapList(e.Value, func(v any) (string, error) {
			s, ok := v.(string)
			if !ok {
				return "", invalid(v, "string")
			}
			return s, nil
		})
		if err != nil {
			return nil, err
		}
		return values.NewTextArray(elems...), nil
	case KindPointArray:
		crs, err := lookupCRS(e.CRS)
		if err != nil {
			return nil, err
		}
		points, err := mapList(e.Value, func(v any) (values.Point, error) {
			return toPoint(crs, v)
		})
		if err != nil {
			return nil, err
		}
		return values.NewGeometryArray(points...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}
}

// Encode returns the literal for v. The result decodes to a value equal to v.
func Encode(v values.Value) (Entry, error) {
	switch x := v.(type) {
	case nil:
		return Entry{Kind: KindNone}, nil
	case values.Int:
		return Entry{Kind: KindInt, Value: int64(x)}, nil
	case values.Float:
		return Entry{Kind: KindFloat, Value: float64(x)}, nil
	case values.Bool:
		return Entry{Kind: KindBool, Value: bool(x)}, nil
	case values.Char:
		return Entry{Kind: KindChar, Value: string(rune(x))}, nil
	case values.Text:
		return Entry{Kind: KindText, Value: string(x)}, nil
	case values.Point:
		coords, err := pointCoordinates(x)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Kind: KindPoint, CRS: x.CRS().Name, Value: coords}, nil
	case values.IntegralArray:
		list := make([]any, x.Len())
		for i := range list {
			list[i] = x.At(i)
		}
		return Entry{Kind: KindIntArray, Value: list}, nil
	case values.FloatingPointArray:
		return Entry{Kind: KindFloatArray, Value: floatList(x.Elements())}, nil
	case values.BooleanArray:
		list := make([]any, x.Len())
		for i := range list {
			list[i] = x.At(i)
		}
		return Entry{Kind: KindBoolArray, Value: list}, nil
	case values.CharArray:
		list := make([]any, x.Len())
		for i := range list {
			list[i] = string(x.At(i))
		}
		return Entry{Kind: KindCharArray, Value: list}, nil
	case values.TextArray:
		list := make([]any, x.Len())
		for i := range list {
			list[i] = x.At(i)
		}
		return Entry{Kind: KindTextArray, Value: list}, nil
	case values.GeometryArray:
		return encodeGeometryArray(x)
	default:
		if values.Equals(v, values.NoValue) {
			return Entry{Kind: KindNone}, nil
		}
		return Entry{}, fmt.Errorf("%w: %T", ErrUnknownKind, v)
	}
}

// pointCoordinates rejects points that Decode would not accept back.
func pointCoordinates(p values.Point) ([]any, error) {
	crs := p.CRS()
	if known, ok := values.CRSByCode(crs.Code); !ok || known != crs {
		return nil, fmt.Errorf("%w: unknown crs %q (%d)", ErrInvalidLiteral, crs.Name, crs.Code)
	}
	coords := p.Coordinates()
	if len(coords) != crs.Dimension {
		return nil, fmt.Errorf("%w: %d coordinates for %s", ErrInvalidLiteral, len(coords), crs.Name)
	}
	return floatList(coords), nil
}

func encodeGeometryArray(a values.GeometryArray) (Entry, error) {
	e := Entry{Kind: KindPointArray, CRS: values.Cartesian.Name}
	list := make([]any, a.Len())
	for i := range list {
		p := a.At(i)
		if i == 0 {
			e.CRS = p.CRS().Name
		} else if p.CRS().Code != a.At(0).CRS().Code {
			return Entry{}, ErrMixedCRS
		}
		coords, err := pointCoordinates(p)
		if err != nil {
			return Entry{}, err
		}
		list[i] = coords
	}
	e.Value = list
	return e, nil
}

func floatList(fs []float64) []any {
	list := make([]any, len(fs))
	for i, f := range fs {
		list[i] = f
	}
	return list
}

func invalid(v any, want string) error {
	return fmt.Errorf("%w: %v (%T) is not a %s", ErrInvalidLiteral, v, v, want)
}

func mapList[T any](v any, conv func(any) (T, error)) ([]T, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, invalid(v, "list")
	}
	out := make([]T, len(list))
	for i, it := range list {
		t, err := conv(it)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = t
	}
	return out, nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, invalid(v, "int64")
		}
		return int64(n), nil
	default:
		return 0, invalid(v, "integer")
	}
}

func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int, int64, uint64:
		i, err := toInt64(n)
		if err != nil {
			// uint64 beyond int64 range
			return float64(n.(uint64)), nil
		}
		return float64(i), nil
	default:
		return 0, invalid(v, "number")
	}
}

func toRune(v any) (rune, error) {
	s, ok := v.(string)
	if !ok || utf8.RuneCountInString(s) != 1 {
		return 0, invalid(v, "single character")
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func toPoint(crs values.CRS, v any) (values.Point, error) {
	coords, err := mapList(v, toFloat64)
	if err != nil {
		return values.Point{}, err
	}
	if len(coords) != crs.Dimension {
		return values.Point{}, fmt.Errorf("%w: %d coordinates for %s", ErrInvalidLiteral, len(coords), crs.Name)
	}
	return values.NewPoint(crs, coords...), nil
}

func lookupCRS(name string) (values.CRS, error) {
	if name == "" {
		return values.Cartesian, nil
	}
	crs, ok := values.CRSByName(name)
	if !ok {
		return values.CRS{}, fmt.Errorf("%w: unknown crs %q", ErrInvalidLiteral, name)
	}
	return crs, nil
}
