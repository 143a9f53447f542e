package values

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"strconv"
)

// DomainValue prefixes every value digest. The version suffix allows the
// key format to change without colliding with stored digests.
const DomainValue = "storable/value/v1"

// Hash returns a SHA-256 hex digest of v that is consistent with Equals:
// equal values always hash equal, including an integral array and the
// floating-point array holding the same numbers, and a char array and the
// text array of the same characters.
func Hash(v Value) string {
	h := sha256.New()
	h.Write([]byte(DomainValue))
	h.Write([]byte{0x00})
	h.Write(appendKey(nil, v))
	return hex.EncodeToString(h.Sum(nil))
}

// appendKey appends a representation of v in which equal values produce
// identical bytes. It is not a storage format.
func appendKey(buf []byte, v Value) []byte {
	if v == nil {
		v = NoValue
	}
	buf = append(buf, v.Group().String()...)
	buf = append(buf, ':')

	switch x := v.(type) {
	case Int:
		buf = appendIntKey(buf, int64(x))
	case Float:
		buf = appendFloatKey(buf, float64(x))
	case Bool:
		buf = strconv.AppendBool(buf, bool(x))
	case Char, Text:
		s, _ := textOf(x)
		buf = appendTextKey(buf, s)
	case Point:
		buf = appendPointKey(buf, x)
	case IntegralArray:
		buf = strconv.AppendInt(buf, int64(len(x.elems)), 10)
		for _, e := range x.elems {
			buf = appendIntKey(append(buf, ','), e)
		}
	case FloatingPointArray:
		buf = strconv.AppendInt(buf, int64(len(x.elems)), 10)
		for _, e := range x.elems {
			buf = appendFloatKey(append(buf, ','), e)
		}
	case BooleanArray:
		buf = strconv.AppendInt(buf, int64(len(x.elems)), 10)
		for _, e := range x.elems {
			buf = strconv.AppendBool(append(buf, ','), e)
		}
	case textSequence:
		buf = strconv.AppendInt(buf, int64(x.Len()), 10)
		for i, n := 0, x.Len(); i < n; i++ {
			buf = appendTextKey(append(buf, ','), x.textAt(i))
		}
	case GeometryArray:
		buf = strconv.AppendInt(buf, int64(len(x.points)), 10)
		for _, p := range x.points {
			buf = appendPointKey(append(buf, ','), p)
		}
	}
	return buf
}

func appendIntKey(buf []byte, i int64) []byte {
	return strconv.AppendInt(append(buf, 'i'), i, 10)
}

// appendFloatKey writes whole floats in int64 range as integers so that
// they match the integer they compare equal to. -0.0 becomes 0.
func appendFloatKey(buf []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(buf, "nan"...)
	case f == math.Trunc(f) && f >= minInt64Float && f < maxInt64Float:
		return appendIntKey(buf, int64(f))
	default:
		return strconv.AppendUint(append(buf, 'f'), math.Float64bits(f), 16)
	}
}

func appendTextKey(buf []byte, s string) []byte {
	buf = strconv.AppendInt(buf, int64(len(s)), 10)
	buf = append(buf, '"')
	return append(buf, s...)
}

func appendPointKey(buf []byte, p Point) []byte {
	buf = strconv.AppendInt(append(buf, '('), int64(p.crs.Code), 10)
	for _, c := range p.coords {
		buf = appendFloatKey(append(buf, ';'), c)
	}
	return append(buf, ')')
}
