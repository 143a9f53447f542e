package values

import (
	"cmp"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// compareText orders strings by UTF-16 code units, which differs from Go's
// byte-wise UTF-8 order for characters above U+FFFF.
func compareText(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			if c := cmp.Compare(leadUnit(ra), leadUnit(rb)); c != 0 {
				return c
			}
			return cmp.Compare(ra, rb)
		}
		// Invalid bytes all decode to RuneError; keep them distinct.
		if ra == utf8.RuneError {
			if c := strings.Compare(a[:na], b[:nb]); c != 0 {
				return c
			}
		}
		a, b = a[na:], b[nb:]
	}
	return cmp.Compare(len(a), len(b))
}

// leadUnit returns the first UTF-16 code unit of r.
func leadUnit(r rune) rune {
	if r < 0x10000 {
		return r
	}
	hi, _ := utf16.EncodeRune(r)
	return hi
}

// textSequence is implemented by the arrays of GroupTextArray.
type textSequence interface {
	Len() int
	textAt(i int) string
}

func compareTextSequences(a, b textSequence) int {
	return compareSequences(a.Len(), b.Len(), func(i int) int {
		return compareText(a.textAt(i), b.textAt(i))
	})
}

// textOf returns the string form of a GroupText scalar.
func textOf(v Value) (string, bool) {
	switch t := v.(type) {
	case Text:
		return string(t), true
	case Char:
		return string(rune(t)), true
	default:
		return "", false
	}
}
