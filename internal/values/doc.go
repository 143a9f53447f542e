// Package values provides the storable value kinds and their comparison and
// equality rules.
//
// Every value belongs to exactly one ValueGroup. Values in different groups
// are never equal and are ordered by a Precedence over groups; values in the
// same group are ordered by that group's own rule.
//
// Key constraints:
//   - Values are immutable after construction; constructors copy their input
//   - Equals is total over every pair of values and never panics
//   - Compare is total: exactly one of Less, Equal, Greater
//   - Equals(a, b) implies Compare(a, b) == Equal and Hash(a) == Hash(b)
//   - Integral and floating-point numbers compare exactly across flavors
//
// All functions are pure and safe for concurrent use.
package values
