// Package fixture builds values from YAML literals.
//
// A fixture file lists named values:
//
//	values:
//	  - name: ints
//	    kind: int[]
//	    value: [1, 2, 3]
//	  - name: origin
//	    kind: point
//	    crs: cartesian
//	    value: [0, 0]
//
// Files are validated against an embedded CUE schema before any value is
// built. Text literals are NFC-normalized at load time, so a decomposed "é"
// and a precomposed "é" load as the same value.
//
// Decode and Encode convert between a single Entry and a values.Value
// without normalization; the store uses them to persist property values.
package fixture
