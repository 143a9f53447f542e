// Package harness runs conformance scenarios against the value ordering
// and equality rules.
//
// A scenario names a fixture file and a list of checks on its values. The
// harness evaluates every check, records one trace event per check and
// reports the checks whose outcome differs from the expectation. Traces are
// deterministic, so they can be compared against golden files.
//
// # Scenario Format
//
//	name: number_arrays
//	description: "Integral and floating-point arrays compare exactly"
//	fixture: ../fixtures/values.yaml
//	options:
//	  length_first: false
//	  precedence: [number, text]
//	checks:
//	  - type: compare
//	    values: [ints, floats]
//	    want: equal
//	  - type: equal
//	    values: [letters, words]
//	    want: "true"
//	  - type: sort
//	    values: [ints, one, empty-ints]
//	    order: [empty-ints, one, ints]
//	  - type: same_hash
//	    values: [ints, floats]
//	    want: "true"
//
// The fixture path is resolved relative to the scenario file.
//
// # Check Types
//
//   - compare: orders exactly two values; want is less, equal or greater
//   - equal: tests exactly two values for equality; want is true or false
//   - sort: sorts the values; order is the expected name order
//   - same_hash: compares the content hashes of two values
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/number_arrays.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
