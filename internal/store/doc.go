// Package store provides SQLite-backed storage for property values.
//
// The store keeps at most one row per distinct value of a property. A write
// is a duplicate when an existing row of the same property has the same
// value hash and values.Equals confirms the match; hash equality alone is
// never trusted.
//
// Reads return values in comparator order, not insertion order. The
// comparator is configurable with WithComparator, so a store opened with a
// length-first comparator lists arrays shortest first.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// Values are persisted as fixture literals (see internal/fixture) in YAML,
// which keeps NaN and infinities intact.
package store
