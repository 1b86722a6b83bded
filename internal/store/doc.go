// Package store provides SQLite-backed storage for harness run history.
//
// Each recorded run holds one row in runs and one row per scenario in
// scenario_results. Runs are keyed by a time-ordered UUIDv7, so listing
// by id descending yields the newest runs first.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
