// Package domain provides the ordered value types shared by every scale
// transformation in scalekit.
//
// This package imports nothing internal. The bounds kernel, the calendar
// adjuster and the palettes all operate on domain.Value and never inspect
// a concrete type beyond what this package exposes.
//
// Key design constraints:
//   - Value is sealed: only Real, Instant, Duration and Missing implement it
//   - Missing values carry their domain, so propagation keeps the kind
//   - Arithmetic is explicit; anything outside the legal table is TYPE_MISMATCH
//   - No caches, no package state: every function is referentially transparent
package domain
