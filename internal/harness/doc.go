// Package harness evaluates scale operations from scenario files and
// compares the results against expectations and golden traces.
//
// # Scenario Format
//
// Scenarios are YAML (.yaml, .yml) or CUE (.cue) files:
//
//	name: rescale_basics
//	description: "Affine rescale onto the unit interval"
//	domain: real
//	steps:
//	  - op: rescale
//	    x: [0, 5, 10]
//	    to: [0, 1]
//	    expect:
//	      values: [0, 0.5, 1]
//	  - op: censor
//	    x: [1, 2, inf, 11]
//	    range: [0, 10]
//	    only_finite: false
//	    expect:
//	      values: [1, 2, NA, NA]
//	  - op: zero_range
//	    range: [1, 2, 3]
//	    expect:
//	      error: STRUCTURAL
//
// Values are numbers or text. Text is parsed in the step's domain, so
// "inf", "NA", "2020-01-01" and "90m" are all valid depending on the
// domain. Numbers given for the duration domain are seconds.
//
// # Domains
//
// A step runs in its own domain, the scenario's domain, or the natural
// domain of its operation (instant for the calendar operations, real for
// everything else), in that order.
//
// # Traces
//
// Every run produces one trace event per step. Traces serialize through
// MarshalCanonical with every value in its text form, so golden files are
// byte-stable across platforms.
package harness
