// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and the integer
// overflow policy. This file defines:
//   - OverflowPolicy and its documented default,
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Notes:
//   - Options are consumed by constructors only. The resolved policy is stored
//     on the *Matrix and survives Clone/NewCopy and every arithmetic result
//     (results inherit the receiver's policy).
//   - Editing methods never compute new values, so the policy does not affect them.
package matrix

import "fmt"

// OverflowPolicy selects what arithmetic does when an int64 result does not fit.
type OverflowPolicy uint8

const (
	// OverflowFail aborts the operation with ErrOverflow; no result is produced.
	OverflowFail OverflowPolicy = iota

	// OverflowWrap keeps the two's-complement wrapped value (Go's native semantics).
	OverflowWrap

	// OverflowSaturate clamps the value to math.MaxInt64 or math.MinInt64.
	OverflowSaturate
)

// String returns the policy name.
func (p OverflowPolicy) String() string {
	switch p {
	case OverflowFail:
		return "fail"
	case OverflowWrap:
		return "wrap"
	case OverflowSaturate:
		return "saturate"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", uint8(p))
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOverflowPolicy fails loudly rather than silently producing a wrong value.
	DefaultOverflowPolicy = OverflowFail

	// DefaultCapacity is the element capacity preallocated by New (0 = lazy).
	DefaultCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicOverflowPolicyInvalid = "matrix: WithOverflowPolicy: unknown policy"
	panicCapacityInvalid       = "matrix: WithCapacity: capacity must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	overflow OverflowPolicy // DefaultOverflowPolicy
	capacity int            // DefaultCapacity
}

// WithOverflowPolicy sets the overflow policy for the constructed matrix.
// Panics when p is not one of OverflowFail, OverflowWrap, OverflowSaturate.
func WithOverflowPolicy(p OverflowPolicy) Option {
	if p > OverflowSaturate {
		panic(panicOverflowPolicyInvalid)
	}

	return func(o *Options) { o.overflow = p }
}

// WithCapacity preallocates room for n elements. Useful when a matrix is built
// incrementally with AppendRow/AppendColumn and the final size is known.
// Panics when n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// gatherOptions applies user setters over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		overflow: DefaultOverflowPolicy,
		capacity: DefaultCapacity,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
