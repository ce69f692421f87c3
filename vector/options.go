// SPDX-License-Identifier: MIT

// Package vector: functional configuration for a Vector.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, the single place where defaults are applied.
//
// Options are captured at construction and travel with the container through
// Clone and Move. Swap and MoveAssign exchange storage only, never options.

package vector

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxCapacity of 0 means the only bound is the storage layer's
	// rawmem.MaxCapacity for the element type.
	DefaultMaxCapacity = 0
)

// Operation tags reported in GrowthEvent.Op and used in error contexts.
const (
	OpReserve     = "Reserve"
	OpResize      = "Resize"
	OpPushBack    = "PushBack"
	OpEmplaceBack = "EmplaceBack"
	OpInsert      = "Insert"
	OpEmplace     = "Emplace"
	OpAssign      = "Assign"
	OpClone       = "Clone"

	opAt  = "At"
	opSet = "Set"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxCapacityInvalid = "vector: WithMaxCapacity: limit must be >= 1"
	panicGrowthHookNil      = "vector: WithGrowthHook: hook must be non-nil"
)

// GrowthEvent describes one successful reallocation.
//   - Op: the public operation that reallocated (OpReserve, OpPushBack, ...).
//   - From, To: capacity before and after.
//   - Size: live elements relocated into the new storage.
//   - Policy: how those elements were relocated.
type GrowthEvent struct {
	Op     string
	From   int
	To     int
	Size   int
	Policy TransferPolicy
}

// Option mutates Options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective configuration of one Vector.
type Options struct {
	maxCapacity int               // 0 = unbounded; DefaultMaxCapacity
	onGrow      func(GrowthEvent) // nil = no observer
}

// WithMaxCapacity bounds the capacity a Vector may reach. Doubling growth is
// clamped to the limit; once Size() equals it, growth fails with
// ErrCapacityLimit. Panics if n < 1.
func WithMaxCapacity(n int) Option {
	if n < 1 {
		panic(panicMaxCapacityInvalid)
	}

	return func(o *Options) {
		o.maxCapacity = n
	}
}

// WithGrowthHook registers fn to observe every successful reallocation.
// The hook runs after the new storage is in place and must not mutate the
// Vector that triggered it. Panics if fn is nil.
func WithGrowthHook(fn func(GrowthEvent)) Option {
	if fn == nil {
		panic(panicGrowthHookNil)
	}

	return func(o *Options) {
		o.onGrow = fn
	}
}

// gatherOptions applies opts left-to-right over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{maxCapacity: DefaultMaxCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// MaxCapacity reports the configured limit, 0 when unbounded.
func (o Options) MaxCapacity() int {
	return o.maxCapacity
}
