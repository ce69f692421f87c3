// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Container-originated failures return these sentinels wrapped with a
// "Vector.<Method>(<arg>): " context; callers MUST match them via errors.Is.
// Errors produced by element capabilities (Init, Copy, Move) and by construct
// callbacks are returned unchanged, never wrapped.

package vector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvvec/rawmem"
)

var (
	// ErrAllocation is the storage layer's allocation failure. It is the same
	// sentinel as rawmem.ErrAllocation so either name matches.
	ErrAllocation = rawmem.ErrAllocation

	// ErrOutOfRange indicates an index outside [0, Size()) on a checked accessor.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrNegativeSize indicates a negative size or capacity request.
	ErrNegativeSize = errors.New("vector: negative size")

	// ErrNotCopyable indicates a copy of an element type that owns resources
	// but implements no Copier (move-only or destroy-only types).
	ErrNotCopyable = errors.New("vector: element type is not copyable")

	// ErrCapacityLimit indicates that growth would exceed WithMaxCapacity.
	// It wraps ErrAllocation: a configured limit is an allocation refusal.
	ErrCapacityLimit = fmt.Errorf("vector: capacity limit exceeded: %w", ErrAllocation)
)

// vecErrorf wraps a container error with the method tag and its argument.
func vecErrorf(method string, arg int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, arg, err)
}
