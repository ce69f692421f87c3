// SPDX-License-Identifier: MIT

package rawmem

import (
	"fmt"
	"math"
	"math/bits"
	"runtime"
	"unsafe"
)

// maxAllocBytes caps a single Allocate below the runtime's own arena limit so
// oversized requests fail with ErrAllocation instead of a fatal out-of-memory.
var maxAllocBytes = func() uint64 {
	if bits.UintSize == 64 {
		return 1 << 47
	}

	return 1<<31 - 1
}()

// noCopy lets `go vet -copylocks` flag accidental Buffer value copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer owns capacity slots of T.
//   - slots is nil iff the capacity is 0; len(slots) == cap(slots) == capacity.
//   - The buffer never reads, constructs or destroys slot contents.
type Buffer[T any] struct {
	_     noCopy
	slots []T
}

// allocErrorf wraps a sentinel with the Allocate call context.
func allocErrorf(n int, err error) error {
	return fmt.Errorf("Allocate(%d): %w", n, err)
}

// MaxCapacity reports the largest slot count Allocate accepts for T.
// Zero-sized element types are bounded only by math.MaxInt.
func MaxCapacity[T any]() int {
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}

	return int(maxAllocBytes / size)
}

// Allocate reserves n slots of T without constructing anything in them.
//
// Behavior highlights:
//   - n == 0 yields an empty buffer and performs no allocation.
//   - A runtime allocation panic (runtime.Error from make) is recovered and
//     reported as ErrAllocation; any other panic is re-raised.
//
// Errors:
//   - ErrNegativeCapacity (n < 0).
//   - ErrAllocation (n > MaxCapacity[T]() or runtime refusal).
//
// Complexity:
//   - Time O(n), Space O(n).
func Allocate[T any](n int) (buf *Buffer[T], err error) {
	if n < 0 {
		return nil, allocErrorf(n, ErrNegativeCapacity)
	}
	if n == 0 {
		return &Buffer[T]{}, nil
	}
	if n > MaxCapacity[T]() {
		return nil, allocErrorf(n, ErrAllocation)
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			buf, err = nil, allocErrorf(n, ErrAllocation)
		}
	}()

	return &Buffer[T]{slots: make([]T, n)}, nil
}

// Capacity returns the number of slots owned by b.
func (b *Buffer[T]) Capacity() int {
	return len(b.slots)
}

// Empty reports whether b owns no slots.
func (b *Buffer[T]) Empty() bool {
	return len(b.slots) == 0
}

// Addr returns the address of slot i. No bounds check beyond the Go runtime's
// own; the slot is not implied to hold a live element.
func (b *Buffer[T]) Addr(i int) *T {
	return &b.slots[i]
}

// Slots exposes all capacity slots for bulk relocation. The view is
// invalidated by Release, Swap and Move.
func (b *Buffer[T]) Slots() []T {
	return b.slots
}

// Release drops the owned slots. Idempotent. It never destroys elements:
// callers must have destroyed every live slot beforehand.
func (b *Buffer[T]) Release() {
	b.slots = nil
}

// Swap exchanges ownership of the slots between b and other. Never fails.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Move transfers ownership of b's slots into a new Buffer and leaves b empty.
func (b *Buffer[T]) Move() *Buffer[T] {
	out := &Buffer[T]{}
	out.Swap(b)

	return out
}
