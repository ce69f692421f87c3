// SPDX-License-Identifier: MIT

// Package vector - Vector type, construction, value semantics & access.
//
// Purpose:
//   - Own one rawmem.Buffer plus the count of live elements in its leading slots.
//   - Provide copy (Clone/Assign), move (Move/MoveAssign) and Swap semantics.
//   - Offer both an unchecked accessor (Ref) and checked ones (At/Set).
//
// Complexity quicksheet:
//   - Size/Capacity/Ref/At/Set/Swap/Move/MoveAssign: O(1).
//   - Clone: O(n); Assign: O(max(n, m)); Release/Clear: O(n).

package vector

import (
	"github.com/katalvlaran/lvvec/rawmem"
)

// Vector is a growable contiguous sequence of T.
//   - data owns the slots; size counts the live prefix [0, size).
//   - Slots [size, capacity) hold the zero value and no live element.
//   - The zero value is an empty, unbounded Vector ready to use.
//   - A Vector must not be copied by value; use Clone, Move or Swap.
type Vector[T any] struct {
	data rawmem.Buffer[T]
	size int
	opts Options
}

// New returns an empty Vector with zero capacity.
//
// Complexity:
//   - Time O(len(opts)), no slot allocation.
func New[T any](opts ...Option) *Vector[T] {
	return &Vector[T]{opts: gatherOptions(opts...)}
}

// NewWithSize returns a Vector holding n default-constructed elements with
// capacity exactly n.
//
// Errors:
//   - ErrNegativeSize (n < 0).
//   - ErrAllocation / ErrCapacityLimit when storage cannot be obtained.
//   - Any error returned by (*T).Init, after the elements built so far were destroyed.
func NewWithSize[T any](n int, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.Resize(n); err != nil {
		return nil, err
	}

	return v, nil
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of slots owned.
func (v *Vector[T]) Capacity() int {
	return v.data.Capacity()
}

// Empty reports whether Size() == 0.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Options returns the configuration captured at construction.
func (v *Vector[T]) Options() Options {
	return v.opts
}

// Ref returns a reference to element i without a bounds check against Size().
// i outside [0, Size()) is a contract violation: the result is unspecified
// (a runtime panic past Capacity(), a dead slot below it).
// The reference is invalidated by any reallocating or shifting operation.
func (v *Vector[T]) Ref(i int) *T {
	if debugChecks {
		assertf(i >= 0 && i < v.size, "Ref: index %d outside [0,%d)", i, v.size)
	}

	return v.data.Addr(i)
}

// Front returns a reference to the first element. Unchecked like Ref.
func (v *Vector[T]) Front() *T {
	return v.Ref(0)
}

// Back returns a reference to the last element. Unchecked like Ref.
func (v *Vector[T]) Back() *T {
	return v.Ref(v.size - 1)
}

// At returns a copy of element i.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Size()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, vecErrorf(opAt, i, ErrOutOfRange)
	}

	return *v.data.Addr(i), nil
}

// Set replaces element i with x, destroying the previous element.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Size()).
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.size {
		return vecErrorf(opSet, i, ErrOutOfRange)
	}
	p := v.data.Addr(i)
	destroyElem(traitsOf[T](), p)
	*p = x

	return nil
}

// live returns the live prefix of the slots.
func (v *Vector[T]) live() []T {
	return v.data.Slots()[:v.size]
}

// allocate obtains n empty slots, honoring the configured capacity limit.
func (v *Vector[T]) allocate(op string, arg, n int) (*rawmem.Buffer[T], error) {
	if lim := v.opts.maxCapacity; lim > 0 && n > lim {
		return nil, vecErrorf(op, arg, ErrCapacityLimit)
	}
	nb, err := rawmem.Allocate[T](n)
	if err != nil {
		return nil, vecErrorf(op, arg, err)
	}

	return nb, nil
}

// adopt installs nb as the storage, releases the previous slots and reports
// the growth of relocated elements. The previous elements must already be
// retired; the caller updates size.
func (v *Vector[T]) adopt(op string, nb *rawmem.Buffer[T], relocated int, policy TransferPolicy) {
	from := v.data.Capacity()
	v.data.Swap(nb)
	nb.Release()
	if v.opts.onGrow != nil {
		v.opts.onGrow(GrowthEvent{Op: op, From: from, To: v.data.Capacity(), Size: relocated, Policy: policy})
	}
}

// Clone returns an independent copy with capacity equal to Size() and the
// same options. Elements are copied through Copier when T implements it.
//
// Errors:
//   - ErrNotCopyable when Copyable[T]() is false; nothing is allocated.
//   - ErrAllocation when storage cannot be obtained.
//   - Any error returned by Copy; the copies made so far are destroyed and v is untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	t := traitsOf[T]()
	if !t.copyable {
		return nil, vecErrorf(OpClone, v.size, ErrNotCopyable)
	}
	nb, err := v.allocate(OpClone, v.size, v.size)
	if err != nil {
		return nil, err
	}
	if err = copyRange(t, nb.Slots(), v.live()); err != nil {
		return nil, err
	}
	out := &Vector[T]{size: v.size, opts: v.opts}
	out.data.Swap(nb)

	return out, nil
}

// Move transfers v's storage, elements and options into a new Vector and
// leaves v empty with zero capacity.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{opts: v.opts}
	out.Swap(v)

	return out
}

// Swap exchanges storage and size with other. Options stay in place.
// Never fails; O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// MoveAssign takes over other's storage and elements by swapping with it;
// other ends up holding v's previous contents. Self-assignment is a no-op.
func (v *Vector[T]) MoveAssign(other *Vector[T]) {
	if v == other {
		return
	}
	v.Swap(other)
}

// Assign makes v an element-wise copy of other.
//
// Implementation:
//   - Stage 1: refuse non-copyable types; self-assignment is a no-op.
//   - Stage 2: other.Size() > Capacity(): copy into fresh storage of exactly
//     other.Size() slots, then destroy v's elements and adopt it. Strong guarantee.
//   - Stage 3: otherwise reuse the slots: overwrite the common prefix, then
//     destroy the excess tail or copy-construct the extra elements.
//
// GrowthEvent.Policy for stage 2 is CopyConstruct when T has a Copier and
// Relocate when elements are copied by assignment.
//
// Errors:
//   - ErrNotCopyable when Copyable[T]() is false, checked before anything
//     else (self-assignment included); v is untouched.
//   - ErrAllocation / ErrCapacityLimit (stage 2, v untouched).
//   - Any error returned by Copy. In stage 3 the overwritten prefix stays
//     overwritten; elements built past the old size are destroyed and Size()
//     is unchanged.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	t := traitsOf[T]()
	if !t.copyable {
		return vecErrorf(OpAssign, other.size, ErrNotCopyable)
	}
	if v == other {
		return nil
	}
	src := other.live()

	if other.size > v.data.Capacity() {
		nb, err := v.allocate(OpAssign, other.size, other.size)
		if err != nil {
			return err
		}
		if err = copyRange(t, nb.Slots(), src); err != nil {
			return err
		}
		destroyRange(t, v.live())
		policy := Relocate
		if t.copier {
			policy = CopyConstruct
		}
		v.adopt(OpAssign, nb, other.size, policy)
		v.size = other.size
		return nil
	}

	s := v.data.Slots()
	prefix := min(v.size, other.size)
	for i := 0; i < prefix; i++ {
		x, err := copyElem(t, &src[i])
		if err != nil {
			return err
		}
		destroyElem(t, &s[i])
		s[i] = x
	}
	if other.size < v.size {
		destroyRange(t, s[other.size:v.size])
	} else if err := copyRange(t, s[v.size:other.size], src[v.size:]); err != nil {
		return err
	}
	v.size = other.size

	return nil
}

// Clear destroys every element and keeps the capacity.
func (v *Vector[T]) Clear() {
	destroyRange(traitsOf[T](), v.live())
	v.size = 0
}

// Release destroys every element and then releases the storage, leaving an
// empty Vector with zero capacity that remains usable.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}
