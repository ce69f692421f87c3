// SPDX-License-Identifier: MIT

package vector

import "math"

// Reserve ensures Capacity() >= n without changing Size() or the elements.
// n <= Capacity() is a no-op; otherwise exactly n slots are allocated and the
// elements are transferred per PolicyOf[T].
// Strong guarantee unless PolicyOf[T]() == MoveConstruct: a failed Move then
// keeps Size() and Capacity() and leaks nothing, but the elements before the
// failing one are left moved-from.
//
// Errors:
//   - ErrNegativeSize (n < 0).
//   - ErrAllocation / ErrCapacityLimit.
//   - Any error returned by Copy or Move during the transfer.
//
// Complexity:
//   - O(1) when no reallocation is needed, O(Size()) otherwise.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return vecErrorf(OpReserve, n, ErrNegativeSize)
	}
	if n <= v.data.Capacity() {
		return nil
	}

	return v.reallocate(OpReserve, n)
}

// reallocate moves the live elements into fresh storage of n slots.
func (v *Vector[T]) reallocate(op string, n int) error {
	t := traitsOf[T]()
	nb, err := v.allocate(op, n, n)
	if err != nil {
		return err
	}
	src := v.live()
	if err = transfer(t, nb.Slots()[:v.size], src); err != nil {
		return err
	}
	retire(t, src)
	v.adopt(op, nb, v.size, t.policy)

	return nil
}

// Resize sets Size() to n. Shrinking destroys [n, Size()); growing reserves
// n slots and default-constructs [Size(), n).
//
// Errors:
//   - ErrNegativeSize (n < 0).
//   - Reserve's errors.
//   - Any error returned by (*T).Init: the elements built by this call are
//     destroyed and Size() is unchanged (Capacity() may already have grown).
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return vecErrorf(OpResize, n, ErrNegativeSize)
	}
	t := traitsOf[T]()
	if n <= v.size {
		destroyRange(t, v.data.Slots()[n:v.size])
		v.size = n
		return nil
	}
	if n > v.data.Capacity() {
		if err := v.reallocate(OpResize, n); err != nil {
			return err
		}
	}

	s := v.data.Slots()
	for i := v.size; i < n; i++ {
		if err := constructAt(t, &s[i], nil); err != nil {
			destroyRange(t, s[v.size:i])
			return err
		}
	}
	v.size = n

	return nil
}

// nextCapacity returns the capacity to grow to when the storage is full:
// max(1, 2*Size()), clamped to the configured limit.
func (v *Vector[T]) nextCapacity(op string) (int, error) {
	var n int
	switch {
	case v.size == 0:
		n = 1
	case v.size > math.MaxInt/2:
		n = math.MaxInt // rawmem rejects it with ErrAllocation
	default:
		n = v.size * 2
	}
	if lim := v.opts.maxCapacity; lim > 0 && n > lim {
		if v.size >= lim {
			return 0, vecErrorf(op, v.size, ErrCapacityLimit)
		}
		n = lim
	}

	return n, nil
}

// PushBack appends value and returns a reference to it. The value is stored
// as is: callers that need a deep copy pass the result of their own Copy.
// On error value is not destroyed: ownership stays with the caller. The
// Vector is unchanged unless a MoveConstruct relocation failed (see Reserve).
// Amortized O(1).
//
// Errors:
//   - ErrAllocation / ErrCapacityLimit.
//   - Any error returned by Copy or Move while relocating on growth.
func (v *Vector[T]) PushBack(value T) (*T, error) {
	return v.emplaceBack(OpPushBack, false, func(slot *T) error {
		*slot = value
		return nil
	})
}

// EmplaceBack constructs a new last element in place by calling construct
// on its empty slot, or default-constructs it when construct is nil.
// Returns a reference to the new element. When construct fails nothing
// changes and its error is returned unchanged; growth failures follow Reserve.
func (v *Vector[T]) EmplaceBack(construct func(*T) error) (*T, error) {
	return v.emplaceBack(OpEmplaceBack, true, construct)
}

// emplaceBack builds the new element directly in its final slot. On growth
// that slot lives in the new storage and is built before anything is
// transferred, so a failing constructor leaves the old storage untouched.
// built reports whether construct creates a new element (destroyed on
// rollback) or stores a caller-owned value (only dropped on rollback).
func (v *Vector[T]) emplaceBack(op string, built bool, construct func(*T) error) (*T, error) {
	t := traitsOf[T]()
	if v.size < v.data.Capacity() {
		slot := v.data.Addr(v.size)
		if err := constructAt(t, slot, construct); err != nil {
			return nil, err
		}
		v.size++
		return slot, nil
	}

	n, err := v.nextCapacity(op)
	if err != nil {
		return nil, err
	}
	nb, err := v.allocate(op, v.size, n)
	if err != nil {
		return nil, err
	}
	slot := nb.Addr(v.size)
	if err = constructAt(t, slot, construct); err != nil {
		return nil, err
	}
	src := v.live()
	if err = transfer(t, nb.Slots()[:v.size], src); err != nil {
		discard(t, slot, built)
		return nil, err
	}
	retire(t, src)
	v.adopt(op, nb, v.size, t.policy)
	v.size++

	return slot, nil
}
