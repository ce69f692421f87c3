// SPDX-License-Identifier: MIT

package vector

// Insert places value at index pos, shifting [pos, Size()) one slot right,
// and returns pos. pos must lie in [0, Size()]; anything else is a contract
// violation. The value is stored as is, like PushBack, and on error stays
// owned by the caller.
//
// Errors and guarantees are those of Emplace.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	return v.emplace(OpInsert, pos, false, func(slot *T) error {
		*slot = value
		return nil
	})
}

// Emplace constructs a new element at index pos by calling construct on an
// empty slot (default construction when construct is nil), shifting
// [pos, Size()) one slot right. Returns pos, or -1 with the error.
//
// Implementation:
//   - Spare capacity, pos == Size(): construct directly in the trailing slot.
//   - Spare capacity, pos < Size(): construct a temporary, shift the tail
//     right by one, then store the temporary at pos.
//   - Full storage: allocate max(1, 2*Size()) slots, construct the new
//     element at pos of the new storage first, then transfer [0, pos) before
//     it and [pos, Size()) after it.
//
// Behavior highlights:
//   - construct always runs before any existing element is touched, so it may
//     read the Vector and sees the unmodified sequence.
//   - If construction, allocation or either transfer phase fails, everything
//     built in the new storage (the new element included) is destroyed.
//   - Strong guarantee unless PolicyOf[T]() == MoveConstruct. Under
//     MoveConstruct a failed Move keeps Size() and Capacity() and leaks
//     nothing, but the elements moved before it are left moved-from.
//
// Errors:
//   - ErrAllocation / ErrCapacityLimit.
//   - construct's error, or a Copy/Move error from the transfer, unchanged.
//
// Complexity:
//   - O(Size() - pos) with spare capacity, O(Size()) when reallocating.
func (v *Vector[T]) Emplace(pos int, construct func(*T) error) (int, error) {
	return v.emplace(OpEmplace, pos, true, construct)
}

// emplace implements Insert and Emplace; built has the emplaceBack meaning.
func (v *Vector[T]) emplace(op string, pos int, built bool, construct func(*T) error) (int, error) {
	if debugChecks {
		assertf(pos >= 0 && pos <= v.size, "%s: position %d outside [0,%d]", op, pos, v.size)
	}
	t := traitsOf[T]()

	if v.size < v.data.Capacity() {
		s := v.data.Slots()
		if pos == v.size {
			if err := constructAt(t, &s[pos], construct); err != nil {
				return -1, err
			}
		} else {
			var tmp T
			if err := constructAt(t, &tmp, construct); err != nil {
				return -1, err
			}
			copy(s[pos+1:v.size+1], s[pos:v.size])
			s[pos] = tmp
		}
		v.size++
		return pos, nil
	}

	n, err := v.nextCapacity(op)
	if err != nil {
		return -1, err
	}
	nb, err := v.allocate(op, pos, n)
	if err != nil {
		return -1, err
	}
	dst := nb.Slots()
	if err = constructAt(t, &dst[pos], construct); err != nil {
		return -1, err
	}
	src := v.live()
	if err = transfer(t, dst[:pos], src[:pos]); err != nil {
		discard(t, &dst[pos], built)
		return -1, err
	}
	if err = transfer(t, dst[pos+1:v.size+1], src[pos:]); err != nil {
		destroyRange(t, dst[:pos])
		discard(t, &dst[pos], built)
		return -1, err
	}
	retire(t, src)
	v.adopt(op, nb, v.size, t.policy)
	v.size++

	return pos, nil
}

// Erase destroys the element at pos, shifts (pos, Size()) one slot left and
// returns pos, now the index of the element that followed the erased one.
// pos must lie in [0, Size()). Never fails.
//
// Complexity:
//   - O(Size() - pos).
func (v *Vector[T]) Erase(pos int) int {
	if debugChecks {
		assertf(pos >= 0 && pos < v.size, "Erase: position %d outside [0,%d)", pos, v.size)
	}
	s := v.data.Slots()
	destroyElem(traitsOf[T](), &s[pos])
	copy(s[pos:v.size-1], s[pos+1:v.size])
	var zero T
	s[v.size-1] = zero
	v.size--

	return pos
}

// PopBack destroys the last element. Calling it on an empty Vector is a
// contract violation.
func (v *Vector[T]) PopBack() {
	if debugChecks {
		assertf(v.size > 0, "PopBack: empty vector")
	}
	destroyElem(traitsOf[T](), v.data.Addr(v.size-1))
	v.size--
}
