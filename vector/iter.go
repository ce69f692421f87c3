// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// All yields (index, reference) pairs over [0, Size()) in order.
// The sequence is lazy and restartable; mutating the Vector while ranging
// invalidates previously yielded references.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.Addr(i)) {
				return
			}
		}
	}
}

// Values yields copies of the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.Addr(i)) {
				return
			}
		}
	}
}

// Backward yields (index, reference) pairs from the last element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data.Addr(i)) {
				return
			}
		}
	}
}

// Slice returns a view of the live elements. Its capacity is clipped to its
// length, so append on the view never writes into the Vector's spare slots.
// The view is invalidated by any reallocating or shifting operation.
func (v *Vector[T]) Slice() []T {
	return v.data.Slots()[:v.size:v.size]
}

// String renders the elements as "[a, b, c]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < v.size; i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, *v.data.Addr(i))
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}
