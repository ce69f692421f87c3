// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers
//
// Purpose:
//   • Instrumented element types that count every construction and destruction,
//     so tests can prove that no element leaks and none is destroyed twice.
//   • Failure injection: a construction budget that makes the N-th Init, Copy
//     or Move fail with errInjected.

package vector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvvec/vector"
)

var errInjected = errors.New("injected construction failure")

// ledger counts element lifetimes across the instrumented types.
type ledger struct {
	live     int // constructed and not yet destroyed
	inits    int
	copies   int
	moves    int
	destroys int
	budget   int // constructions allowed before the next fails; <0 = unlimited
}

// book is the shared ledger; tests are not parallel and reset it first.
var book ledger

func resetBook() {
	book = ledger{budget: -1}
}

// failAfter lets n more constructions succeed; the next one fails.
func failAfter(n int) {
	book.budget = n
}

func spend() error {
	if book.budget == 0 {
		return errInjected
	}
	if book.budget > 0 {
		book.budget--
	}

	return nil
}

// tracked has the full lifecycle: Init, Copy, Move, Destroy.
// Policy: CopyConstruct (its Move may fail, so relocation copies).
type tracked struct {
	val   int
	alive bool
}

func newTracked(val int) tracked {
	book.live++

	return tracked{val: val, alive: true}
}

func (e *tracked) Init() error {
	if err := spend(); err != nil {
		return err
	}
	e.alive = true
	book.live++
	book.inits++

	return nil
}

func (e *tracked) Copy() (tracked, error) {
	if err := spend(); err != nil {
		return tracked{}, err
	}
	book.live++
	book.copies++

	return tracked{val: e.val, alive: true}, nil
}

func (e *tracked) Move() (tracked, error) {
	if err := spend(); err != nil {
		return tracked{}, err
	}
	book.live++
	book.moves++
	out := tracked{val: e.val, alive: true}
	e.val = 0 // moved-from, still destructible

	return out, nil
}

func (e *tracked) Destroy() {
	if !e.alive {
		panic("tracked: destroy of a dead element")
	}
	e.alive = false
	book.live--
	book.destroys++
}

// movable can only be moved. Policy: MoveConstruct.
type movable struct {
	val   int
	alive bool
}

func newMovable(val int) movable {
	book.live++

	return movable{val: val, alive: true}
}

func (e *movable) Move() (movable, error) {
	if err := spend(); err != nil {
		return movable{}, err
	}
	book.live++
	book.moves++
	out := movable{val: e.val, alive: true}
	e.val = -1

	return out, nil
}

func (e *movable) Destroy() {
	if !e.alive {
		panic("movable: destroy of a dead element")
	}
	e.alive = false
	book.live--
	book.destroys++
}

// handle is used through *handle elements: capabilities on the pointer type.
type handle struct {
	name   string
	closed bool
}

func (h *handle) Copy() (*handle, error) {
	if err := spend(); err != nil {
		return nil, err
	}
	book.copies++

	return &handle{name: h.name}, nil
}

func (h *handle) Destroy() {
	h.closed = true
	book.destroys++
}

// ints builds a Vector[int] holding vals via PushBack.
func ints(t *testing.T, vals ...int) *vector.Vector[int] {
	t.Helper()
	v := vector.New[int]()
	for _, x := range vals {
		_, err := v.PushBack(x)
		require.NoError(t, err)
	}

	return v
}

// trackedVec builds a Vector[tracked] with the given values and capacity.
func trackedVec(t *testing.T, capacity int, vals ...int) *vector.Vector[tracked] {
	t.Helper()
	v := vector.New[tracked]()
	require.NoError(t, v.Reserve(capacity))
	for _, x := range vals {
		_, err := v.PushBack(newTracked(x))
		require.NoError(t, err)
	}

	return v
}

// valsOf extracts the payloads of a tracked Vector.
func valsOf(v *vector.Vector[tracked]) []int {
	out := make([]int, 0, v.Size())
	for x := range v.Values() {
		out = append(out, x.val)
	}

	return out
}

// requireInvariant checks Size() <= Capacity().
func requireInvariant[T any](t *testing.T, v *vector.Vector[T]) {
	t.Helper()
	require.LessOrEqual(t, v.Size(), v.Capacity(), "size must never exceed capacity")
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// lease only has Destroy: it owns a resource but cannot be copied.
// Policy: Relocate; Copyable: false.
type lease struct {
	id int
}

func (l *lease) Destroy() {
	book.destroys++
}
