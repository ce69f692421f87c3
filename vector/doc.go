// SPDX-License-Identifier: MIT

// Package vector implements Vector, a growable contiguous sequence that keeps
// raw slot ownership (package rawmem) apart from the live elements stored in
// it, and stays exception-safe in Go terms: every fallible step returns an
// error and leaves the container in a valid, fully accounted state.
//
// 🚀 What it gives you
//
//	• Amortized O(1) PushBack/EmplaceBack with doubling growth (1, 2, 4, ...)
//	• Reserve/Resize, mid-sequence Insert/Emplace/Erase, PopBack
//	• Value semantics: Clone (copy), Move, Assign, MoveAssign, Swap
//	• Unchecked Ref plus checked At/Set
//	• iter.Seq based iteration: All, Values, Backward
//
// ⚙️ Element lifecycle
//
// Element types opt into lifecycle hooks by implementing small interfaces:
//
//	Initializer  Init() error          default construction beyond the zero value
//	Copier[T]    Copy() (T, error)     copy construction (deep copies)
//	Mover[T]     Move() (T, error)     relocation that may fail
//	Destroyer    Destroy()             end of lifetime
//
// Types implementing none of them behave like plain Go values.
//
// 🔁 Transfer policy
//
// When storage is reallocated the live elements are relocated according to
// PolicyOf[T]:
//
//	Relocate       no Mover: plain assignment, cannot fail
//	MoveConstruct  Mover without Copier: Move is the only option
//	CopyConstruct  Mover and Copier: copy, so a failure leaves the old storage intact
//
// Growth-triggering operations (Reserve, Resize's reservation, PushBack,
// EmplaceBack, Insert, Emplace, Assign into larger storage) give the strong
// guarantee under Relocate and CopyConstruct: on error nothing observable has
// changed and no element was leaked or destroyed twice. Under MoveConstruct a
// failed Move still leaks nothing and keeps Size() and Capacity(), but the
// elements moved before it are left in their moved-from state.
//
// Clone and Assign require Copyable[T](): a Copier, or neither a Mover nor a
// Destroyer. Other types own resources that assignment would duplicate, so
// both return ErrNotCopyable.
//
// Contracts
//
//   - Size() <= Capacity() after every operation.
//   - Ref/Front/Back/PopBack/Insert/Emplace/Erase do not validate positions;
//     build with -tags vectordebug to turn violations into descriptive panics.
//   - A Vector is single-threaded: callers synchronize externally.
//   - Positions and references are invalidated by growth, insertion and erasure.
//
// Configuration uses functional options (WithMaxCapacity, WithGrowthHook).
//
// Complexity:
//   - PushBack amortized O(1); Insert/Erase O(n - pos); Reserve/Clone O(n).
package vector
