// SPDX-License-Identifier: MIT

// Package rawmem provides Buffer, an owned block of element slots with no
// knowledge of which slots hold live objects.
//
// A Buffer is pure storage: it is sized in element units, it never constructs
// or destroys what lives in its slots, and its ownership is unique. Callers
// (see package vector) track which prefix of the slots is live and run the
// element-level construction and destruction themselves.
//
// Ownership:
//   - Allocate returns a fresh *Buffer that the caller owns exclusively.
//   - Swap and Move transfer ownership wholesale; nothing is ever shared.
//   - Copying a Buffer value is forbidden; go vet reports it (noCopy marker).
//
// Errors:
//   - ErrNegativeCapacity for n < 0.
//   - ErrAllocation when the runtime cannot provide n slots of T.
//
// Complexity quicksheet:
//   - Allocate: O(n) (the runtime zero-fills); Release/Swap/Move/Addr: O(1).
package rawmem
