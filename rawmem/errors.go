// SPDX-License-Identifier: MIT
// Package rawmem: sentinel error set.
// Every message is prefixed with "rawmem: ..."; Allocate wraps them with its
// call context, so callers MUST match via errors.Is.

package rawmem

import "errors"

var (
	// ErrAllocation indicates that the requested number of slots cannot be
	// provided for the element type (size overflow or runtime refusal).
	ErrAllocation = errors.New("rawmem: allocation failed")

	// ErrNegativeCapacity indicates a negative slot count.
	ErrNegativeCapacity = errors.New("rawmem: negative capacity")
)
