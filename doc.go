// Package lvvec is a growable contiguous container for Go with explicit
// element lifecycles and failure-safe growth.
//
// 🚀 What is lvvec?
//
//	A small, dependency-light library built from two layers:
//		• rawmem: a typed block of empty slots; allocation, release, swap
//		• vector: a sequence container on top of it; Reserve, Resize,
//		  PushBack, EmplaceBack, Insert, Emplace, Erase, PopBack, Clone,
//		  Assign, Move, Swap and range-over-func iteration
//
// ✨ Why lvvec?
//
//   - Elements may own resources: Init, Copy, Move and Destroy hooks are
//     honored on every construction, relocation and removal
//   - Growth is all-or-nothing: a failed allocation or element copy leaves
//     the container exactly as it was
//   - The relocation strategy is picked per element type (relocate, move or
//     copy) and reported through vector.PolicyOf
//
// Layout:
//
//	rawmem/   — storage buffer: uninitialized slots, no element semantics
//	vector/   — the container, options (WithMaxCapacity, WithGrowthHook), errors
//	examples/ — a runnable demo logging growth events with go-kit/log
//
// Contract checks on unchecked accessors (Ref, Front, Back, PopBack, Erase,
// Insert positions) are compiled in with the vectordebug build tag.
package lvvec
