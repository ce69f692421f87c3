// SPDX-License-Identifier: MIT

package vector

// Element capabilities. A type opts into each lifecycle hook by implementing
// the matching interface; capabilities are looked up on *T, so both value and
// pointer receivers count. When T is itself a pointer type its own method set
// is consulted too, and nil elements are treated as trivially copyable,
// movable and destructible.

// Initializer is implemented by element types whose default construction does
// more than produce the zero value. Init runs on the zeroed slot.
type Initializer interface {
	Init() error
}

// Copier is implemented by element types whose copies must be produced
// explicitly (deep copies of owned resources). Copy may fail.
type Copier[T any] interface {
	Copy() (T, error)
}

// Mover is implemented by element types whose relocation runs custom logic
// that may fail. The receiver must stay destructible afterwards.
type Mover[T any] interface {
	Move() (T, error)
}

// Destroyer is implemented by element types that release resources when an
// element's lifetime ends. Destroy must not fail.
type Destroyer interface {
	Destroy()
}

// TransferPolicy selects how live elements are relocated into new storage.
type TransferPolicy int

const (
	// Relocate moves elements by plain assignment, which cannot fail. Chosen
	// for every type without a Mover. The old slots are zeroed, not destroyed.
	Relocate TransferPolicy = iota

	// MoveConstruct calls Move for each element. Chosen when the type has a
	// Mover but no Copier: moving is the only option.
	MoveConstruct

	// CopyConstruct calls Copy (or assigns) for each element and destroys the
	// originals only after every copy succeeded. Chosen when the type has both
	// a Mover and a Copier, because a failing Move cannot be rolled back.
	CopyConstruct
)

// String returns the policy name.
func (p TransferPolicy) String() string {
	switch p {
	case Relocate:
		return "relocate"
	case MoveConstruct:
		return "move"
	case CopyConstruct:
		return "copy"
	default:
		return "unknown"
	}
}

// Copyable reports whether Clone and Assign accept Vector[T]. A type is
// copyable when it implements Copier, or when it has neither a Mover nor a
// Destroyer so that plain assignment duplicates no owned resource.
func Copyable[T any]() bool {
	return traitsOf[T]().copyable
}

// PolicyOf reports the TransferPolicy a Vector[T] uses when it reallocates.
func PolicyOf[T any]() TransferPolicy {
	return traitsOf[T]().policy
}

// traits is the capability lookup for one element type.
type traits struct {
	policy    TransferPolicy
	onValue   bool // capabilities live on T itself (T is a pointer type)
	initer    bool
	copier    bool
	mover     bool
	destroyer bool
	copyable  bool // Copier present, or plain assignment duplicates nothing owned
}

func traitsOf[T any]() traits {
	var (
		t traits
		p *T
	)
	_, t.initer = any(p).(Initializer)
	_, t.copier = any(p).(Copier[T])
	_, t.mover = any(p).(Mover[T])
	_, t.destroyer = any(p).(Destroyer)

	if !t.copier && !t.mover && !t.destroyer {
		// Only pointer-typed T can carry methods that *T lacks.
		var zero T
		v := any(zero)
		_, c := v.(Copier[T])
		_, m := v.(Mover[T])
		_, d := v.(Destroyer)
		if c || m || d {
			t.onValue = true
			t.copier, t.mover, t.destroyer = c, m, d
		}
	}

	t.copyable = t.copier || (!t.mover && !t.destroyer)

	switch {
	case !t.mover:
		t.policy = Relocate
	case t.copier:
		t.policy = CopyConstruct
	default:
		t.policy = MoveConstruct
	}

	return t
}

// isNil reports whether a pointer-typed element is nil. Only valid when
// traits.onValue is set, which guarantees T is comparable.
func isNil[T any](v T) bool {
	var zero T

	return any(v) == any(zero)
}

func initElem[T any](t traits, p *T) error {
	if !t.initer {
		return nil
	}

	return any(p).(Initializer).Init()
}

func copyElem[T any](t traits, src *T) (T, error) {
	switch {
	case !t.copier:
		return *src, nil
	case t.onValue:
		if isNil(*src) {
			return *src, nil
		}
		return any(*src).(Copier[T]).Copy()
	default:
		return any(src).(Copier[T]).Copy()
	}
}

func moveElem[T any](t traits, src *T) (T, error) {
	switch {
	case !t.mover:
		return *src, nil
	case t.onValue:
		if isNil(*src) {
			return *src, nil
		}
		return any(*src).(Mover[T]).Move()
	default:
		return any(src).(Mover[T]).Move()
	}
}

// destroyElem ends the lifetime of *p and zeroes the slot.
func destroyElem[T any](t traits, p *T) {
	if t.destroyer {
		if !t.onValue {
			any(p).(Destroyer).Destroy()
		} else if !isNil(*p) {
			any(*p).(Destroyer).Destroy()
		}
	}
	var zero T
	*p = zero
}

// destroyRange destroys every element of s in order.
func destroyRange[T any](t traits, s []T) {
	if !t.destroyer {
		clear(s)
		return
	}
	for i := range s {
		destroyElem(t, &s[i])
	}
}

// discard rolls back a new element after a failed growth. Elements built by
// the container are destroyed; caller-owned values are only dropped.
func discard[T any](t traits, p *T, built bool) {
	if built {
		destroyElem(t, p)
		return
	}
	var zero T
	*p = zero
}

// constructAt builds an element in the empty slot: construct when given,
// default construction otherwise. A failed construction leaves the slot zeroed.
func constructAt[T any](t traits, slot *T, construct func(*T) error) error {
	var err error
	if construct != nil {
		err = construct(slot)
	} else {
		err = initElem(t, slot)
	}
	if err != nil {
		var zero T
		*slot = zero
	}

	return err
}

// copyRange copy-constructs src into the empty dst. On failure the elements
// already built in dst are destroyed and src is untouched.
func copyRange[T any](t traits, dst, src []T) error {
	if !t.copier {
		copy(dst, src)
		return nil
	}
	for i := range src {
		x, err := copyElem(t, &src[i])
		if err != nil {
			destroyRange(t, dst[:i])
			return err
		}
		dst[i] = x
	}

	return nil
}

// transfer relocates src into the empty dst according to t.policy.
// On failure every element it built in dst is destroyed; src is untouched
// under Relocate and CopyConstruct, moved-from up to the failing element
// under MoveConstruct.
func transfer[T any](t traits, dst, src []T) error {
	switch t.policy {
	case Relocate:
		copy(dst, src)
		return nil
	case CopyConstruct:
		return copyRange(t, dst, src)
	}
	for i := range src {
		x, err := moveElem(t, &src[i])
		if err != nil {
			destroyRange(t, dst[:i])
			return err
		}
		dst[i] = x
	}

	return nil
}

// retire ends src after a successful transfer out of it. Relocated slots no
// longer own anything, so they are only zeroed.
func retire[T any](t traits, src []T) {
	if t.policy == Relocate {
		clear(src)
		return
	}
	destroyRange(t, src)
}
