package traits

import (
	"reflect"

	"github.com/funvibe/funbuf/pkg/view"
)

// ConstSequence is implemented by composite types that expose their
// regions as read-only views. Implementing it is the method-shaped way
// to satisfy the const buffer sequence contract; slices and arrays of
// views satisfy it structurally without any method.
type ConstSequence interface {
	ConstViews() []view.ConstView
}

// MutableSequence is implemented by composite types whose every region
// is writable. It is the stronger contract: every implementer also
// classifies as a const sequence.
type MutableSequence interface {
	MutableViews() []view.MutableView
}

var (
	constViewType   = reflect.TypeFor[view.ConstView]()
	mutableViewType = reflect.TypeFor[view.MutableView]()
	constSeqIface   = reflect.TypeFor[ConstSequence]()
	mutableSeqIface = reflect.TypeFor[MutableSequence]()
)

// decay strips pointer indirections so *S and S classify identically,
// the way reference and cv qualification is stripped before a contract
// check.
func decay(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// implements reports whether t or *t satisfies iface. The pointer form
// matters because decay throws the caller's indirection away while the
// contract methods may live on the pointer receiver.
func implements(t, iface reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return t.Implements(iface)
	}
	return t.Implements(iface) || reflect.PointerTo(t).Implements(iface)
}

func isConstSequence(t reflect.Type) bool {
	t = decay(t)
	if t == nil {
		return false
	}
	if t == constViewType || t == mutableViewType {
		return true
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		e := t.Elem()
		if e == constViewType || e == mutableViewType {
			return true
		}
	}
	return implements(t, constSeqIface) || implements(t, mutableSeqIface)
}

func isMutableSequence(t reflect.Type) bool {
	t = decay(t)
	if t == nil {
		return false
	}
	if t == mutableViewType {
		return true
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		if t.Elem() == mutableViewType {
			return true
		}
	}
	return implements(t, mutableSeqIface)
}

// IsConstSequence reports whether every type in types satisfies the
// const buffer sequence contract. The empty list is vacuously true.
func IsConstSequence(types ...reflect.Type) bool {
	for _, t := range types {
		if !isConstSequence(t) {
			return false
		}
	}
	return true
}

// IsMutableSequence reports whether every type in types satisfies the
// mutable buffer sequence contract. The empty list is vacuously true.
func IsMutableSequence(types ...reflect.Type) bool {
	for _, t := range types {
		if !isMutableSequence(t) {
			return false
		}
	}
	return true
}

// IsConstSequenceOf is IsConstSequence for a single type parameter.
func IsConstSequenceOf[T any]() bool {
	return isConstSequence(reflect.TypeFor[T]())
}

// IsMutableSequenceOf is IsMutableSequence for a single type parameter.
func IsMutableSequenceOf[T any]() bool {
	return isMutableSequence(reflect.TypeFor[T]())
}
