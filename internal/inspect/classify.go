// Package inspect classifies Go types against the buffer-sequence
// contracts before the inspected program ever runs. It is the static
// mirror of pkg/traits: the same rules, evaluated over go/types instead
// of reflect, so a build step or CI check can reject non-conforming
// types the way a compiler diagnostic would.
package inspect

import (
	"fmt"
	"go/types"
)

// ViewPackage is the import path of the primitive view package. The two
// views are recognized nominally, by package path and object name; the
// rest of the contract is structural.
const ViewPackage = "github.com/funvibe/funbuf/pkg/view"

const (
	constViewName   = "ConstView"
	mutableViewName = "MutableView"
)

// NotSequenceError indicates a type has no iteration type: it is
// neither a buffer sequence nor one of the two primitive views.
type NotSequenceError struct {
	Type types.Type
}

func (e *NotSequenceError) Error() string {
	if e.Type == nil {
		return "not a buffer sequence: <nil>"
	}
	return fmt.Sprintf("not a buffer sequence: %s", e.Type)
}

// decay strips aliases and pointer indirections before a contract check.
func decay(t types.Type) types.Type {
	t = types.Unalias(t)
	for {
		p, ok := t.(*types.Pointer)
		if !ok {
			return t
		}
		t = types.Unalias(p.Elem())
	}
}

func isView(t types.Type, name string) bool {
	n, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := n.Obj()
	if obj == nil || obj.Pkg() == nil {
		return false
	}
	return obj.Pkg().Path() == ViewPackage && obj.Name() == name
}

// IsPrimitiveView reports whether t (after decay) is one of the two
// primitive view types rather than a composite sequence.
func IsPrimitiveView(t types.Type) bool {
	if t == nil {
		return false
	}
	base := decay(t)
	return isView(base, constViewName) || isView(base, mutableViewName)
}

// viewsMethod looks up a niladic method returning a slice of the named
// view, which is how composite types opt into the sequence contract.
// It returns the slice's element type for iterator deduction.
func viewsMethod(t types.Type, name, elem string) (types.Type, bool) {
	obj, _, _ := types.LookupFieldOrMethod(t, true, nil, name)
	fn, ok := obj.(*types.Func)
	if !ok {
		return nil, false
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return nil, false
	}
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return nil, false
	}
	sl, ok := types.Unalias(sig.Results().At(0).Type()).(*types.Slice)
	if !ok {
		return nil, false
	}
	e := types.Unalias(sl.Elem())
	if !isView(e, elem) {
		return nil, false
	}
	return e, true
}

func elemCapability(e types.Type) Capability {
	e = types.Unalias(e)
	if isView(e, mutableViewName) {
		return CapabilityMutable
	}
	if isView(e, constViewName) {
		return CapabilityConst
	}
	return CapabilityNone
}

// Classify resolves the capability of a single type. The rules match
// pkg/traits exactly: the two views classify as themselves, slices and
// arrays classify by element, and composite types classify by their
// ConstViews/MutableViews method. Anything else is CapabilityNone.
func Classify(t types.Type) Capability {
	if t == nil {
		return CapabilityNone
	}
	base := decay(t)

	if isView(base, mutableViewName) {
		return CapabilityMutable
	}
	if isView(base, constViewName) {
		return CapabilityConst
	}

	switch u := base.Underlying().(type) {
	case *types.Slice:
		return elemCapability(u.Elem())
	case *types.Array:
		return elemCapability(u.Elem())
	}

	if _, ok := viewsMethod(base, "MutableViews", mutableViewName); ok {
		return CapabilityMutable
	}
	if _, ok := viewsMethod(base, "ConstViews", constViewName); ok {
		return CapabilityConst
	}
	return CapabilityNone
}

// ClassifyAll folds Classify over a list of types: the list classifies
// as mutable only when every member does, as const when every member is
// at least const. The empty list is vacuously mutable, matching the
// reflect level's ViewType default.
func ClassifyAll(ts ...types.Type) Capability {
	all := CapabilityMutable
	for _, t := range ts {
		c := Classify(t)
		if c < all {
			all = c
		}
		if all == CapabilityNone {
			break
		}
	}
	return all
}

// IteratorType resolves the type an iteration over the sequence type t
// produces, mirroring traits.IteratorType. The primitive views resolve
// through the pinned one-element rule; everything else is deduced from
// the type's own shape.
func IteratorType(t types.Type) (types.Type, error) {
	if t == nil {
		return nil, &NotSequenceError{}
	}
	base := decay(t)

	// Primitive special case: a bare view iterates as a one-element
	// sequence of itself.
	if isView(base, constViewName) || isView(base, mutableViewName) {
		return types.NewPointer(base), nil
	}

	switch u := base.Underlying().(type) {
	case *types.Slice:
		if elemCapability(u.Elem()) != CapabilityNone {
			return types.NewPointer(types.Unalias(u.Elem())), nil
		}
	case *types.Array:
		if elemCapability(u.Elem()) != CapabilityNone {
			return types.NewPointer(types.Unalias(u.Elem())), nil
		}
	}

	if e, ok := viewsMethod(base, "MutableViews", mutableViewName); ok {
		return types.NewPointer(e), nil
	}
	if e, ok := viewsMethod(base, "ConstViews", constViewName); ok {
		return types.NewPointer(e), nil
	}

	return nil, &NotSequenceError{Type: t}
}
