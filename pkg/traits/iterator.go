package traits

import "reflect"

// IteratorType resolves the type an iteration over the sequence type t
// produces: a pointer to the sequence's element type.
//
//   - view.ConstView and view.MutableView resolve through the primitive
//     table (see iterator_table.go): a single view is a one-element
//     sequence and its iterator is a pointer to the view.
//   - Slices and arrays of views resolve to a pointer to the element.
//   - ConstSequence / MutableSequence implementers resolve to a pointer
//     to the element type read off the Views method's result.
//
// Any other type has no iteration type; the returned error is a
// *NotSequenceError naming it.
func IteratorType(t reflect.Type) (reflect.Type, error) {
	base := decay(t)
	if base == nil {
		return nil, NewNotSequenceError(t)
	}
	if it, ok := primitiveIterators[base]; ok {
		return it, nil
	}
	return deduceIteratorType(t, base)
}

// IteratorTypeFor is IteratorType for a type parameter.
func IteratorTypeFor[T any]() (reflect.Type, error) {
	return IteratorType(reflect.TypeFor[T]())
}

// viewsMethodNames is ordered strongest-contract-first so a type
// implementing both resolves through its mutable elements.
var viewsMethodNames = [...]string{"MutableViews", "ConstViews"}

// deduceIteratorType is the primary deduction path: it reads the element
// type out of the sequence's own shape (slice/array kind or the Views
// method signature) instead of consulting any table.
func deduceIteratorType(orig, base reflect.Type) (reflect.Type, error) {
	switch base.Kind() {
	case reflect.Slice, reflect.Array:
		e := base.Elem()
		if e == constViewType || e == mutableViewType {
			return reflect.PointerTo(e), nil
		}
	}

	receivers := []reflect.Type{base}
	if base.Kind() != reflect.Interface {
		receivers = append(receivers, reflect.PointerTo(base))
	}
	for _, name := range viewsMethodNames {
		for _, rt := range receivers {
			m, ok := rt.MethodByName(name)
			if !ok {
				continue
			}
			if !isViewsSignature(rt, m.Type) {
				continue
			}
			return reflect.PointerTo(m.Type.Out(0).Elem()), nil
		}
	}

	return nil, NewNotSequenceError(orig)
}

// isViewsSignature reports whether sig is a niladic method returning a
// slice of views. Methods of concrete receivers carry the receiver as
// the first input; interface methods do not.
func isViewsSignature(recv, sig reflect.Type) bool {
	wantIn := 1
	if recv.Kind() == reflect.Interface {
		wantIn = 0
	}
	if sig.NumIn() != wantIn || sig.NumOut() != 1 {
		return false
	}
	out := sig.Out(0)
	if out.Kind() != reflect.Slice {
		return false
	}
	e := out.Elem()
	return e == constViewType || e == mutableViewType
}
