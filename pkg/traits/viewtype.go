package traits

import "reflect"

// ViewType resolves the single canonical view type representing one
// element of the given sequence types: the view.MutableView type when
// IsMutableSequence holds for the whole list, the view.ConstView type
// otherwise.
//
// The empty list resolves to view.MutableView because the mutable
// predicate is vacuously true on it. This is deliberate: a caller
// combining zero sequences gets the most permissive view type and may
// narrow it, while the reverse default would silently forbid writes.
func ViewType(types ...reflect.Type) reflect.Type {
	if IsMutableSequence(types...) {
		return mutableViewType
	}
	return constViewType
}
