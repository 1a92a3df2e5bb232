package traits

import (
	"reflect"

	"github.com/funvibe/funbuf/pkg/view"
)

// primitiveIterators pins the iterator types of the two primitive views.
// A bare view is not a slice and carries no Views method, so the
// deduction path cannot see an element type in it; this table is the one
// place that knows a single view iterates as a one-element sequence.
// It must stay consistent with the deduction rule (pointer to element):
// TestPrimitiveTableMatchesDeduction pins that.
var primitiveIterators = map[reflect.Type]reflect.Type{
	constViewType:   reflect.TypeFor[*view.ConstView](),
	mutableViewType: reflect.TypeFor[*view.MutableView](),
}
