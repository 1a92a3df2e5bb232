package traits

import (
	"reflect"
	"testing"

	"github.com/funvibe/funbuf/pkg/view"
)

// regionList exposes writable regions through the method contract.
type regionList struct {
	parts []view.MutableView
}

func (r regionList) MutableViews() []view.MutableView { return r.parts }

// snapshot exposes read-only regions only.
type snapshot struct {
	parts []view.ConstView
}

func (s snapshot) ConstViews() []view.ConstView { return s.parts }

// pagedRegions carries its contract on the pointer receiver.
type pagedRegions struct {
	parts []view.MutableView
}

func (p *pagedRegions) MutableViews() []view.MutableView { return p.parts }

// plainStruct has no relation to views at all.
type plainStruct struct {
	n int
}

func TestIsConstSequence(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"ConstView", reflect.TypeFor[view.ConstView](), true},
		{"MutableView", reflect.TypeFor[view.MutableView](), true},
		{"slice of ConstView", reflect.TypeFor[[]view.ConstView](), true},
		{"slice of MutableView", reflect.TypeFor[[]view.MutableView](), true},
		{"array of ConstView", reflect.TypeFor[[4]view.ConstView](), true},
		{"pointer decay", reflect.TypeFor[*[]view.MutableView](), true},
		{"double pointer decay", reflect.TypeFor[**view.ConstView](), true},
		{"const method contract", reflect.TypeFor[snapshot](), true},
		{"mutable method contract", reflect.TypeFor[regionList](), true},
		{"pointer receiver contract", reflect.TypeFor[pagedRegions](), true},
		{"sequence interface", reflect.TypeFor[MutableSequence](), true},
		{"plain struct", reflect.TypeFor[plainStruct](), false},
		{"int", reflect.TypeFor[int](), false},
		{"bare byte slice", reflect.TypeFor[[]byte](), false},
		{"slice of slices", reflect.TypeFor[[][]view.ConstView](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConstSequence(tt.typ); got != tt.want {
				t.Errorf("IsConstSequence(%s) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestIsMutableSequence(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"MutableView", reflect.TypeFor[view.MutableView](), true},
		{"ConstView", reflect.TypeFor[view.ConstView](), false},
		{"slice of MutableView", reflect.TypeFor[[]view.MutableView](), true},
		{"slice of ConstView", reflect.TypeFor[[]view.ConstView](), false},
		{"array of MutableView", reflect.TypeFor[[2]view.MutableView](), true},
		{"pointer decay", reflect.TypeFor[*view.MutableView](), true},
		{"mutable method contract", reflect.TypeFor[regionList](), true},
		{"pointer receiver contract", reflect.TypeFor[pagedRegions](), true},
		{"const method contract", reflect.TypeFor[snapshot](), false},
		{"sequence interface", reflect.TypeFor[MutableSequence](), true},
		{"const sequence interface", reflect.TypeFor[ConstSequence](), false},
		{"plain struct", reflect.TypeFor[plainStruct](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMutableSequence(tt.typ); got != tt.want {
				t.Errorf("IsMutableSequence(%s) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestVariadicFold(t *testing.T) {
	mutable := reflect.TypeFor[[]view.MutableView]()
	constOnly := reflect.TypeFor[[]view.ConstView]()
	neither := reflect.TypeFor[plainStruct]()

	// All-mutable list satisfies both contracts.
	if !IsMutableSequence(mutable, mutable, reflect.TypeFor[regionList]()) {
		t.Errorf("all-mutable list should satisfy the mutable contract")
	}
	if !IsConstSequence(mutable, mutable, reflect.TypeFor[regionList]()) {
		t.Errorf("all-mutable list should satisfy the const contract too")
	}

	// One const-only member demotes the list to const.
	if IsMutableSequence(mutable, constOnly) {
		t.Errorf("list with a const-only member should not satisfy the mutable contract")
	}
	if !IsConstSequence(mutable, constOnly) {
		t.Errorf("list with a const-only member should still satisfy the const contract")
	}

	// One non-sequence member fails both.
	if IsConstSequence(mutable, neither) || IsMutableSequence(mutable, neither) {
		t.Errorf("list with a non-sequence member should satisfy neither contract")
	}
}

func TestEmptyListIsVacuouslyTrue(t *testing.T) {
	if !IsConstSequence() {
		t.Errorf("IsConstSequence() on the empty list should be true")
	}
	if !IsMutableSequence() {
		t.Errorf("IsMutableSequence() on the empty list should be true")
	}
}

// TestMonotonicity pins the widening invariant: any type classified as
// mutable must classify as const as well.
func TestMonotonicity(t *testing.T) {
	candidates := []reflect.Type{
		reflect.TypeFor[view.ConstView](),
		reflect.TypeFor[view.MutableView](),
		reflect.TypeFor[[]view.ConstView](),
		reflect.TypeFor[[]view.MutableView](),
		reflect.TypeFor[[8]view.MutableView](),
		reflect.TypeFor[*view.MutableView](),
		reflect.TypeFor[regionList](),
		reflect.TypeFor[snapshot](),
		reflect.TypeFor[pagedRegions](),
		reflect.TypeFor[ConstSequence](),
		reflect.TypeFor[MutableSequence](),
		reflect.TypeFor[plainStruct](),
		reflect.TypeFor[[]byte](),
		reflect.TypeFor[int](),
	}

	for _, typ := range candidates {
		if IsMutableSequence(typ) && !IsConstSequence(typ) {
			t.Errorf("%s classified mutable but not const", typ)
		}
	}
}

func TestGenericPredicates(t *testing.T) {
	if !IsConstSequenceOf[view.ConstView]() {
		t.Errorf("IsConstSequenceOf[ConstView] should be true")
	}
	if IsMutableSequenceOf[view.ConstView]() {
		t.Errorf("IsMutableSequenceOf[ConstView] should be false")
	}
	if !IsMutableSequenceOf[[]view.MutableView]() {
		t.Errorf("IsMutableSequenceOf[[]MutableView] should be true")
	}
	if IsConstSequenceOf[plainStruct]() {
		t.Errorf("IsConstSequenceOf[plainStruct] should be false")
	}
}
