// Package view defines the two primitive buffer views: non-owning
// descriptors of contiguous memory regions used to stage I/O without
// copying.
//
// A view never allocates and never owns the memory it points at; the
// backing slice stays valid for exactly as long as whoever created it
// keeps it valid. MutableView widens to ConstView (read-write memory is
// always readable); there is no operation in the other direction.
package view

import "fmt"

// ConstView is a read-only descriptor of a contiguous memory region.
type ConstView struct {
	data []byte
}

// Const returns a read-only view over p. The view aliases p; it does
// not copy.
func Const(p []byte) ConstView {
	return ConstView{data: p}
}

// Len returns the length of the region in bytes.
func (v ConstView) Len() int {
	return len(v.data)
}

// Bytes returns the underlying region. Callers must not write through
// the returned slice; the read-only contract is by convention, exactly
// like io.Writer's p argument.
func (v ConstView) Bytes() []byte {
	return v.data
}

func (v ConstView) String() string {
	return fmt.Sprintf("const[%d]", len(v.data))
}

// MutableView is a read-write descriptor of a contiguous memory region.
type MutableView struct {
	data []byte
}

// Mutable returns a read-write view over p. The view aliases p; it does
// not copy.
func Mutable(p []byte) MutableView {
	return MutableView{data: p}
}

// Len returns the length of the region in bytes.
func (v MutableView) Len() int {
	return len(v.data)
}

// Bytes returns the underlying region for reading or writing.
func (v MutableView) Bytes() []byte {
	return v.data
}

// Const widens the view to its read-only form. This is the only
// conversion between the two variants; narrowing a ConstView back to a
// MutableView is deliberately not provided.
func (v MutableView) Const() ConstView {
	return ConstView{data: v.data}
}

func (v MutableView) String() string {
	return fmt.Sprintf("mutable[%d]", len(v.data))
}
