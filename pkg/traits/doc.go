// Package traits classifies types against the buffer-sequence contracts
// and derives the view and iterator types implied by them.
//
// A buffer sequence is any type whose elements are views over contiguous
// memory (package view). After decay — stripping any number of pointer
// indirections — a type T is a const buffer sequence when one of:
//
//   - T is view.ConstView or view.MutableView (a single view acts as a
//     one-element sequence);
//   - T has slice or array kind and its element type is view.ConstView
//     or view.MutableView;
//   - T implements ConstSequence or MutableSequence.
//
// T is a mutable buffer sequence when every element it can produce is a
// MutableView: T is view.MutableView, a slice or array of it, or a
// MutableSequence implementer. Mutability is the stronger capability:
// every mutable sequence is also a const sequence, never the reverse.
//
// The predicates IsConstSequence and IsMutableSequence fold the per-type
// check over a list of zero or more types. The empty list is vacuously
// true for both; callers that require "at least one sequence" must check
// list length themselves. For the same reason ViewType of an empty list
// is the MutableView type — the most permissive answer, which callers
// may safely narrow.
//
// All classification here is pure: predicates never fail, they only
// answer false. The single error surface is IteratorType, which reports
// a NotSequenceError for types that have no iteration type at all.
package traits
