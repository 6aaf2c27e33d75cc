// Package layout implements nested, variable-length array layouts.
//
// A layout tree describes one array value structurally: leaves hold flat
// typed buffers, list nodes pair an int64 offsets buffer with a single
// child, and record nodes hold named fields. The set of node kinds is
// closed; the traversal engine handles it exhaustively.
//
// # Layout Trees
//
// Trees are immutable once constructed. Constructors validate structure
// (offset monotonicity, bounds against the child, field lengths) and fail
// with a structural error rather than repairing anything. Transforms never
// mutate; they return new trees, sharing read-only buffers with the source
// where possible.
//
// # Recursive Apply
//
// Apply walks a tree top-down with a caller-supplied Action. The action is
// invoked at every node with the node and its depth; it may return a
// replacement node (stopping descent on that branch), return nothing to
// keep descending, or return an error to abort the whole traversal. List
// nodes are rebuilt bottom-up with their original offsets, so only actions
// that replace nodes can change cardinality, and such actions must supply
// their own offsets.
//
// # Flatten
//
// Flatten removes one list level at a given axis, recomputing offsets
// relative to the parent's window so that sliced parents flatten to exactly
// the retained sublists.
package layout
