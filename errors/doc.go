// Package errors provides structured error types for the ragged library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries a node path into the layout tree, the
// offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConstruct, errors.KindInvalidOffsets).
//		Path("list", "offsets").
//		Value(cur).
//		Detail("offset decreases at index %d", i).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidOffsets(errors.PhaseConstruct, path, i, prev, cur)
//	err := errors.OutOfBounds(errors.PhaseTraverse, path, 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
// The structural family (malformed offsets, bounds violations, length
// mismatches, bad flatten axis) is recognizable with IsStructural; action
// incompatibility with a leaf kind is recognizable with IsUnsupportedLeaf.
package errors
