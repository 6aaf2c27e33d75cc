// Package strop applies string compute kernels across layout trees.
//
// Each operation walks a tree with the recursive apply engine, invokes the
// injected kernel provider once per string leaf, and splices the result
// back at the same position: find kernels produce an int64 leaf of match
// indices, split kernels produce a list node over a string leaf with
// freshly derived offsets. Leaves of other dtypes pass through unchanged:
// running a string operation over an array with no string data is not an
// error.
package strop
