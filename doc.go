// Package ragged provides nested, variable-length array layouts with a
// recursive apply engine and string compute dispatch.
//
// A ragged array is described by a layout tree: leaves hold flat typed
// buffers, list nodes pair int64 offsets with a single child, records hold
// named fields. Trees are immutable; every transform produces a new tree.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	ragged/              Root package with convenience re-exports
//	├── layout/          Content nodes, offsets, recursive apply, slice, flatten
//	├── builder/         Incremental layout builders and JSON ingestion
//	├── strop/           String operations dispatched over layout trees
//	├── kernel/          String-kernel capability interface
//	│   ├── native/      In-process provider (Go strings/regexp)
//	│   └── wasmkernel/  Provider running a guest WebAssembly module
//	└── errors/          Structured error types
//
// # Quick Start
//
// Build a nested array and flatten it:
//
//	tree, _ := builder.FromJSON([]byte(`[[1.0, 2.0], [], [3.0]]`))
//	flat, _ := layout.Flatten(tree, 1)
//	fmt.Println(layout.Values(flat)) // [1 2 3]
//
// Run a string kernel across every string leaf:
//
//	tree, _ := builder.FromJSON([]byte(`[["one","two"],["three"]]`))
//	out, _ := strop.FindSubstring(tree, native.New(), "e", kernel.FindOptions{})
package ragged
