// Package kernel defines the capability interface for external string
// compute providers.
//
// The layout engine itself never matches or splits strings; it locates the
// leaf buffers and hands them to a Provider, one call per leaf. Providers
// are resolved once and injected; a missing capability is a construction
// error, not a late lookup failure.
//
// Two providers ship with the library: kernel/native runs in-process on
// the Go string and regexp engines, and kernel/wasmkernel runs a
// caller-supplied WebAssembly module.
package kernel
