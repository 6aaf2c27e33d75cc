// Package wasmkernel implements the string-kernel capability with a
// caller-supplied WebAssembly module executed by wazero.
//
// The guest module exports flat core-wasm functions; every required
// capability is resolved once at construction, so a kernel missing an
// export fails fast with a configuration error instead of a late runtime
// lookup failure.
//
// # Guest ABI
//
// Required exports:
//
//	memory                                                        linear memory
//	kernel_alloc(size: i32) -> i32                                host scratch allocation
//	find_substring(vals: i32, pat: i32, patLen: i32, flags: i32) -> i32
//	find_substring_regex(vals: i32, pat: i32, patLen: i32, flags: i32) -> i32
//	split_pattern(vals: i32, pat: i32, patLen: i32, maxSplits: i32, flags: i32) -> i32
//	split_pattern_regex(vals: i32, pat: i32, patLen: i32, maxSplits: i32, flags: i32) -> i32
//
// The vals argument points to a host-written block:
//
//	count: u32
//	offsets: (count+1) x u32   byte boundaries of the values
//	bytes: concatenated values
//
// Find kernels return a pointer to count x i64 little-endian indices.
// Split kernels return a pointer to:
//
//	total: u32                      number of substrings over all values
//	lists: (count+1) x u32          substring boundaries per value
//	strs: (total+1) x u32           byte boundaries of the substrings
//	bytes: concatenated substrings
//
// A zero return pointer signals a kernel failure; if the optional
// kernel_error export is present it is consulted for a message
// (a pointer to u32 length + bytes).
package wasmkernel

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/raggedlabs/ragged/errors"
	"github.com/raggedlabs/ragged/kernel"
)

const (
	exportMemory            = "memory"
	exportAlloc             = "kernel_alloc"
	exportFindSubstring     = "find_substring"
	exportFindRegex         = "find_substring_regex"
	exportSplitPattern      = "split_pattern"
	exportSplitRegex        = "split_pattern_regex"
	exportKernelError       = "kernel_error"
	flagIgnoreCase    int32 = 1
	flagReverse       int32 = 1
)

// Config holds configuration for provider creation.
type Config struct {
	// MemoryLimitPages caps the guest memory in 64KB pages. 0 means the
	// wazero default.
	MemoryLimitPages uint32
}

// Provider implements kernel.Provider on a guest wasm module. Calls are
// serialized; the guest instance is not reentrant.
type Provider struct {
	runtime wazero.Runtime
	module  api.Module
	memory  api.Memory

	alloc      api.Function
	findSub    api.Function
	findRegex  api.Function
	splitPat   api.Function
	splitRegex api.Function
	lastError  api.Function // optional, may be nil

	mu sync.Mutex
}

// New instantiates the guest kernel module and resolves its exports.
func New(ctx context.Context, wasmBytes []byte) (*Provider, error) {
	return NewWithConfig(ctx, wasmBytes, nil)
}

// NewWithConfig instantiates the guest kernel with custom configuration.
func NewWithConfig(ctx context.Context, wasmBytes []byte, cfg *Config) (*Provider, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	module, err := runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, errors.New(errors.PhaseKernel, errors.KindInstantiation).
			Cause(err).
			Detail("instantiate kernel module").
			Build()
	}

	p := &Provider{runtime: runtime, module: module}

	p.memory = module.Memory()
	if p.memory == nil {
		_ = runtime.Close(ctx)
		return nil, errors.MissingExport(exportMemory)
	}
	required := []struct {
		name string
		dst  *api.Function
	}{
		{exportAlloc, &p.alloc},
		{exportFindSubstring, &p.findSub},
		{exportFindRegex, &p.findRegex},
		{exportSplitPattern, &p.splitPat},
		{exportSplitRegex, &p.splitRegex},
	}
	for _, r := range required {
		fn := module.ExportedFunction(r.name)
		if fn == nil {
			_ = runtime.Close(ctx)
			return nil, errors.MissingExport(r.name)
		}
		*r.dst = fn
	}
	p.lastError = module.ExportedFunction(exportKernelError)

	kernel.Logger().Debug("wasm kernel ready",
		zap.String("module", module.Name()),
		zap.Bool("has_error_export", p.lastError != nil))

	return p, nil
}

// Close releases the guest runtime.
func (p *Provider) Close(ctx context.Context) error {
	return p.runtime.Close(ctx)
}

// FindSubstring implements kernel.Provider.
func (p *Provider) FindSubstring(values []string, pattern string, opts kernel.FindOptions) ([]int64, error) {
	return p.find(p.findSub, values, pattern, opts)
}

// FindSubstringRegex implements kernel.Provider.
func (p *Provider) FindSubstringRegex(values []string, pattern string, opts kernel.FindOptions) ([]int64, error) {
	return p.find(p.findRegex, values, pattern, opts)
}

// SplitPattern implements kernel.Provider.
func (p *Provider) SplitPattern(values []string, pattern string, opts kernel.SplitOptions) ([][]string, error) {
	return p.split(p.splitPat, values, pattern, opts)
}

// SplitPatternRegex implements kernel.Provider.
func (p *Provider) SplitPatternRegex(values []string, pattern string, opts kernel.SplitOptions) ([][]string, error) {
	return p.split(p.splitRegex, values, pattern, opts)
}

func (p *Provider) find(fn api.Function, values []string, pattern string, opts kernel.FindOptions) ([]int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctx := context.Background()
	valsPtr, err := p.lowerValues(ctx, values)
	if err != nil {
		return nil, err
	}
	patPtr, err := p.lowerBytes(ctx, []byte(pattern))
	if err != nil {
		return nil, err
	}

	var flags int32
	if opts.IgnoreCase {
		flags |= flagIgnoreCase
	}
	results, err := fn.Call(ctx,
		uint64(valsPtr), uint64(patPtr), uint64(len(pattern)), uint64(uint32(flags)))
	if err != nil {
		return nil, errors.New(errors.PhaseKernel, errors.KindInvalidData).
			Cause(err).
			Detail("kernel trap").
			Build()
	}
	out := uint32(results[0])
	if out == 0 {
		return nil, p.kernelError(ctx, pattern)
	}

	indices := make([]int64, len(values))
	for i := range indices {
		v, ok := p.memory.ReadUint64Le(out + uint32(i)*8)
		if !ok {
			return nil, p.corrupt("find result")
		}
		indices[i] = int64(v)
	}
	return indices, nil
}

func (p *Provider) split(fn api.Function, values []string, pattern string, opts kernel.SplitOptions) ([][]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctx := context.Background()
	valsPtr, err := p.lowerValues(ctx, values)
	if err != nil {
		return nil, err
	}
	patPtr, err := p.lowerBytes(ctx, []byte(pattern))
	if err != nil {
		return nil, err
	}

	var flags int32
	if opts.Reverse {
		flags |= flagReverse
	}
	maxSplits := int32(-1)
	if opts.MaxSplits >= 0 {
		maxSplits = int32(opts.MaxSplits)
	}
	results, err := fn.Call(ctx,
		uint64(valsPtr), uint64(patPtr), uint64(len(pattern)),
		uint64(uint32(maxSplits)), uint64(uint32(flags)))
	if err != nil {
		return nil, errors.New(errors.PhaseKernel, errors.KindInvalidData).
			Cause(err).
			Detail("kernel trap").
			Build()
	}
	out := uint32(results[0])
	if out == 0 {
		return nil, p.kernelError(ctx, pattern)
	}
	return p.liftSplit(out, len(values))
}

// lowerValues writes the values block (count, offsets, bytes) into guest
// memory.
func (p *Provider) lowerValues(ctx context.Context, values []string) (uint32, error) {
	total := 0
	for _, v := range values {
		total += len(v)
	}
	size := 4 + 4*(len(values)+1) + total

	buf := make([]byte, size)
	binary.LittleEndian.PutUint32(buf, uint32(len(values)))
	pos := 4 + 4*(len(values)+1)
	off := 0
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[4+4*i:], uint32(off))
		copy(buf[pos+off:], v)
		off += len(v)
	}
	binary.LittleEndian.PutUint32(buf[4+4*len(values):], uint32(off))

	return p.write(ctx, buf)
}

func (p *Provider) lowerBytes(ctx context.Context, b []byte) (uint32, error) {
	if len(b) == 0 {
		// The guest still needs a valid pointer for a zero-length read.
		return p.write(ctx, []byte{0})
	}
	return p.write(ctx, b)
}

func (p *Provider) write(ctx context.Context, buf []byte) (uint32, error) {
	results, err := p.alloc.Call(ctx, uint64(len(buf)))
	if err != nil {
		return 0, errors.New(errors.PhaseKernel, errors.KindInvalidData).
			Cause(err).
			Detail("kernel_alloc trap").
			Build()
	}
	ptr := uint32(results[0])
	if ptr == 0 || !p.memory.Write(ptr, buf) {
		return 0, errors.New(errors.PhaseKernel, errors.KindInvalidData).
			Detail("kernel_alloc returned unusable pointer %d for %d bytes", ptr, len(buf)).
			Build()
	}
	return ptr, nil
}

// liftSplit reads the split result block back into per-value substring
// lists.
func (p *Provider) liftSplit(ptr uint32, count int) ([][]string, error) {
	total, ok := p.memory.ReadUint32Le(ptr)
	if !ok {
		return nil, p.corrupt("split total")
	}
	listBase := ptr + 4
	strBase := listBase + 4*uint32(count+1)
	byteBase := strBase + 4*uint32(total+1)

	listOffs := make([]uint32, count+1)
	for i := range listOffs {
		v, ok := p.memory.ReadUint32Le(listBase + 4*uint32(i))
		if !ok {
			return nil, p.corrupt("split list offsets")
		}
		listOffs[i] = v
	}
	strOffs := make([]uint32, total+1)
	for i := range strOffs {
		v, ok := p.memory.ReadUint32Le(strBase + 4*uint32(i))
		if !ok {
			return nil, p.corrupt("split string offsets")
		}
		strOffs[i] = v
	}
	raw, ok := p.memory.Read(byteBase, strOffs[total])
	if !ok {
		return nil, p.corrupt("split bytes")
	}

	out := make([][]string, count)
	for i := 0; i < count; i++ {
		lo, hi := listOffs[i], listOffs[i+1]
		if hi < lo || hi > total {
			return nil, p.corrupt("split list boundaries")
		}
		parts := make([]string, 0, hi-lo)
		for j := lo; j < hi; j++ {
			a, b := strOffs[j], strOffs[j+1]
			if b < a || b > strOffs[total] {
				return nil, p.corrupt("split string boundaries")
			}
			parts = append(parts, string(raw[a:b]))
		}
		out[i] = parts
	}
	return out, nil
}

// kernelError builds the error for a zero result pointer, consulting the
// guest's kernel_error export when it exists.
func (p *Provider) kernelError(ctx context.Context, pattern string) error {
	detail := "kernel rejected the call"
	if p.lastError != nil {
		if results, err := p.lastError.Call(ctx); err == nil {
			if ptr := uint32(results[0]); ptr != 0 {
				if n, ok := p.memory.ReadUint32Le(ptr); ok {
					if msg, ok := p.memory.Read(ptr+4, n); ok {
						detail = string(msg)
					}
				}
			}
		}
	}
	return errors.InvalidPattern(pattern, errors.New(errors.PhaseKernel, errors.KindInvalidData).
		Detail("%s", detail).
		Build())
}

func (p *Provider) corrupt(what string) error {
	return errors.New(errors.PhaseKernel, errors.KindInvalidData).
		Detail("corrupt kernel result: %s", what).
		Build()
}
