package layout

import (
	"github.com/raggedlabs/ragged/errors"
)

// Index64 is an immutable buffer of signed 64-bit offsets. For a list node
// of length n it holds n+1 non-decreasing values; offsets[i] and
// offsets[i+1] delimit child element range i.
type Index64 struct {
	data []int64
}

// NewIndex64 wraps data as an offsets buffer, validating that the values
// are non-decreasing. The slice is retained, not copied; callers must not
// mutate it afterwards.
func NewIndex64(data []int64) (Index64, error) {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return Index64{}, errors.InvalidOffsets(errors.PhaseConstruct, []string{"offsets"}, i, data[i-1], data[i])
		}
	}
	return Index64{data: data}, nil
}

// MustIndex64 is NewIndex64 that panics on malformed input. Intended for
// literals in tests and examples.
func MustIndex64(data []int64) Index64 {
	ix, err := NewIndex64(data)
	if err != nil {
		panic(err)
	}
	return ix
}

// Len returns the number of offsets (parent length + 1 for list nodes).
func (ix Index64) Len() int { return len(ix.data) }

// At returns the offset at position i.
func (ix Index64) At(i int) int64 { return ix.data[i] }

// Data returns the underlying slice. It is shared, read-only.
func (ix Index64) Data() []int64 { return ix.data }

// window returns the subrange [start, stop] of offsets (stop inclusive as
// an offsets position, so a parent window of elements [start, stop) keeps
// stop-start+1 boundary values). The buffer is shared.
func (ix Index64) window(start, stop int) Index64 {
	return Index64{data: ix.data[start : stop+1]}
}
