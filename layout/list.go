package layout

import (
	"github.com/raggedlabs/ragged/errors"
)

// ListOffset is a variable-length list node: an offsets buffer plus one
// child holding the concatenated sublist contents. The node exclusively
// owns its child; offsets need not start at zero (a sliced list keeps its
// child and narrows the offsets window).
type ListOffset struct {
	offsets Index64
	child   Content
}

// NewListOffset creates a list node after validating the offsets against
// the child: the buffer must be non-empty (length n+1 for n elements) and
// every offset must satisfy 0 <= offset <= child.Length(). Monotonicity is
// guaranteed by Index64 construction but is re-checked when the index was
// built as a zero value.
func NewListOffset(offsets Index64, child Content) (*ListOffset, error) {
	if offsets.Len() == 0 {
		return nil, errors.LengthMismatch(errors.PhaseConstruct, []string{"list"}, "offsets", 0, 1)
	}
	if child == nil {
		return nil, errors.New(errors.PhaseConstruct, errors.KindInvalidData).
			Path("list").
			Detail("nil child").
			Build()
	}
	childLen := int64(child.Length())
	for i := 0; i < offsets.Len(); i++ {
		v := offsets.At(i)
		if v < 0 || v > childLen {
			return nil, errors.New(errors.PhaseConstruct, errors.KindOutOfBounds).
				Path("list", "offsets").
				Value(v).
				Detail("offset %d at index %d outside child length %d", v, i, childLen).
				Build()
		}
		if i > 0 && v < offsets.At(i-1) {
			return nil, errors.InvalidOffsets(errors.PhaseConstruct, []string{"list", "offsets"}, i, offsets.At(i-1), v)
		}
	}
	return &ListOffset{offsets: offsets, child: child}, nil
}

func (l *ListOffset) Length() int { return l.offsets.Len() - 1 }

func (l *ListOffset) Kind() Kind { return KindList }

// Offsets returns the offsets buffer.
func (l *ListOffset) Offsets() Index64 { return l.offsets }

// Child returns the child node.
func (l *ListOffset) Child() Content { return l.child }
