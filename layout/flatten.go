package layout

import (
	"github.com/raggedlabs/ragged/errors"
)

// Depth returns the number of list levels in the tree: 0 for a leaf,
// 1+Depth(child) for a list. For records it is the shallowest field, since
// an axis must be reachable in every field.
func Depth(c Content) int {
	switch v := c.(type) {
	case *ListOffset:
		return 1 + Depth(v.child)
	case *Record:
		if len(v.fields) == 0 {
			return 0
		}
		min := Depth(v.fields[0])
		for _, f := range v.fields[1:] {
			if d := Depth(f); d < min {
				min = d
			}
		}
		return min
	default:
		return 0
	}
}

// Flatten removes the list level at axis (1 = outermost), concatenating
// its sublists. The result's offsets are recomputed relative to the
// parent's window, so a sliced parent flattens to exactly the retained
// sublists in original order. Empty sublists contribute zero elements.
//
// Flattening a list whose child is a leaf yields the leaf window spanned
// by the offsets. An axis past the tree's nesting depth is a structural
// error, never a silent no-op. Arrays of records cannot be flattened.
func Flatten(c Content, axis int) (Content, error) {
	if axis < 1 {
		return nil, errors.New(errors.PhaseFlatten, errors.KindAxisDepth).
			Value(axis).
			Detail("axis %d invalid: must be at least 1", axis).
			Build()
	}
	if d := Depth(c); axis > d {
		return nil, errors.AxisDepth(axis, d)
	}
	return flatten(c, axis)
}

func flatten(c Content, axis int) (Content, error) {
	switch n := c.(type) {
	case *Leaf:
		return nil, errors.AxisDepth(axis, 0)

	case *Record:
		return nil, errors.Unsupported(errors.PhaseFlatten, "arrays of records cannot be flattened")

	case *ListOffset:
		if axis == 1 {
			return n.flattenTop()
		}
		child, ok := n.child.(*ListOffset)
		if !ok {
			return nil, errors.AxisDepth(axis, Depth(n))
		}
		newChild, err := flatten(child, axis-1)
		if err != nil {
			return nil, err
		}
		if axis == 2 {
			// The level directly below merged away: parent boundaries,
			// which delimited child sublists, are remapped through the
			// child's own offsets into the merged elements.
			co := child.offsets
			base := co.At(0)
			remapped := make([]int64, n.offsets.Len())
			for i := range remapped {
				remapped[i] = co.At(int(n.offsets.At(i))) - base
			}
			return NewListOffset(Index64{data: remapped}, newChild)
		}
		// Deeper merge: child's top-level element count is unchanged.
		return NewListOffset(n.offsets, newChild)

	default:
		return nil, errors.Unsupported(errors.PhaseFlatten, "unknown node kind")
	}
}

// flattenTop removes this node's own list level: the result is the
// concatenation of its sublists, covering child elements
// [offsets[0], offsets[len-1]) rebased to start at zero.
func (l *ListOffset) flattenTop() (Content, error) {
	first := l.offsets.At(0)
	last := l.offsets.At(l.offsets.Len() - 1)

	switch child := l.child.(type) {
	case *Leaf:
		return child.window(int(first), int(last)), nil

	case *ListOffset:
		co := child.offsets
		base := co.At(int(first))
		out := make([]int64, int(last-first)+1)
		for j := range out {
			out[j] = co.At(int(first)+j) - base
		}
		inner, err := Slice(child.child, int(base), int(co.At(int(last))))
		if err != nil {
			return nil, err
		}
		return NewListOffset(Index64{data: out}, inner)

	case *Record:
		// Concatenating sublists of records is a plain window over the
		// record elements.
		return Slice(child, int(first), int(last))

	default:
		return nil, errors.Unsupported(errors.PhaseFlatten, "unknown node kind")
	}
}
