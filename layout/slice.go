package layout

import (
	"github.com/raggedlabs/ragged/errors"
)

// Slice returns the window of top-level elements [start, stop). Negative
// indices count from the end, so Slice(c, 2, -1) drops the first two and
// the last element. Buffers are shared with the source; list nodes keep
// their child and narrow the offsets window, so the result's offsets need
// not start at zero.
func Slice(c Content, start, stop int) (Content, error) {
	n := c.Length()
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 || start > n {
		return nil, errors.OutOfBounds(errors.PhaseSlice, nil, start, n)
	}
	if stop < start || stop > n {
		return nil, errors.OutOfBounds(errors.PhaseSlice, nil, stop, n)
	}

	switch v := c.(type) {
	case *Leaf:
		return v.window(start, stop), nil

	case *ListOffset:
		// Child untouched; only the boundary window narrows.
		return &ListOffset{offsets: v.offsets.window(start, stop), child: v.child}, nil

	case *Record:
		fields := make([]Content, len(v.fields))
		for i, f := range v.fields {
			out, err := Slice(f, start, stop)
			if err != nil {
				return nil, err
			}
			fields[i] = out
		}
		return &Record{names: v.names, fields: fields, length: stop - start}, nil

	default:
		return nil, errors.Unsupported(errors.PhaseSlice, "unknown node kind")
	}
}
