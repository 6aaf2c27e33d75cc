package layout

import (
	"github.com/raggedlabs/ragged/errors"
)

// Action decides per node whether traversal descends or substitutes.
// Returning (nil, nil) continues descending; returning a non-nil Content
// replaces the node and stops descent on that branch; returning an error
// aborts the whole traversal with no partial tree.
//
// An action that changes a node's cardinality must also produce the
// offsets describing it: the generic rebuild of surrounding list nodes
// reuses their original offsets verbatim.
type Action func(node Content, depth int) (Content, error)

// Apply walks root top-down, invoking action at every node, and rebuilds
// the tree bottom-up. Topology is preserved except where the action
// substitutes a node. Leaves the action passes over are returned
// unchanged. The traversal is purely functional; root is never mutated.
func Apply(root Content, action Action) (Content, error) {
	return apply(root, action, 0)
}

func apply(node Content, action Action, depth int) (Content, error) {
	out, err := action(node, depth)
	if err != nil {
		return nil, err
	}
	if out != nil {
		return out, nil
	}

	switch n := node.(type) {
	case *Leaf:
		// Pass-through: absence of a match is not an error.
		return n, nil

	case *ListOffset:
		child, err := apply(n.child, action, depth+1)
		if err != nil {
			return nil, err
		}
		if child == n.child {
			return n, nil
		}
		// Original offsets, new child. Construction re-validates so an
		// action that broke cardinality without supplying offsets is
		// caught here instead of surfacing as corrupt data later.
		rebuilt, err := NewListOffset(n.offsets, child)
		if err != nil {
			return nil, errors.New(errors.PhaseTraverse, errors.KindLengthMismatch).
				Path("list").
				Cause(err).
				Detail("action changed child cardinality without replacing the list node").
				Build()
		}
		return rebuilt, nil

	case *Record:
		var fields []Content
		for i, f := range n.fields {
			out, err := apply(f, action, depth+1)
			if err != nil {
				return nil, err
			}
			if fields == nil {
				if out == f {
					continue
				}
				fields = make([]Content, i, len(n.fields))
				copy(fields, n.fields[:i])
			}
			fields = append(fields, out)
		}
		if fields == nil {
			return n, nil
		}
		return NewRecord(n.names, fields, n.length)

	default:
		return nil, errors.Unsupported(errors.PhaseTraverse, "unknown node kind")
	}
}
