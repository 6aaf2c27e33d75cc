package strop

import (
	"go.uber.org/zap"

	"github.com/raggedlabs/ragged/kernel"
	"github.com/raggedlabs/ragged/layout"
)

// FindSubstring replaces every string leaf with an int64 leaf holding the
// byte index of the first occurrence of pattern in each value, or -1.
func FindSubstring(tree layout.Content, p kernel.Provider, pattern string, opts kernel.FindOptions) (layout.Content, error) {
	return layout.Apply(tree, findAction(p.FindSubstring, pattern, opts))
}

// FindSubstringRegex is FindSubstring with a regular expression pattern.
func FindSubstringRegex(tree layout.Content, p kernel.Provider, pattern string, opts kernel.FindOptions) (layout.Content, error) {
	return layout.Apply(tree, findAction(p.FindSubstringRegex, pattern, opts))
}

// SplitPattern replaces every string leaf with a list of substrings per
// value, splitting on the literal pattern.
func SplitPattern(tree layout.Content, p kernel.Provider, pattern string, opts kernel.SplitOptions) (layout.Content, error) {
	return layout.Apply(tree, splitAction(p.SplitPattern, pattern, opts))
}

// SplitPatternRegex is SplitPattern with a regular expression pattern.
func SplitPatternRegex(tree layout.Content, p kernel.Provider, pattern string, opts kernel.SplitOptions) (layout.Content, error) {
	return layout.Apply(tree, splitAction(p.SplitPatternRegex, pattern, opts))
}

type findKernel func(values []string, pattern string, opts kernel.FindOptions) ([]int64, error)

func findAction(fn findKernel, pattern string, opts kernel.FindOptions) layout.Action {
	return func(node layout.Content, depth int) (layout.Content, error) {
		leaf, ok := node.(*layout.Leaf)
		if !ok || leaf.DType() != layout.DTypeString {
			return nil, nil
		}
		indices, err := fn(leaf.Strings(), pattern, opts)
		if err != nil {
			return nil, err
		}
		logger().Debug("find kernel dispatched",
			zap.Int("values", leaf.Length()),
			zap.Int("depth", depth))
		return layout.NewInt64Leaf(indices), nil
	}
}

type splitKernel func(values []string, pattern string, opts kernel.SplitOptions) ([][]string, error)

func splitAction(fn splitKernel, pattern string, opts kernel.SplitOptions) layout.Action {
	return func(node layout.Content, depth int) (layout.Content, error) {
		leaf, ok := node.(*layout.Leaf)
		if !ok || leaf.DType() != layout.DTypeString {
			return nil, nil
		}
		parts, err := fn(leaf.Strings(), pattern, opts)
		if err != nil {
			return nil, err
		}

		// Expand the list-shaped result into a list node with derived
		// offsets over one flat string leaf.
		offsets := make([]int64, len(parts)+1)
		total := 0
		for i, sub := range parts {
			offsets[i] = int64(total)
			total += len(sub)
		}
		offsets[len(parts)] = int64(total)

		flat := make([]string, 0, total)
		for _, sub := range parts {
			flat = append(flat, sub...)
		}

		index, err := layout.NewIndex64(offsets)
		if err != nil {
			return nil, err
		}
		out, err := layout.NewListOffset(index, layout.NewStringLeaf(flat))
		if err != nil {
			return nil, err
		}
		logger().Debug("split kernel dispatched",
			zap.Int("values", leaf.Length()),
			zap.Int("substrings", total),
			zap.Int("depth", depth))
		return out, nil
	}
}
