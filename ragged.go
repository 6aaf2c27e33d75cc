package ragged

import (
	"github.com/raggedlabs/ragged/layout"
)

// Content is one node of a layout tree. See package layout.
type Content = layout.Content

// Action decides per node whether traversal descends or substitutes. See
// package layout.
type Action = layout.Action

// Apply walks a layout tree with an action and rebuilds it bottom-up.
func Apply(root Content, action Action) (Content, error) {
	return layout.Apply(root, action)
}

// Flatten removes the list level at axis (1 = outermost).
func Flatten(c Content, axis int) (Content, error) {
	return layout.Flatten(c, axis)
}

// Slice returns the window of top-level elements [start, stop); negative
// indices count from the end.
func Slice(c Content, start, stop int) (Content, error) {
	return layout.Slice(c, start, stop)
}
