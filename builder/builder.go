// Package builder provides incremental construction of layout trees.
//
// Builders accumulate leaf values and list boundaries append-only, then
// produce an immutable, validated layout via Snapshot. A list builder
// wraps the builder of its content:
//
//	b := builder.NewListOffset(builder.NewFloat64())
//	b.BeginList()
//	b.Content().(*builder.Float64Builder).Append(1.1)
//	b.EndList()
//	tree, err := b.Snapshot()
//
// Snapshots copy the accumulated buffers, so a builder can keep growing
// after a snapshot without aliasing the produced tree.
package builder

import (
	"slices"

	"github.com/raggedlabs/ragged/errors"
	"github.com/raggedlabs/ragged/layout"
)

// Builder accumulates one node of a layout under construction.
type Builder interface {
	// Len returns the number of elements accumulated so far.
	Len() int
	// Snapshot produces an immutable layout from the current state.
	Snapshot() (layout.Content, error)
}

// Float64Builder accumulates a float64 leaf.
type Float64Builder struct {
	data []float64
}

// NewFloat64 creates an empty float64 leaf builder.
func NewFloat64() *Float64Builder { return &Float64Builder{} }

// Append adds one value.
func (b *Float64Builder) Append(v float64) { b.data = append(b.data, v) }

func (b *Float64Builder) Len() int { return len(b.data) }

func (b *Float64Builder) Snapshot() (layout.Content, error) {
	return layout.NewFloat64Leaf(slices.Clone(b.data)), nil
}

// Int64Builder accumulates an int64 leaf.
type Int64Builder struct {
	data []int64
}

// NewInt64 creates an empty int64 leaf builder.
func NewInt64() *Int64Builder { return &Int64Builder{} }

// Append adds one value.
func (b *Int64Builder) Append(v int64) { b.data = append(b.data, v) }

func (b *Int64Builder) Len() int { return len(b.data) }

func (b *Int64Builder) Snapshot() (layout.Content, error) {
	return layout.NewInt64Leaf(slices.Clone(b.data)), nil
}

// BoolBuilder accumulates a bool leaf.
type BoolBuilder struct {
	data []bool
}

// NewBool creates an empty bool leaf builder.
func NewBool() *BoolBuilder { return &BoolBuilder{} }

// Append adds one value.
func (b *BoolBuilder) Append(v bool) { b.data = append(b.data, v) }

func (b *BoolBuilder) Len() int { return len(b.data) }

func (b *BoolBuilder) Snapshot() (layout.Content, error) {
	return layout.NewBoolLeaf(slices.Clone(b.data)), nil
}

// StringBuilder accumulates a string leaf.
type StringBuilder struct {
	data []string
}

// NewString creates an empty string leaf builder.
func NewString() *StringBuilder { return &StringBuilder{} }

// Append adds one value.
func (b *StringBuilder) Append(v string) { b.data = append(b.data, v) }

func (b *StringBuilder) Len() int { return len(b.data) }

func (b *StringBuilder) Snapshot() (layout.Content, error) {
	return layout.NewStringLeaf(slices.Clone(b.data)), nil
}

// ListOffsetBuilder accumulates a list node: each BeginList/EndList pair
// delimits one sublist of whatever the content builder accumulated in
// between.
type ListOffsetBuilder struct {
	offsets []int64
	content Builder
	open    int
	err     error
}

// NewListOffset creates a list builder over the given content builder.
func NewListOffset(content Builder) *ListOffsetBuilder {
	return &ListOffsetBuilder{offsets: []int64{0}, content: content}
}

// Content returns the builder for sublist contents.
func (b *ListOffsetBuilder) Content() Builder { return b.content }

// BeginList opens a sublist.
func (b *ListOffsetBuilder) BeginList() {
	b.open++
}

// EndList closes the current sublist, recording its boundary.
func (b *ListOffsetBuilder) EndList() {
	if b.open == 0 {
		if b.err == nil {
			b.err = errors.New(errors.PhaseBuild, errors.KindInvalidData).
				Path("list").
				Detail("EndList without matching BeginList").
				Build()
		}
		return
	}
	b.open--
	b.offsets = append(b.offsets, int64(b.content.Len()))
}

func (b *ListOffsetBuilder) Len() int { return len(b.offsets) - 1 }

func (b *ListOffsetBuilder) Snapshot() (layout.Content, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.open != 0 {
		return nil, errors.New(errors.PhaseBuild, errors.KindInvalidData).
			Path("list").
			Detail("%d sublist(s) still open", b.open).
			Build()
	}
	child, err := b.content.Snapshot()
	if err != nil {
		return nil, err
	}
	index, err := layout.NewIndex64(slices.Clone(b.offsets))
	if err != nil {
		return nil, err
	}
	return layout.NewListOffset(index, child)
}

// RecordBuilder accumulates a record node field by field. Fields keep
// registration order.
type RecordBuilder struct {
	names  []string
	fields []Builder
}

// NewRecord creates an empty record builder.
func NewRecord() *RecordBuilder { return &RecordBuilder{} }

// Field registers a field builder under name and returns it for chaining.
func (b *RecordBuilder) Field(name string, f Builder) Builder {
	b.names = append(b.names, name)
	b.fields = append(b.fields, f)
	return f
}

// Len returns the shortest field length, the number of complete records.
func (b *RecordBuilder) Len() int {
	if len(b.fields) == 0 {
		return 0
	}
	min := b.fields[0].Len()
	for _, f := range b.fields[1:] {
		if n := f.Len(); n < min {
			min = n
		}
	}
	return min
}

// Snapshot produces the record. All fields must have accumulated the same
// number of elements.
func (b *RecordBuilder) Snapshot() (layout.Content, error) {
	fields := make([]layout.Content, len(b.fields))
	length := 0
	for i, f := range b.fields {
		if i == 0 {
			length = f.Len()
		} else if f.Len() != length {
			return nil, errors.LengthMismatch(errors.PhaseBuild, []string{"record", b.names[i]}, "field", f.Len(), length)
		}
		c, err := f.Snapshot()
		if err != nil {
			return nil, err
		}
		fields[i] = c
	}
	return layout.NewRecord(slices.Clone(b.names), fields, length)
}
