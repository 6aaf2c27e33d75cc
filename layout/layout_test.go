package layout

import (
	"testing"

	"github.com/raggedlabs/ragged/errors"
)

func mustList(t *testing.T, offsets []int64, child Content) *ListOffset {
	t.Helper()
	l, err := NewListOffset(MustIndex64(offsets), child)
	if err != nil {
		t.Fatalf("NewListOffset: %v", err)
	}
	return l
}

func TestNewIndex64_Valid(t *testing.T) {
	ix, err := NewIndex64([]int64{0, 3, 3, 5, 6, 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ix.Len() != 6 {
		t.Fatalf("expected 6 offsets, got %d", ix.Len())
	}
	if ix.At(3) != 5 {
		t.Fatalf("expected offset 5 at index 3, got %d", ix.At(3))
	}
}

func TestNewIndex64_NonMonotonic(t *testing.T) {
	_, err := NewIndex64([]int64{0, 5, 3})
	if err == nil {
		t.Fatal("expected error for non-monotonic offsets")
	}
	if !errors.IsStructural(err) {
		t.Fatalf("expected structural error, got %v", err)
	}
}

func TestNewListOffset_Valid(t *testing.T) {
	leaf := NewFloat64Leaf([]float64{0.0, 1.1, 2.2, 3.3, 4.4, 5.5, 6.6, 7.7, 8.8, 9.9})
	list := mustList(t, []int64{0, 3, 3, 5, 6, 10}, leaf)

	if list.Length() != 5 {
		t.Fatalf("expected length 5, got %d", list.Length())
	}
	if list.Kind() != KindList {
		t.Fatalf("expected list kind, got %s", list.Kind())
	}
	if list.Child() != Content(leaf) {
		t.Fatal("child not shared with constructor argument")
	}
}

func TestNewListOffset_OffsetPastChild(t *testing.T) {
	leaf := NewFloat64Leaf([]float64{1, 2, 3})
	_, err := NewListOffset(MustIndex64([]int64{0, 2, 5}), leaf)
	if err == nil {
		t.Fatal("expected error for offset past child length")
	}
	if !errors.IsStructural(err) {
		t.Fatalf("expected structural error, got %v", err)
	}
}

func TestNewListOffset_NegativeOffset(t *testing.T) {
	leaf := NewInt64Leaf([]int64{1, 2, 3})
	_, err := NewListOffset(Index64{data: []int64{-1, 2}}, leaf)
	if err == nil {
		t.Fatal("expected error for negative offset")
	}
}

func TestNewListOffset_EmptyOffsets(t *testing.T) {
	_, err := NewListOffset(Index64{}, NewInt64Leaf(nil))
	if err == nil {
		t.Fatal("expected error for empty offsets buffer")
	}
	if !errors.IsStructural(err) {
		t.Fatalf("expected structural error, got %v", err)
	}
}

func TestNewRecord(t *testing.T) {
	x := NewFloat64Leaf([]float64{1, 2, 3})
	y := NewStringLeaf([]string{"a", "b", "c"})

	rec, err := NewRecord([]string{"x", "y"}, []Content{x, y}, 3)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	if rec.Length() != 3 {
		t.Fatalf("expected length 3, got %d", rec.Length())
	}
	if _, ok := rec.Field("y"); !ok {
		t.Fatal("field y not found")
	}
	if _, ok := rec.Field("z"); ok {
		t.Fatal("unexpected field z")
	}
}

func TestNewRecord_FieldTooShort(t *testing.T) {
	x := NewFloat64Leaf([]float64{1, 2})
	_, err := NewRecord([]string{"x"}, []Content{x}, 3)
	if err == nil {
		t.Fatal("expected error for field shorter than record")
	}
	if !errors.IsStructural(err) {
		t.Fatalf("expected structural error, got %v", err)
	}
}

func TestNewRecord_DuplicateName(t *testing.T) {
	x := NewFloat64Leaf([]float64{1})
	_, err := NewRecord([]string{"x", "x"}, []Content{x, x}, 1)
	if err == nil {
		t.Fatal("expected error for duplicate field name")
	}
}

func TestLeaf_DTypes(t *testing.T) {
	tests := []struct {
		name   string
		leaf   *Leaf
		dtype  DType
		length int
	}{
		{"float64", NewFloat64Leaf([]float64{1, 2}), DTypeFloat64, 2},
		{"int64", NewInt64Leaf([]int64{1, 2, 3}), DTypeInt64, 3},
		{"bool", NewBoolLeaf([]bool{true}), DTypeBool, 1},
		{"string", NewStringLeaf([]string{"a", "b"}), DTypeString, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.leaf.DType() != tt.dtype {
				t.Fatalf("expected dtype %s, got %s", tt.dtype, tt.leaf.DType())
			}
			if tt.leaf.Length() != tt.length {
				t.Fatalf("expected length %d, got %d", tt.length, tt.leaf.Length())
			}
			if tt.leaf.Kind() != KindLeaf {
				t.Fatalf("expected leaf kind, got %s", tt.leaf.Kind())
			}
		})
	}
}

func TestDepth(t *testing.T) {
	leaf := NewFloat64Leaf([]float64{1, 2, 3})
	if d := Depth(leaf); d != 0 {
		t.Fatalf("leaf depth = %d, want 0", d)
	}

	inner := mustList(t, []int64{0, 1, 3}, leaf)
	if d := Depth(inner); d != 1 {
		t.Fatalf("list depth = %d, want 1", d)
	}

	outer := mustList(t, []int64{0, 2}, inner)
	if d := Depth(outer); d != 2 {
		t.Fatalf("nested list depth = %d, want 2", d)
	}
}
