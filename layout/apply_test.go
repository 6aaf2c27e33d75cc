package layout

import (
	stderrors "errors"
	"reflect"
	"testing"
)

func continueAll(Content, int) (Content, error) { return nil, nil }

func nestedFixture(t *testing.T) *ListOffset {
	t.Helper()
	leaf := NewFloat64Leaf([]float64{0.0, 1.1, 2.2, 3.3, 4.4, 5.5, 6.6, 7.7, 8.8, 9.9})
	return mustList(t, []int64{0, 3, 3, 5, 6, 10}, leaf)
}

func TestApply_Identity(t *testing.T) {
	tree := nestedFixture(t)

	out, err := Apply(tree, continueAll)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// An all-continue action rebuilds nothing: the result is the same tree.
	if out != Content(tree) {
		t.Fatal("identity apply did not return the original tree")
	}
	if !reflect.DeepEqual(Values(out), Values(tree)) {
		t.Fatal("identity apply changed values")
	}
}

func TestApply_VisitsEveryNodeOnceWithDepth(t *testing.T) {
	tree := nestedFixture(t)

	type visit struct {
		kind  Kind
		depth int
	}
	var visits []visit
	_, err := Apply(tree, func(node Content, depth int) (Content, error) {
		visits = append(visits, visit{node.Kind(), depth})
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := []visit{{KindList, 0}, {KindLeaf, 1}}
	if !reflect.DeepEqual(visits, want) {
		t.Fatalf("visits = %v, want %v", visits, want)
	}
}

func TestApply_ReplacementStopsDescent(t *testing.T) {
	tree := nestedFixture(t)
	replacement := NewInt64Leaf([]int64{1, 2, 3, 4, 5})

	leafSeen := false
	out, err := Apply(tree, func(node Content, depth int) (Content, error) {
		if node.Kind() == KindList {
			return replacement, nil
		}
		leafSeen = true
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out != Content(replacement) {
		t.Fatalf("expected replacement node, got %T", out)
	}
	if leafSeen {
		t.Fatal("descended past a replaced node")
	}
}

func TestApply_LeafReplacementKeepsOffsets(t *testing.T) {
	tree := nestedFixture(t)

	out, err := Apply(tree, func(node Content, depth int) (Content, error) {
		leaf, ok := node.(*Leaf)
		if !ok {
			return nil, nil
		}
		doubled := make([]float64, leaf.Length())
		for i, v := range leaf.Float64s() {
			doubled[i] = 2 * v
		}
		return NewFloat64Leaf(doubled), nil
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	list, ok := out.(*ListOffset)
	if !ok {
		t.Fatalf("expected *ListOffset, got %T", out)
	}
	if !reflect.DeepEqual(list.Offsets().Data(), tree.Offsets().Data()) {
		t.Fatal("generic rebuild changed offsets")
	}
	want := []any{
		[]any{0.0, 2.2, 4.4},
		[]any{},
		[]any{6.6, 8.8},
		[]any{11.0},
		[]any{13.2, 15.4, 17.6, 19.8},
	}
	if !reflect.DeepEqual(Values(list), want) {
		t.Fatalf("values = %v, want %v", Values(list), want)
	}
	// The source tree is untouched.
	if tree.Child().(*Leaf).Float64s()[1] != 1.1 {
		t.Fatal("source tree mutated")
	}
}

func TestApply_ErrorAbortsWholeTraversal(t *testing.T) {
	tree := nestedFixture(t)
	boom := stderrors.New("kernel exploded")

	out, err := Apply(tree, func(node Content, depth int) (Content, error) {
		if node.Kind() == KindLeaf {
			return nil, boom
		}
		return nil, nil
	})
	if !stderrors.Is(err, boom) {
		t.Fatalf("expected the action error unchanged, got %v", err)
	}
	if out != nil {
		t.Fatal("partial tree returned after failed traversal")
	}
}

func TestApply_CardinalityBreakDetected(t *testing.T) {
	tree := nestedFixture(t)

	_, err := Apply(tree, func(node Content, depth int) (Content, error) {
		if node.Kind() == KindLeaf {
			// Shrinks the child without replacing the parent list.
			return NewInt64Leaf([]int64{1, 2}), nil
		}
		return nil, nil
	})
	if err == nil {
		t.Fatal("expected error when action broke list cardinality")
	}
}

func TestApply_RecordFields(t *testing.T) {
	x := NewFloat64Leaf([]float64{1, 2, 3})
	y := NewStringLeaf([]string{"a", "b", "c"})
	rec, err := NewRecord([]string{"x", "y"}, []Content{x, y}, 3)
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}

	var order []string
	out, err := Apply(rec, func(node Content, depth int) (Content, error) {
		leaf, ok := node.(*Leaf)
		if !ok {
			return nil, nil
		}
		order = append(order, leaf.DType().String())
		if leaf.DType() != DTypeString {
			return nil, nil
		}
		upper := []string{"A", "B", "C"}
		return NewStringLeaf(upper), nil
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !reflect.DeepEqual(order, []string{"float64", "string"}) {
		t.Fatalf("field visit order = %v", order)
	}

	got := Values(out)
	want := []any{
		map[string]any{"x": 1.0, "y": "A"},
		map[string]any{"x": 2.0, "y": "B"},
		map[string]any{"x": 3.0, "y": "C"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
}

func TestApply_IdempotentActionTwice(t *testing.T) {
	tree := nestedFixture(t)
	clamp := func(node Content, depth int) (Content, error) {
		leaf, ok := node.(*Leaf)
		if !ok || leaf.DType() != DTypeFloat64 {
			return nil, nil
		}
		out := make([]float64, leaf.Length())
		for i, v := range leaf.Float64s() {
			if v > 5 {
				v = 5
			}
			out[i] = v
		}
		return NewFloat64Leaf(out), nil
	}

	once, err := Apply(tree, clamp)
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}
	twice, err := Apply(once, clamp)
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if !reflect.DeepEqual(Values(once), Values(twice)) {
		t.Fatal("idempotent leaf action was not idempotent through the engine")
	}
}
