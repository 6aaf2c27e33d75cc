package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseConstruct,
				Kind:   KindInvalidOffsets,
				Path:   []string{"list", "offsets"},
				Detail: "offsets decrease at index 2",
			},
			contains: []string{"[construct/invalid_offsets]", "list.offsets", "offsets decrease at index 2"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseTraverse,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[traverse/out_of_bounds]"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseKernel,
				Kind:   KindInvalidPattern,
				Detail: `pattern "["`,
				Cause:  errors.New("missing closing ]"),
			},
			contains: []string{"[kernel/invalid_pattern]", `pattern "["`, "caused by", "missing closing ]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseKernel,
		Kind:  KindInvalidPattern,
		Cause: cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the cause through Unwrap")
	}
}

func TestError_Is(t *testing.T) {
	err := InvalidOffsets(PhaseConstruct, nil, 2, 5, 3)

	if !errors.Is(err, &Error{Phase: PhaseConstruct, Kind: KindInvalidOffsets}) {
		t.Error("expected match on same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseTraverse, Kind: KindInvalidOffsets}) {
		t.Error("unexpected match on different phase")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseBuild, KindLengthMismatch).
		Path("record", "x").
		Value(7).
		Cause(cause).
		Detail("field %q has %d elements", "x", 7).
		Build()

	if err.Phase != PhaseBuild || err.Kind != KindLengthMismatch {
		t.Fatalf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if len(err.Path) != 2 || err.Path[0] != "record" {
		t.Fatalf("unexpected path: %v", err.Path)
	}
	if err.Value != 7 {
		t.Fatalf("unexpected value: %v", err.Value)
	}
	if err.Detail != `field "x" has 7 elements` {
		t.Fatalf("unexpected detail: %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}

func TestIsStructural(t *testing.T) {
	structural := []error{
		InvalidOffsets(PhaseConstruct, nil, 1, 5, 3),
		OutOfBounds(PhaseTraverse, nil, 10, 5),
		LengthMismatch(PhaseConstruct, nil, "offsets", 3, 6),
		AxisDepth(2, 1),
	}
	for _, err := range structural {
		if !IsStructural(err) {
			t.Errorf("expected structural: %v", err)
		}
	}

	other := []error{
		UnsupportedLeaf(PhaseTraverse, nil, "float64"),
		InvalidPattern("[", errors.New("bad")),
		errors.New("plain"),
		nil,
	}
	for _, err := range other {
		if IsStructural(err) {
			t.Errorf("unexpected structural: %v", err)
		}
	}
}

func TestIsUnsupportedLeaf(t *testing.T) {
	if !IsUnsupportedLeaf(UnsupportedLeaf(PhaseKernel, []string{"leaf"}, "bool")) {
		t.Error("expected unsupported-leaf match")
	}
	if IsUnsupportedLeaf(AxisDepth(1, 0)) {
		t.Error("axis error misclassified as unsupported leaf")
	}
}
