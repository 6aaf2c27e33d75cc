package layout

// DType tags the element type of a leaf buffer.
type DType uint8

const (
	DTypeFloat64 DType = iota
	DTypeInt64
	DTypeBool
	DTypeString
)

func (d DType) String() string {
	switch d {
	case DTypeFloat64:
		return "float64"
	case DTypeInt64:
		return "int64"
	case DTypeBool:
		return "bool"
	case DTypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Leaf holds a flat typed buffer of non-nested data. Exactly one of the
// internal buffers is populated, selected by the dtype tag. Buffers are
// retained, not copied; callers must not mutate them after construction.
type Leaf struct {
	dtype DType
	f64   []float64
	i64   []int64
	bools []bool
	strs  []string
}

// NewFloat64Leaf creates a leaf over float64 data.
func NewFloat64Leaf(data []float64) *Leaf {
	return &Leaf{dtype: DTypeFloat64, f64: data}
}

// NewInt64Leaf creates a leaf over int64 data.
func NewInt64Leaf(data []int64) *Leaf {
	return &Leaf{dtype: DTypeInt64, i64: data}
}

// NewBoolLeaf creates a leaf over bool data.
func NewBoolLeaf(data []bool) *Leaf {
	return &Leaf{dtype: DTypeBool, bools: data}
}

// NewStringLeaf creates a leaf over string data.
func NewStringLeaf(data []string) *Leaf {
	return &Leaf{dtype: DTypeString, strs: data}
}

func (l *Leaf) Length() int {
	switch l.dtype {
	case DTypeFloat64:
		return len(l.f64)
	case DTypeInt64:
		return len(l.i64)
	case DTypeBool:
		return len(l.bools)
	case DTypeString:
		return len(l.strs)
	default:
		return 0
	}
}

func (l *Leaf) Kind() Kind { return KindLeaf }

// DType returns the element type tag.
func (l *Leaf) DType() DType { return l.dtype }

// Float64s returns the float64 buffer, or nil for other dtypes. Shared,
// read-only.
func (l *Leaf) Float64s() []float64 { return l.f64 }

// Int64s returns the int64 buffer, or nil for other dtypes. Shared,
// read-only.
func (l *Leaf) Int64s() []int64 { return l.i64 }

// Bools returns the bool buffer, or nil for other dtypes. Shared,
// read-only.
func (l *Leaf) Bools() []bool { return l.bools }

// Strings returns the string buffer, or nil for other dtypes. Shared,
// read-only.
func (l *Leaf) Strings() []string { return l.strs }

// window returns the leaf restricted to elements [start, stop). Buffers
// are shared.
func (l *Leaf) window(start, stop int) *Leaf {
	out := &Leaf{dtype: l.dtype}
	switch l.dtype {
	case DTypeFloat64:
		out.f64 = l.f64[start:stop]
	case DTypeInt64:
		out.i64 = l.i64[start:stop]
	case DTypeBool:
		out.bools = l.bools[start:stop]
	case DTypeString:
		out.strs = l.strs[start:stop]
	}
	return out
}

// value returns element i as a Go value.
func (l *Leaf) value(i int) any {
	switch l.dtype {
	case DTypeFloat64:
		return l.f64[i]
	case DTypeInt64:
		return l.i64[i]
	case DTypeBool:
		return l.bools[i]
	case DTypeString:
		return l.strs[i]
	default:
		return nil
	}
}
