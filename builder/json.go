package builder

import (
	"encoding/json"
	"fmt"

	"github.com/raggedlabs/ragged/errors"
	"github.com/raggedlabs/ragged/layout"
)

// FromJSON builds a layout tree from a JSON array. Nesting maps to list
// levels; leaves must be homogeneous: all numbers (float64), all strings,
// or all bools at the same level. The empty array becomes an empty float64
// leaf. Objects, nulls and mixed-type levels are rejected.
func FromJSON(data []byte) (layout.Content, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Cause(err).
			Detail("decode JSON").
			Build()
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Detail("top-level value must be an array, got %T", v).
			Build()
	}
	return fromValues(arr, []string{"$"})
}

func fromValues(values []any, path []string) (layout.Content, error) {
	if len(values) == 0 {
		return layout.NewFloat64Leaf(nil), nil
	}

	switch values[0].(type) {
	case []any:
		offsets := make([]int64, 1, len(values)+1)
		var flat []any
		for i, v := range values {
			sub, ok := v.([]any)
			if !ok {
				return nil, mixed(path, i, values[0], v)
			}
			flat = append(flat, sub...)
			offsets = append(offsets, int64(len(flat)))
		}
		child, err := fromValues(flat, append(path, "[]"))
		if err != nil {
			return nil, err
		}
		index, err := layout.NewIndex64(offsets)
		if err != nil {
			return nil, err
		}
		return layout.NewListOffset(index, child)

	case float64:
		out := make([]float64, len(values))
		for i, v := range values {
			f, ok := v.(float64)
			if !ok {
				return nil, mixed(path, i, values[0], v)
			}
			out[i] = f
		}
		return layout.NewFloat64Leaf(out), nil

	case string:
		out := make([]string, len(values))
		for i, v := range values {
			s, ok := v.(string)
			if !ok {
				return nil, mixed(path, i, values[0], v)
			}
			out[i] = s
		}
		return layout.NewStringLeaf(out), nil

	case bool:
		out := make([]bool, len(values))
		for i, v := range values {
			b, ok := v.(bool)
			if !ok {
				return nil, mixed(path, i, values[0], v)
			}
			out[i] = b
		}
		return layout.NewBoolLeaf(out), nil

	default:
		return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Path(path...).
			Detail("unsupported JSON value %T", values[0]).
			Build()
	}
}

func mixed(path []string, index int, first, got any) error {
	return errors.New(errors.PhaseParse, errors.KindInvalidData).
		Path(path...).
		Value(got).
		Detail("mixed types at index %d: %s vs %s", index, typeName(first), typeName(got)).
		Build()
}

func typeName(v any) string {
	switch v.(type) {
	case []any:
		return "array"
	case float64:
		return "number"
	case string:
		return "string"
	case bool:
		return "bool"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
