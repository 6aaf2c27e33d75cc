package layout

// Values materializes a tree as nested Go values, one entry per top-level
// element: leaves yield their scalar values, lists yield []any, records
// yield map[string]any. Intended for tests, display, and JSON encoding;
// large arrays should be consumed through the typed buffers instead.
func Values(c Content) []any {
	out := make([]any, c.Length())
	for i := range out {
		out[i] = element(c, i)
	}
	return out
}

func element(c Content, i int) any {
	switch v := c.(type) {
	case *Leaf:
		return v.value(i)

	case *ListOffset:
		start := int(v.offsets.At(i))
		stop := int(v.offsets.At(i + 1))
		sub := make([]any, 0, stop-start)
		for j := start; j < stop; j++ {
			sub = append(sub, element(v.child, j))
		}
		return sub

	case *Record:
		m := make(map[string]any, len(v.fields))
		for k, name := range v.names {
			m[name] = element(v.fields[k], i)
		}
		return m

	default:
		return nil
	}
}
