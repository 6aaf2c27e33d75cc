package kernel

// FindOptions configures the find kernels.
type FindOptions struct {
	// IgnoreCase performs a case-insensitive match.
	IgnoreCase bool
}

// SplitOptions configures the split kernels.
type SplitOptions struct {
	// MaxSplits caps the number of splits per input value. Negative means
	// unlimited.
	MaxSplits int

	// Reverse starts splitting from the end of each value. Only effective
	// when MaxSplits is non-negative.
	Reverse bool
}

// Provider is the external string-kernel capability. Given a flat buffer
// of string values, find kernels return one index per value (byte index of
// the first match, or -1), and split kernels return one list of substrings
// per value. Implementations must be side-effect free per call; errors
// (e.g. a malformed pattern) are final and are never retried.
type Provider interface {
	FindSubstring(values []string, pattern string, opts FindOptions) ([]int64, error)
	FindSubstringRegex(values []string, pattern string, opts FindOptions) ([]int64, error)
	SplitPattern(values []string, pattern string, opts SplitOptions) ([][]string, error)
	SplitPatternRegex(values []string, pattern string, opts SplitOptions) ([][]string, error)
}
