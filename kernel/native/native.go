// Package native implements the string-kernel capability in-process, on
// the Go strings and regexp engines. It is the reference provider; the
// pattern semantics are those of the underlying engines.
package native

import (
	"regexp"
	"slices"
	"strings"

	"github.com/raggedlabs/ragged/errors"
	"github.com/raggedlabs/ragged/kernel"
)

// Provider implements kernel.Provider. It is stateless and safe for
// concurrent use.
type Provider struct{}

// New creates an in-process provider.
func New() *Provider { return &Provider{} }

// FindSubstring returns the byte index of the first occurrence of pattern
// in each value, or -1.
func (p *Provider) FindSubstring(values []string, pattern string, opts kernel.FindOptions) ([]int64, error) {
	pat := pattern
	if opts.IgnoreCase {
		pat = strings.ToLower(pattern)
	}
	out := make([]int64, len(values))
	for i, v := range values {
		if opts.IgnoreCase {
			v = strings.ToLower(v)
		}
		out[i] = int64(strings.Index(v, pat))
	}
	return out, nil
}

// FindSubstringRegex returns the byte index of the first match of the
// regular expression pattern in each value, or -1.
func (p *Provider) FindSubstringRegex(values []string, pattern string, opts kernel.FindOptions) ([]int64, error) {
	re, err := compile(pattern, opts.IgnoreCase)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(values))
	for i, v := range values {
		loc := re.FindStringIndex(v)
		if loc == nil {
			out[i] = -1
		} else {
			out[i] = int64(loc[0])
		}
	}
	return out, nil
}

// SplitPattern splits each value on the literal pattern.
func (p *Provider) SplitPattern(values []string, pattern string, opts kernel.SplitOptions) ([][]string, error) {
	if pattern == "" {
		return nil, errors.New(errors.PhaseKernel, errors.KindInvalidPattern).
			Detail("empty separator").
			Build()
	}
	out := make([][]string, len(values))
	for i, v := range values {
		switch {
		case opts.MaxSplits < 0:
			out[i] = strings.Split(v, pattern)
		case opts.Reverse:
			out[i] = splitReverse(v, pattern, opts.MaxSplits)
		default:
			out[i] = strings.SplitN(v, pattern, opts.MaxSplits+1)
		}
	}
	return out, nil
}

// SplitPatternRegex splits each value on matches of the regular expression
// pattern. Reverse splitting is not supported with regex patterns.
func (p *Provider) SplitPatternRegex(values []string, pattern string, opts kernel.SplitOptions) ([][]string, error) {
	if opts.Reverse && opts.MaxSplits >= 0 {
		return nil, errors.Unsupported(errors.PhaseKernel, "cannot split in reverse with a regex pattern")
	}
	re, err := compile(pattern, false)
	if err != nil {
		return nil, err
	}
	limit := -1
	if opts.MaxSplits >= 0 {
		limit = opts.MaxSplits + 1
	}
	out := make([][]string, len(values))
	for i, v := range values {
		out[i] = re.Split(v, limit)
	}
	return out, nil
}

func compile(pattern string, ignoreCase bool) (*regexp.Regexp, error) {
	expr := pattern
	if ignoreCase {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.InvalidPattern(pattern, err)
	}
	return re, nil
}

// splitReverse splits from the end of v, consuming at most maxSplits
// separators, with pieces returned in original order.
func splitReverse(v, sep string, maxSplits int) []string {
	parts := make([]string, 0, maxSplits+1)
	rest := v
	for n := 0; n < maxSplits; n++ {
		i := strings.LastIndex(rest, sep)
		if i < 0 {
			break
		}
		parts = append(parts, rest[i+len(sep):])
		rest = rest[:i]
	}
	parts = append(parts, rest)
	slices.Reverse(parts)
	return parts
}
