package layout

import (
	"github.com/raggedlabs/ragged/errors"
)

// Record is a node of named fields, each a Content of at least the record
// length. Field order is significant; traversal visits fields
// left-to-right.
type Record struct {
	names  []string
	fields []Content
	length int
}

// NewRecord creates a record node. Every field must hold at least length
// elements and each name must be unique.
func NewRecord(names []string, fields []Content, length int) (*Record, error) {
	if len(names) != len(fields) {
		return nil, errors.LengthMismatch(errors.PhaseConstruct, []string{"record"}, "field names", len(names), len(fields))
	}
	if length < 0 {
		return nil, errors.New(errors.PhaseConstruct, errors.KindInvalidData).
			Path("record").
			Detail("negative length %d", length).
			Build()
	}
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if _, dup := seen[name]; dup {
			return nil, errors.New(errors.PhaseConstruct, errors.KindInvalidData).
				Path("record", name).
				Detail("duplicate field name").
				Build()
		}
		seen[name] = struct{}{}
		if fields[i] == nil {
			return nil, errors.New(errors.PhaseConstruct, errors.KindInvalidData).
				Path("record", name).
				Detail("nil field").
				Build()
		}
		if fields[i].Length() < length {
			return nil, errors.LengthMismatch(errors.PhaseConstruct, []string{"record", name}, "field", fields[i].Length(), length)
		}
	}
	return &Record{names: names, fields: fields, length: length}, nil
}

func (r *Record) Length() int { return r.length }

func (r *Record) Kind() Kind { return KindRecord }

// Names returns the field names in order. Shared, read-only.
func (r *Record) Names() []string { return r.names }

// Fields returns the field contents in order. Shared, read-only.
func (r *Record) Fields() []Content { return r.fields }

// Field returns the content of the named field.
func (r *Record) Field(name string) (Content, bool) {
	for i, n := range r.names {
		if n == name {
			return r.fields[i], true
		}
	}
	return nil, false
}
