package engine

import (
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/document"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/policy"
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithDocument sets the initial document revision.
func WithDocument(d *document.Document) Option {
	return func(e *Editor) {
		if d != nil {
			e.doc = d
		}
	}
}

// WithPolicies sets the structural rule table. A nil table is ignored and
// the stock table stays in effect.
func WithPolicies(tbl policy.Table) Option {
	return func(e *Editor) {
		if tbl != nil {
			e.policies = tbl
		}
	}
}

// WithReadOnly creates a read-only editor. Mutations return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Editor) {
		e.readOnly = true
	}
}
