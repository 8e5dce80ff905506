// Package ops implements the policy-gated structural operations on
// documents: indent, outdent and block retyping.
//
// Every operation follows the same pattern: given a flat block index it
// computes the candidate new structural relationship, consults the policy
// table for every block type involved, and either applies the edit through
// the document's mutation primitives or returns the document unchanged.
// Policy violations are not errors; a rejected operation returns the
// identical document value, which callers may detect by reference equality.
// Applying a rejected operation again yields the same unchanged document.
package ops

import (
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/document"
)

// Operation is a pure transform from one document snapshot to the next.
type Operation interface {
	// Apply returns the successor document, or its input unchanged when
	// the operation is rejected or has nothing to do.
	Apply(d *document.Document) *document.Document
}

// targetIndex resolves a flat index against a document, clamped into
// range. Returns -1 for an empty document.
func targetIndex(d *document.Document, index int) int {
	n := d.BlockCount()
	if n == 0 {
		return -1
	}
	if index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
