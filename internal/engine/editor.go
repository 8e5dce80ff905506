package engine

import (
	"sync"

	"github.com/bullet-to/bullet-editor-sub002/internal/engine/block"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/document"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/ops"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/policy"
)

// Editor is the main facade for the document engine. It holds the current
// document revision and the structural policy table, and funnels every
// mutation through them.
//
// All methods are safe for concurrent use. Because documents are
// immutable, a snapshot obtained from Document remains valid forever; the
// editor only swaps which revision is current.
type Editor struct {
	mu       sync.RWMutex
	doc      *document.Document
	policies policy.Table
	readOnly bool
}

// New creates an Editor with the given options. Without options it starts
// on an empty document governed by the stock policy table.
func New(opts ...Option) *Editor {
	e := &Editor{
		doc:      document.Empty(),
		policies: policy.DefaultTable(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Document returns the current revision.
func (e *Editor) Document() *document.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc
}

// Policies returns the structural rule table in effect.
func (e *Editor) Policies() policy.Table {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.policies
}

// PlainText returns the flat text of the current revision.
func (e *Editor) PlainText() string {
	return e.Document().PlainText()
}

// Apply runs a structural operation against the current revision and makes
// its result current. It reports whether the document changed: operations
// rejected by policy return the revision they were given, which counts as
// unchanged.
func (e *Editor) Apply(op ops.Operation) (bool, error) {
	return e.swap(op.Apply)
}

// InsertText inserts text at a global offset.
func (e *Editor) InsertText(offset int, text string) (bool, error) {
	return e.swap(func(d *document.Document) *document.Document {
		return d.InsertText(offset, text)
	})
}

// DeleteText removes the text between two global offsets.
func (e *Editor) DeleteText(start, end int) (bool, error) {
	return e.swap(func(d *document.Document) *document.Document {
		return d.DeleteText(start, end)
	})
}

// ApplyStyle styles the text between two global offsets.
func (e *Editor) ApplyStyle(start, end int, st block.Style) (bool, error) {
	return e.swap(func(d *document.Document) *document.Document {
		return d.ApplyStyle(start, end, st)
	})
}

// RemoveStyle clears a style between two global offsets.
func (e *Editor) RemoveStyle(start, end int, st block.Style) (bool, error) {
	return e.swap(func(d *document.Document) *document.Document {
		return d.RemoveStyle(start, end, st)
	})
}

// Indent nests the block at a flat index under its previous sibling,
// subject to the editor's policy table.
func (e *Editor) Indent(index int) (bool, error) {
	e.mu.RLock()
	tbl := e.policies
	e.mu.RUnlock()
	return e.Apply(ops.Indent{Index: index, Policies: tbl})
}

// Outdent lifts the block at a flat index out of its parent.
func (e *Editor) Outdent(index int) (bool, error) {
	return e.Apply(ops.Outdent{Index: index})
}

// ChangeBlockType retypes the block at a flat index, subject to the
// editor's policy table.
func (e *Editor) ChangeBlockType(index int, to block.Type) (bool, error) {
	e.mu.RLock()
	tbl := e.policies
	e.mu.RUnlock()
	return e.Apply(ops.ChangeBlockType{Index: index, To: to, Policies: tbl})
}

// InsertBlockAfter places a fresh empty block of the given type after the
// block at a flat index, as its next sibling. No-op on an empty document.
func (e *Editor) InsertBlockAfter(index int, typ block.Type) (bool, error) {
	return e.swap(func(d *document.Document) *document.Document {
		cur := d.Block(index)
		if cur == nil {
			return d
		}
		return d.InsertAfter(cur.ID(), block.NewText(typ, ""))
	})
}

// RemoveBlock deletes the block at a flat index, promoting its children
// into its place. No-op when removal would leave the document without any
// blocks.
func (e *Editor) RemoveBlock(index int) (bool, error) {
	return e.swap(func(d *document.Document) *document.Document {
		cur := d.Block(index)
		if cur == nil {
			return d
		}
		next := d.RemovePromoteChildren(cur.ID())
		if next.BlockCount() == 0 {
			return d
		}
		return next
	})
}

// ExtractRange copies the blocks covered by an offset range out of the
// current revision. The copies carry fresh ids and never alias the
// document.
func (e *Editor) ExtractRange(start, end int) []*block.Block {
	return e.Document().ExtractRange(start, end)
}

// swap replaces the current revision with fn's result under the write
// lock. The revision is unchanged when fn returns its argument.
func (e *Editor) swap(fn func(*document.Document) *document.Document) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly {
		return false, ErrReadOnly
	}
	next := fn(e.doc)
	if next == e.doc {
		return false, nil
	}
	e.doc = next
	return true, nil
}
