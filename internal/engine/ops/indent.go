package ops

import (
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/document"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/policy"
)

// Indent nests the block at a flat index under its previous sibling.
type Indent struct {
	// Index is the target's position in the flattened block list,
	// clamped into range.
	Index int
	// Policies is the structural rule table. A nil table permits
	// everything (policy.Fallback).
	Policies policy.Table
}

// Apply moves the target to the end of its previous sibling's child list.
// No-op when the target has no previous sibling, the sibling's type cannot
// hold children, the target's type cannot be a child, or the new depth
// would exceed the target type's cap.
func (op Indent) Apply(d *document.Document) *document.Document {
	idx := targetIndex(d, op.Index)
	if idx < 0 {
		return d
	}
	target := d.Block(idx)
	prev := d.PreviousSibling(target.ID())
	if prev == nil {
		return d
	}
	if !op.Policies.For(prev.Type()).CanHaveChildren {
		return d
	}
	targetPolicy := op.Policies.For(target.Type())
	if !targetPolicy.CanBeChild {
		return d
	}
	prevDepth, _ := d.DepthOf(prev.ID())
	if targetPolicy.MaxDepth > 0 && prevDepth+1 > targetPolicy.MaxDepth {
		return d
	}
	return d.Remove(target.ID()).AddChild(prev.ID(), target)
}

// Outdent is the inverse of Indent: a nested block leaves its parent and
// becomes the parent's next sibling, keeping its own subtree. Moving a
// block up never creates a relationship its types did not already have, so
// no policy table is consulted.
type Outdent struct {
	// Index is the target's position in the flattened block list,
	// clamped into range.
	Index int
}

// Apply re-inserts the target after its parent, one level up. No-op for
// root-level blocks.
func (op Outdent) Apply(d *document.Document) *document.Document {
	idx := targetIndex(d, op.Index)
	if idx < 0 {
		return d
	}
	target := d.Block(idx)
	parent := d.ParentOf(target.ID())
	if parent == nil {
		return d
	}
	return d.Remove(target.ID()).InsertAfter(parent.ID(), target)
}
