package ops

import (
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/block"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/document"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/policy"
)

// ChangeBlockType retypes the block at a flat index, keeping its id,
// segments, children and metadata.
type ChangeBlockType struct {
	// Index is the target's position in the flattened block list,
	// clamped into range.
	Index int
	// To is the requested new block type.
	To block.Type
	// Policies is the structural rule table. A nil table permits
	// everything (policy.Fallback).
	Policies policy.Table
}

// Apply replaces the target's type in place. No-op when the target is
// nested and the new type cannot be a child; root-level blocks retype
// unconditionally. Retyping to the current type is also a no-op.
func (op ChangeBlockType) Apply(d *document.Document) *document.Document {
	idx := targetIndex(d, op.Index)
	if idx < 0 {
		return d
	}
	target := d.Block(idx)
	if target.Type() == op.To {
		return d
	}
	if d.DepthAt(idx) > 0 && !op.Policies.For(op.To).CanBeChild {
		return d
	}
	return d.Replace(target.ID(), target.WithType(op.To))
}
