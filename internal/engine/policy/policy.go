// Package policy defines the per-block-type structural rules consulted by
// structural operations: whether a type may be nested under another block,
// whether it may hold children of its own, and how deep it may nest.
//
// A Table is fixed for the lifetime of an editing session. Structural
// operations read it; they never modify it. Custom tables may be supplied
// by the configuration layer or a Lua schema script.
package policy

import "github.com/bullet-to/bullet-editor-sub002/internal/engine/block"

// Policy holds the structural rules for one block type.
type Policy struct {
	// CanBeChild permits blocks of this type to be nested under a parent.
	CanBeChild bool
	// CanHaveChildren permits blocks of this type to hold child blocks.
	CanHaveChildren bool
	// MaxDepth caps the nesting depth for this type (root level is depth
	// 0). Zero means unlimited.
	MaxDepth int
}

// Table maps block types to their structural rules.
type Table map[block.Type]Policy

// Fallback is the policy applied to block types absent from a table.
// It permits nesting in both directions with no depth cap.
var Fallback = Policy{CanBeChild: true, CanHaveChildren: true}

// For returns the policy for a block type, or Fallback if the table has no
// entry for it. Safe to call on a nil table.
func (t Table) For(typ block.Type) Policy {
	if p, ok := t[typ]; ok {
		return p
	}
	return Fallback
}

// MaxListDepth is the nesting cap applied to the stock list item types.
const MaxListDepth = 6

// DefaultTable returns the stock policy table. Headings refuse nesting in
// both directions; paragraphs and quotes may be nested but hold no children
// of their own; list items nest freely up to MaxListDepth.
func DefaultTable() Table {
	listItem := Policy{CanBeChild: true, CanHaveChildren: true, MaxDepth: MaxListDepth}
	return Table{
		block.TypeParagraph: {CanBeChild: true},
		block.TypeHeading1:  {},
		block.TypeHeading2:  {},
		block.TypeHeading3:  {},
		block.TypeBulleted:  listItem,
		block.TypeNumbered:  listItem,
		block.TypeTodo:      listItem,
		block.TypeQuote:     {CanBeChild: true},
		block.TypeCode:      {},
	}
}
