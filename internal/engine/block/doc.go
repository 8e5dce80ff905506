// Package block provides the immutable building blocks of the document tree:
// styled text segments and typed tree nodes.
//
// A Segment is a contiguous run of text carrying a style set and an attribute
// map for data-carrying styles (such as a link target). A Block is a tree node
// identified by a globally unique id, holding an ordered segment list, an
// ordered child list, and free-form metadata.
//
// Both types are immutable: every edit constructs a new value and the original
// is never modified. This makes values safe to share across snapshots and lets
// higher layers rely on reference identity to detect unchanged subtrees.
//
// Segment lists are kept normalized at rest: no empty-text segments, and no
// two adjacent segments with identical styling. Block constructors apply
// MergeSegments so the invariant holds for any tree built through this
// package.
//
// Basic usage:
//
//	b := block.New(block.TypeBulleted,
//		[]block.Segment{
//			block.NewSegment("hello "),
//			block.NewSegment("world", block.StyleBold),
//		})
//	text := b.PlainText() // "hello world"
package block
