// Package document provides the immutable document value at the center of
// the editor engine: a forest of typed blocks plus a cached depth-first
// flattening of it.
//
// The flattening drives every positional API. The document's linear text is
// the flattened blocks' plain texts joined by single newlines; a global
// offset is a rune index into that joined text. BlockAt and GlobalOffset
// convert between global offsets and (block index, local offset) pairs and
// are exact inverses for in-range positions. Out-of-range numeric input is
// always clamped, never an error, so cursor math stays robust against
// transient widget state drift.
//
// Every mutation returns a new Document; the original is never altered.
// Mutation is built on a single id-addressed path-copying visitor: only the
// ancestors of an edited node are reallocated, every sibling subtree is
// reused by reference. Callers may therefore use reference identity of
// subtrees (and of Documents: a rejected edit returns the identical value)
// as a fast unchanged check.
//
// Basic usage:
//
//	d := document.New([]*block.Block{
//		block.NewText(block.TypeParagraph, "hello"),
//		block.NewText(block.TypeParagraph, "world"),
//	})
//	d.PlainText()  // "hello\nworld"
//	d.BlockAt(6)   // Position{Block: 1, Offset: 0}
package document
