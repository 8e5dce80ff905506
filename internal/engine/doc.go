// Package engine provides the document engine facade.
//
// The engine combines the block tree, offset mapping, structural policies
// and document operations from its sub-packages into a unified,
// thread-safe API suitable for building block-structured editors.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - block: immutable styled-segment blocks and block types
//   - document: the immutable block tree, flat offset mapping, text edits
//     and range extraction
//   - policy: structural nesting rules per block type
//   - ops: self-contained structural operations (indent, outdent, retype)
//
// # Thread Safety
//
// All Editor operations are safe for concurrent use. Documents are
// immutable values, so readers holding a revision obtained from Document
// never observe later edits; the editor serializes writers and swaps the
// current revision atomically under its lock.
//
// # Basic Usage
//
// Create an editor and perform edits:
//
//	e := engine.New()
//
//	// Type into the first block.
//	e.InsertText(0, "Hello, World!")
//
//	// Read content.
//	text := e.PlainText() // "Hello, World!"
//
//	// Split into two blocks.
//	e.InsertText(5, "\n")
//
//	// Nest the second block under the first (subject to policies).
//	moved, _ := e.Indent(1)
//
// # Structural Policies
//
// Every structural operation consults the editor's policy table. A
// rejected operation is a silent no-op: Apply reports false and the
// current revision is unchanged. Custom tables load from JSON via the
// config package or from Lua schema scripts via the policylua package:
//
//	tbl, err := config.LoadPolicies("policies.json")
//	e := engine.New(engine.WithPolicies(tbl))
//
// # Read-Only Mode
//
// A read-only editor rejects every mutation:
//
//	e := engine.New(engine.WithReadOnly())
//	_, err := e.InsertText(0, "text")
//	// err == engine.ErrReadOnly
package engine
