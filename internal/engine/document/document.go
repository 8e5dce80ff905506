package document

import (
	"strings"

	"github.com/bullet-to/bullet-editor-sub002/internal/engine/block"
)

// Document is an immutable snapshot of a block forest. All positional APIs
// operate over the cached pre-order flattening, never over the root list
// directly.
type Document struct {
	blocks []*block.Block
	all    []*block.Block // pre-order flattening of blocks
	depths []int          // nesting depth per entry of all (roots are 0)
	ids    block.IDSource
}

// Option configures a Document under construction.
type Option func(*Document)

// WithIDSource sets the id source used when the document makes block
// copies (range extraction, block splitting). Defaults to the package-wide
// block id source.
func WithIDSource(src block.IDSource) Option {
	return func(d *Document) {
		d.ids = src
	}
}

// New creates a document from an explicit root block list. The slice is
// copied; the blocks themselves are shared.
func New(blocks []*block.Block, opts ...Option) *Document {
	d := &Document{}
	if len(blocks) > 0 {
		d.blocks = make([]*block.Block, len(blocks))
		copy(d.blocks, blocks)
	}
	for _, opt := range opts {
		opt(d)
	}
	d.all, d.depths = flatten(d.blocks)
	return d
}

// Empty creates a document holding a single empty paragraph with a freshly
// generated id.
func Empty(opts ...Option) *Document {
	return New([]*block.Block{block.New(block.TypeParagraph, nil)}, opts...)
}

// derive builds the successor document for a mutation, keeping the id
// source.
func (d *Document) derive(blocks []*block.Block) *Document {
	nd := &Document{blocks: blocks, ids: d.ids}
	nd.all, nd.depths = flatten(blocks)
	return nd
}

func (d *Document) idSource() block.IDSource {
	if d.ids != nil {
		return d.ids
	}
	return block.UUIDSource{}
}

// Blocks returns the root block list. Read-only.
func (d *Document) Blocks() []*block.Block {
	return d.blocks
}

// AllBlocks returns the depth-first pre-order flattening of the whole
// forest. Read-only.
func (d *Document) AllBlocks() []*block.Block {
	return d.all
}

// BlockCount returns the number of blocks in the whole forest.
func (d *Document) BlockCount() int {
	return len(d.all)
}

// Block returns the flattened block at the given index, clamped into range.
// Returns nil for an empty document.
func (d *Document) Block(index int) *block.Block {
	if len(d.all) == 0 {
		return nil
	}
	return d.all[clampIndex(index, len(d.all))]
}

// DepthAt returns the nesting depth of the flattened block at the given
// index, clamped into range. Root-level blocks are depth 0.
func (d *Document) DepthAt(index int) int {
	if len(d.all) == 0 {
		return 0
	}
	return d.depths[clampIndex(index, len(d.all))]
}

// PlainText returns the document's linear text: the flattened blocks'
// plain texts joined by single newlines.
func (d *Document) PlainText() string {
	var sb strings.Builder
	for i, b := range d.all {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.PlainText())
	}
	return sb.String()
}

// TextLength returns the rune length of PlainText without building it.
func (d *Document) TextLength() int {
	if len(d.all) == 0 {
		return 0
	}
	n := len(d.all) - 1 // inter-block newlines
	for _, b := range d.all {
		n += b.Length()
	}
	return n
}

// flatten linearizes a forest depth-first, each node before its children,
// children in list order.
func flatten(blocks []*block.Block) ([]*block.Block, []int) {
	var all []*block.Block
	var depths []int
	var walk func([]*block.Block, int)
	walk = func(bs []*block.Block, depth int) {
		for _, b := range bs {
			all = append(all, b)
			depths = append(depths, depth)
			walk(b.Children(), depth+1)
		}
	}
	walk(blocks, 0)
	return all, depths
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
