package document

import "github.com/bullet-to/bullet-editor-sub002/internal/engine/block"

// rewriteFunc maps a matched block to its replacement list: empty deletes
// the node, a single entry replaces it, multiple entries splice in extra
// siblings after it.
type rewriteFunc func(*block.Block) []*block.Block

// rewriteForest walks a forest looking for the block with the given id and
// substitutes fn's result in place. Only the ancestor chain of the match is
// reallocated; every sibling subtree and, on a miss, the input slice itself
// are returned unchanged by reference.
func rewriteForest(blocks []*block.Block, id string, fn rewriteFunc) ([]*block.Block, bool) {
	for i, b := range blocks {
		if b.ID() == id {
			repl := fn(b)
			out := make([]*block.Block, 0, len(blocks)-1+len(repl))
			out = append(out, blocks[:i]...)
			out = append(out, repl...)
			out = append(out, blocks[i+1:]...)
			return out, true
		}
		if kids, changed := rewriteForest(b.Children(), id, fn); changed {
			out := make([]*block.Block, len(blocks))
			copy(out, blocks)
			out[i] = b.WithChildren(kids)
			return out, true
		}
	}
	return blocks, false
}

// rewrite applies fn at the block with the given id and returns the
// successor document, or the identical document when the id is absent.
func (d *Document) rewrite(id string, fn rewriteFunc) *Document {
	blocks, changed := rewriteForest(d.blocks, id, fn)
	if !changed {
		return d
	}
	return d.derive(blocks)
}

// Replace substitutes the block with the given id. No-op if absent.
func (d *Document) Replace(id string, repl *block.Block) *Document {
	return d.rewrite(id, func(*block.Block) []*block.Block {
		return []*block.Block{repl}
	})
}

// Remove deletes the block with the given id along with its whole subtree.
// No-op if absent.
func (d *Document) Remove(id string) *Document {
	return d.rewrite(id, func(*block.Block) []*block.Block {
		return nil
	})
}

// RemovePromoteChildren deletes the block with the given id but splices its
// children in as siblings at the same level, preserving their order. Used
// where silently discarding a subtree would be surprising, such as deleting
// a selection that spans a parent. No-op if absent.
func (d *Document) RemovePromoteChildren(id string) *Document {
	return d.rewrite(id, func(b *block.Block) []*block.Block {
		return b.Children()
	})
}

// InsertAfter adds a block as the next sibling of the block with the given
// id. No-op if the id is absent.
func (d *Document) InsertAfter(id string, nb *block.Block) *Document {
	return d.rewrite(id, func(b *block.Block) []*block.Block {
		return []*block.Block{b, nb}
	})
}

// AddChild appends a block to the end of the identified block's child
// list. No-op if the id is absent.
func (d *Document) AddChild(parentID string, child *block.Block) *Document {
	return d.rewrite(parentID, func(b *block.Block) []*block.Block {
		kids := b.Children()
		out := make([]*block.Block, 0, len(kids)+1)
		out = append(out, kids...)
		out = append(out, child)
		return []*block.Block{b.WithChildren(out)}
	})
}

// BlockByID returns the block with the given id, or false if absent.
func (d *Document) BlockByID(id string) (*block.Block, bool) {
	for _, b := range d.all {
		if b.ID() == id {
			return b, true
		}
	}
	return nil, false
}

// DepthOf returns the nesting depth of the block with the given id.
// Root-level blocks are depth 0. Returns false if the id is absent.
func (d *Document) DepthOf(id string) (int, bool) {
	for i, b := range d.all {
		if b.ID() == id {
			return d.depths[i], true
		}
	}
	return 0, false
}

// ParentOf returns the parent of the block with the given id, or nil for
// root-level or absent ids.
func (d *Document) ParentOf(id string) *block.Block {
	return findParent(d.blocks, nil, id)
}

func findParent(blocks []*block.Block, parent *block.Block, id string) *block.Block {
	for _, b := range blocks {
		if b.ID() == id {
			return parent
		}
		if p := findParent(b.Children(), b, id); p != nil {
			return p
		}
	}
	return nil
}

// siblingList returns the list the identified block lives in: its parent's
// children, or the root list for top-level blocks.
func (d *Document) siblingList(id string) []*block.Block {
	if p := d.ParentOf(id); p != nil {
		return p.Children()
	}
	return d.blocks
}

// SiblingIndex returns the block's index within its sibling list, or -1 if
// the id is absent.
func (d *Document) SiblingIndex(id string) int {
	for i, b := range d.siblingList(id) {
		if b.ID() == id {
			return i
		}
	}
	return -1
}

// PreviousSibling returns the block immediately before the identified one
// in its sibling list, or nil if it is first or absent.
func (d *Document) PreviousSibling(id string) *block.Block {
	sibs := d.siblingList(id)
	for i, b := range sibs {
		if b.ID() == id {
			if i == 0 {
				return nil
			}
			return sibs[i-1]
		}
	}
	return nil
}
