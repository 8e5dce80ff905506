package document

import "github.com/bullet-to/bullet-editor-sub002/internal/engine/block"

// taggedBlock pairs an extracted copy with its source nesting depth.
type taggedBlock struct {
	blk   *block.Block
	depth int
}

// ExtractRange copies the part of the document covered by the global rune
// range [start, end) into a standalone forest. Each covered block is copied
// with a freshly generated id, the source block's type and metadata, and
// its segment list sliced to the locally overlapping character range with
// styling preserved. The copies are reassembled into an equivalent subtree
// shape from their source depths, so relative nesting survives even when
// the range starts or ends mid-subtree.
//
// Returns nil for start >= end, negative start or an empty document.
func (d *Document) ExtractRange(start, end int) []*block.Block {
	if start < 0 || start >= end || len(d.all) == 0 {
		return nil
	}
	from := d.BlockAt(start)
	to := d.BlockAt(end)

	ids := d.idSource()
	tagged := make([]taggedBlock, 0, to.Block-from.Block+1)
	for i := from.Block; i <= to.Block; i++ {
		src := d.all[i]
		lo, hi := 0, src.Length()
		if i == from.Block {
			lo = from.Offset
		}
		if i == to.Block {
			hi = to.Offset
		}
		cp := block.New(src.Type(), sliceSegments(src.Segments(), lo, hi),
			block.WithID(ids.NewID()), block.WithMetadata(src.Metadata()))
		tagged = append(tagged, taggedBlock{blk: cp, depth: d.depths[i]})
	}
	return buildForest(tagged)
}

// sliceSegments cuts a segment list to the local rune range [lo, hi),
// dropping segments fully outside and character-slicing the partially
// overlapping ones.
func sliceSegments(segs []block.Segment, lo, hi int) []block.Segment {
	var out []block.Segment
	off := 0
	for _, seg := range segs {
		segLo, segHi := off, off+seg.Len()
		off = segHi
		if segHi <= lo || segLo >= hi {
			continue
		}
		from, to := segLo, segHi
		if lo > from {
			from = lo
		}
		if hi < to {
			to = hi
		}
		out = append(out, seg.Slice(from-segLo, to-segLo))
	}
	return out
}

// buildForest reassembles a depth-tagged flat list into a forest: entries
// at the minimum depth become top level, each followed by its deeper
// descendants, recursively. A leading run deeper than the minimum (a range
// that starts mid-subtree) becomes top level on its own.
func buildForest(entries []taggedBlock) []*block.Block {
	if len(entries) == 0 {
		return nil
	}
	min := entries[0].depth
	for _, e := range entries[1:] {
		if e.depth < min {
			min = e.depth
		}
	}
	var out []*block.Block
	for i := 0; i < len(entries); {
		j := i + 1
		for j < len(entries) && entries[j].depth > min {
			j++
		}
		if entries[i].depth == min {
			head := entries[i].blk
			if kids := buildForest(entries[i+1 : j]); len(kids) > 0 {
				head = head.WithChildren(kids)
			}
			out = append(out, head)
		} else {
			out = append(out, buildForest(entries[i:j])...)
		}
		i = j
	}
	return out
}
