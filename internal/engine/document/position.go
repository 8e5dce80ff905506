package document

import (
	"fmt"

	"github.com/bullet-to/bullet-editor-sub002/internal/engine/block"
)

// Position locates a point in the document: an index into the flattened
// block list plus a rune offset within that block's own text.
type Position struct {
	Block  int // index into AllBlocks
	Offset int // rune offset within the block, 0..block.Length()
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Block, p.Offset)
}

// Boundary selects which side wins when an offset falls exactly between two
// segments.
type Boundary int

const (
	// BoundaryBackward resolves a segment boundary to the earlier segment.
	BoundaryBackward Boundary = iota
	// BoundaryForward resolves a segment boundary to the later segment.
	BoundaryForward
)

// BlockAt converts a global offset into a Position. Each block occupies its
// rune length plus one separating newline in the linear text. Negative
// offsets clamp to the document start; offsets past the end clamp to the
// end of the last block.
func (d *Document) BlockAt(offset int) Position {
	if len(d.all) == 0 || offset < 0 {
		return Position{}
	}
	remaining := offset
	for i, b := range d.all {
		if remaining <= b.Length() {
			return Position{Block: i, Offset: remaining}
		}
		remaining -= b.Length() + 1
	}
	last := len(d.all) - 1
	return Position{Block: last, Offset: d.all[last].Length()}
}

// GlobalOffset converts a Position back into a global offset. The exact
// inverse of BlockAt for in-range positions; out-of-range fields are
// clamped first.
func (d *Document) GlobalOffset(pos Position) int {
	if len(d.all) == 0 {
		return 0
	}
	idx := clampIndex(pos.Block, len(d.all))
	local := pos.Offset
	if local < 0 {
		local = 0
	}
	if n := d.all[idx].Length(); local > n {
		local = n
	}
	offset := local
	for i := 0; i < idx; i++ {
		offset += d.all[i].Length() + 1
	}
	return offset
}

// SegmentAt returns the segment owning the given global offset. Offsets
// strictly inside a segment are unambiguous. When the offset falls exactly
// on the boundary between two segments, BoundaryBackward resolves to the
// earlier segment and BoundaryForward to the later one; at the end of the
// last segment, forward falls back to it. The very start of a block always
// resolves to its first segment. Returns false only when the owning block
// has no segments.
func (d *Document) SegmentAt(offset int, boundary Boundary) (block.Segment, bool) {
	if len(d.all) == 0 {
		return block.Segment{}, false
	}
	pos := d.BlockAt(offset)
	segs := d.all[pos.Block].Segments()
	if len(segs) == 0 {
		return block.Segment{}, false
	}
	end := 0
	for i, seg := range segs {
		end += seg.Len()
		if pos.Offset < end {
			return segs[i], true
		}
		if pos.Offset == end && (boundary == BoundaryBackward || i == len(segs)-1) {
			return segs[i], true
		}
	}
	return segs[len(segs)-1], true
}

// StylesAt returns the styles in effect at the given global offset: those
// of the backward-boundary segment, so a cursor sitting right after a
// styled run keeps reporting that style — the style typing there would
// inherit. Returns nil when the owning block is empty.
func (d *Document) StylesAt(offset int) []block.Style {
	seg, ok := d.SegmentAt(offset, BoundaryBackward)
	if !ok {
		return nil
	}
	return seg.Styles()
}
