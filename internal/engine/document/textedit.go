package document

import (
	"strings"

	"github.com/bullet-to/bullet-editor-sub002/internal/engine/block"
)

// InsertText inserts text at a global offset, clamped into range. Inserted
// characters inherit the styling of the segment ending at the insertion
// point (the backward-boundary rule, matching StylesAt). A newline in the
// text splits the target block: the block keeps its id, metadata and the
// text before the split; the remainder moves into fresh sibling blocks of
// the same type, with the original children re-attached to the last one so
// the linear text order is preserved.
func (d *Document) InsertText(offset int, text string) *Document {
	if text == "" || len(d.all) == 0 {
		return d
	}
	pos := d.BlockAt(offset)
	target := d.all[pos.Block]
	segs := target.Segments()

	head := sliceSegments(segs, 0, pos.Offset)
	tail := sliceSegments(segs, pos.Offset, target.Length())
	styled := func(s string) block.Segment { return styledLike(segs, pos.Offset, s) }

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		merged := make([]block.Segment, 0, len(head)+1+len(tail))
		merged = append(merged, head...)
		merged = append(merged, styled(parts[0]))
		merged = append(merged, tail...)
		return d.Replace(target.ID(), target.WithSegments(merged))
	}

	ids := d.idSource()
	repl := make([]*block.Block, 0, len(parts))
	first := target.WithSegments(append(head, styled(parts[0]))).WithChildren(nil)
	repl = append(repl, first)
	for _, part := range parts[1 : len(parts)-1] {
		repl = append(repl, block.New(target.Type(),
			[]block.Segment{styled(part)}, block.WithID(ids.NewID())))
	}
	lastSegs := append([]block.Segment{styled(parts[len(parts)-1])}, tail...)
	repl = append(repl, block.New(target.Type(), lastSegs,
		block.WithID(ids.NewID()), block.WithChildren(target.Children())))

	return d.rewrite(target.ID(), func(*block.Block) []*block.Block {
		return repl
	})
}

// DeleteText removes the global rune range [start, end), clamped into
// range. A range spanning several blocks merges the first and last covered
// blocks' remaining text and deletes the blocks in between; children of
// deleted blocks outside the range are promoted rather than discarded.
func (d *Document) DeleteText(start, end int) *Document {
	if len(d.all) == 0 {
		return d
	}
	if start < 0 {
		start = 0
	}
	if tl := d.TextLength(); end > tl {
		end = tl
	}
	if start >= end {
		return d
	}
	from := d.BlockAt(start)
	to := d.BlockAt(end)

	if from.Block == to.Block {
		b := d.all[from.Block]
		segs := append(sliceSegments(b.Segments(), 0, from.Offset),
			sliceSegments(b.Segments(), to.Offset, b.Length())...)
		return d.Replace(b.ID(), b.WithSegments(segs))
	}

	headB := d.all[from.Block]
	tailB := d.all[to.Block]
	merged := append(sliceSegments(headB.Segments(), 0, from.Offset),
		sliceSegments(tailB.Segments(), to.Offset, tailB.Length())...)

	covered := make([]string, 0, to.Block-from.Block)
	for i := from.Block + 1; i <= to.Block; i++ {
		covered = append(covered, d.all[i].ID())
	}

	nd := d.Replace(headB.ID(), headB.WithSegments(merged))
	for _, id := range covered {
		nd = nd.RemovePromoteChildren(id)
	}
	return nd
}

// ApplyStyle adds a style over the global rune range [start, end), clamped
// into range. Partially covered segments are split; segment lists are
// re-normalized afterwards.
func (d *Document) ApplyStyle(start, end int, st block.Style) *Document {
	return d.restyleRange(start, end, st, true)
}

// RemoveStyle removes a style over the global rune range [start, end),
// clamped into range.
func (d *Document) RemoveStyle(start, end int, st block.Style) *Document {
	return d.restyleRange(start, end, st, false)
}

func (d *Document) restyleRange(start, end int, st block.Style, add bool) *Document {
	if len(d.all) == 0 {
		return d
	}
	if start < 0 {
		start = 0
	}
	if tl := d.TextLength(); end > tl {
		end = tl
	}
	if start >= end {
		return d
	}
	from := d.BlockAt(start)
	to := d.BlockAt(end)

	nd := d
	for i := from.Block; i <= to.Block; i++ {
		b := d.all[i]
		lo, hi := 0, b.Length()
		if i == from.Block {
			lo = from.Offset
		}
		if i == to.Block {
			hi = to.Offset
		}
		if lo >= hi {
			continue
		}
		nd = nd.Replace(b.ID(), b.WithSegments(restyleSegments(b.Segments(), lo, hi, st, add)))
	}
	return nd
}

// restyleSegments rewrites the local rune range [lo, hi) of a segment list
// with the style added or removed, splitting partially covered segments.
func restyleSegments(segs []block.Segment, lo, hi int, st block.Style, add bool) []block.Segment {
	var out []block.Segment
	off := 0
	for _, seg := range segs {
		segLo, segHi := off, off+seg.Len()
		off = segHi
		if segHi <= lo || segLo >= hi {
			out = append(out, seg)
			continue
		}
		from, to := lo-segLo, hi-segLo
		if from < 0 {
			from = 0
		}
		if to > seg.Len() {
			to = seg.Len()
		}
		if from > 0 {
			out = append(out, seg.Slice(0, from))
		}
		mid := seg.Slice(from, to)
		if add {
			mid = mid.WithStyle(st)
		} else {
			mid = mid.WithoutStyle(st)
		}
		out = append(out, mid)
		if to < seg.Len() {
			out = append(out, seg.Slice(to, seg.Len()))
		}
	}
	return out
}

// styledLike builds a segment carrying the styling in effect at the given
// local offset: the styling of the segment ending there, or plain text when
// the list is empty.
func styledLike(segs []block.Segment, local int, text string) block.Segment {
	end := 0
	for _, seg := range segs {
		end += seg.Len()
		if local <= end {
			return seg.WithText(text)
		}
	}
	return block.NewSegment(text)
}
