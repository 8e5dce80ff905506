package block

import "strings"

// Type identifies the structural kind of a block. The set is open: hosts
// may register custom types through the policy table.
type Type string

// Stock block types.
const (
	TypeParagraph Type = "paragraph"
	TypeHeading1  Type = "heading1"
	TypeHeading2  Type = "heading2"
	TypeHeading3  Type = "heading3"
	TypeBulleted  Type = "bulleted"
	TypeNumbered  Type = "numbered"
	TypeTodo      Type = "todo"
	TypeQuote     Type = "quote"
	TypeCode      Type = "code"
)

// Block is an immutable node in the document tree. Identity is carried by
// the id alone: two blocks are the same node iff their ids match, never by
// structural position.
//
// Accessors that return slices or maps share the block's internal storage;
// callers must treat them as read-only. Segment values are themselves
// immutable, so sharing is safe as long as the containers are not modified.
type Block struct {
	id       string
	typ      Type
	segments []Segment
	children []*Block
	metadata map[string]any
	length   int // cached rune count of the concatenated segment text
}

// Option configures a Block under construction.
type Option func(*Block)

// WithID sets an explicit id instead of generating a fresh one.
func WithID(id string) Option {
	return func(b *Block) {
		b.id = id
	}
}

// WithChildren sets the block's child list. The slice is copied.
func WithChildren(children []*Block) Option {
	return func(b *Block) {
		b.children = copyBlocks(children)
	}
}

// WithMetadata sets the block's metadata. The map is copied.
func WithMetadata(md map[string]any) Option {
	return func(b *Block) {
		b.metadata = copyMetadata(md)
	}
}

// New creates a block of the given type. The segment list is normalized
// with MergeSegments. A fresh id is generated unless WithID is supplied.
func New(typ Type, segments []Segment, opts ...Option) *Block {
	b := &Block{typ: typ, segments: MergeSegments(segments)}
	for _, opt := range opts {
		opt(b)
	}
	if b.id == "" {
		b.id = NewID()
	}
	b.length = segmentLength(b.segments)
	return b
}

// NewText creates a block holding a single unstyled text run.
func NewText(typ Type, text string) *Block {
	return New(typ, []Segment{NewSegment(text)})
}

// ID returns the block's unique id.
func (b *Block) ID() string {
	return b.id
}

// Type returns the block's structural type.
func (b *Block) Type() Type {
	return b.typ
}

// Segments returns the block's normalized segment list. Read-only.
func (b *Block) Segments() []Segment {
	return b.segments
}

// Children returns the block's child list. Read-only.
func (b *Block) Children() []*Block {
	return b.children
}

// Metadata returns a copy of the block's metadata map.
func (b *Block) Metadata() map[string]any {
	return copyMetadata(b.metadata)
}

// MetadataValue returns a single metadata entry.
func (b *Block) MetadataValue(key string) (any, bool) {
	v, ok := b.metadata[key]
	return v, ok
}

// PlainText returns the concatenated text of the block's segments.
func (b *Block) PlainText() string {
	var sb strings.Builder
	for _, seg := range b.segments {
		sb.WriteString(seg.Text())
	}
	return sb.String()
}

// Length returns the rune count of the block's plain text.
func (b *Block) Length() int {
	return b.length
}

// WithSegments returns a block with the same id, type, children and
// metadata, and a new normalized segment list.
func (b *Block) WithSegments(segments []Segment) *Block {
	nb := *b
	nb.segments = MergeSegments(segments)
	nb.length = segmentLength(nb.segments)
	return &nb
}

// WithChildren returns a block with the same id, type, segments and
// metadata, and a new child list. The slice is copied.
func (b *Block) WithChildren(children []*Block) *Block {
	nb := *b
	nb.children = copyBlocks(children)
	return &nb
}

// WithType returns a block with the same id, segments, children and
// metadata, and a different type.
func (b *Block) WithType(typ Type) *Block {
	nb := *b
	nb.typ = typ
	return &nb
}

// WithMetadataValue returns a block with one metadata entry added or
// replaced.
func (b *Block) WithMetadataValue(key string, value any) *Block {
	nb := *b
	md := copyMetadata(b.metadata)
	if md == nil {
		md = make(map[string]any, 1)
	}
	md[key] = value
	nb.metadata = md
	return &nb
}

func segmentLength(segs []Segment) int {
	n := 0
	for _, seg := range segs {
		n += seg.Len()
	}
	return n
}

func copyBlocks(blocks []*Block) []*Block {
	if len(blocks) == 0 {
		return nil
	}
	out := make([]*Block, len(blocks))
	copy(out, blocks)
	return out
}

func copyMetadata(md map[string]any) map[string]any {
	if len(md) == 0 {
		return nil
	}
	out := make(map[string]any, len(md))
	for k, v := range md {
		out[k] = v
	}
	return out
}
