package block

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Style identifies a character-level style applied to a run of text.
type Style string

// Stock styles. The set is open: hosts may define their own keys.
const (
	StyleBold          Style = "bold"
	StyleItalic        Style = "italic"
	StyleUnderline     Style = "underline"
	StyleStrikethrough Style = "strikethrough"
	StyleCode          Style = "code"
	StyleLink          Style = "link"
)

// AttrHref is the attribute key carrying the link target for StyleLink.
const AttrHref = "href"

// Segment is an immutable styled run of text within a block.
// The zero value is an empty segment with no styles.
type Segment struct {
	text   string
	styles map[Style]struct{}
	attrs  map[string]string
}

// NewSegment creates a segment with the given text and styles.
func NewSegment(text string, styles ...Style) Segment {
	return NewSegmentAttrs(text, styles, nil)
}

// NewSegmentAttrs creates a segment with styles and a data attribute map.
// The style slice and attribute map are copied; callers keep ownership.
func NewSegmentAttrs(text string, styles []Style, attrs map[string]string) Segment {
	s := Segment{text: text}
	if len(styles) > 0 {
		s.styles = make(map[Style]struct{}, len(styles))
		for _, st := range styles {
			s.styles[st] = struct{}{}
		}
	}
	if len(attrs) > 0 {
		s.attrs = make(map[string]string, len(attrs))
		for k, v := range attrs {
			s.attrs[k] = v
		}
	}
	return s
}

// Text returns the segment's text.
func (s Segment) Text() string {
	return s.text
}

// Len returns the segment's length in runes.
func (s Segment) Len() int {
	return utf8.RuneCountInString(s.text)
}

// IsEmpty returns true if the segment has no text.
func (s Segment) IsEmpty() bool {
	return s.text == ""
}

// HasStyle returns true if the segment carries the given style.
func (s Segment) HasStyle(st Style) bool {
	_, ok := s.styles[st]
	return ok
}

// Styles returns the segment's styles in sorted order.
func (s Segment) Styles() []Style {
	if len(s.styles) == 0 {
		return nil
	}
	out := make([]Style, 0, len(s.styles))
	for st := range s.styles {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Attr returns the value of a data attribute.
func (s Segment) Attr(key string) (string, bool) {
	v, ok := s.attrs[key]
	return v, ok
}

// Attrs returns a copy of the segment's attribute map.
func (s Segment) Attrs() map[string]string {
	if len(s.attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(s.attrs))
	for k, v := range s.attrs {
		out[k] = v
	}
	return out
}

// WithText returns a segment with the same styling and different text.
func (s Segment) WithText(text string) Segment {
	s.text = text
	return s
}

// WithStyle returns a segment that additionally carries the given style.
func (s Segment) WithStyle(st Style) Segment {
	if s.HasStyle(st) {
		return s
	}
	styles := make(map[Style]struct{}, len(s.styles)+1)
	for k := range s.styles {
		styles[k] = struct{}{}
	}
	styles[st] = struct{}{}
	s.styles = styles
	return s
}

// WithoutStyle returns a segment without the given style.
func (s Segment) WithoutStyle(st Style) Segment {
	if !s.HasStyle(st) {
		return s
	}
	styles := make(map[Style]struct{}, len(s.styles)-1)
	for k := range s.styles {
		if k != st {
			styles[k] = struct{}{}
		}
	}
	if len(styles) == 0 {
		styles = nil
	}
	s.styles = styles
	return s
}

// Slice returns the sub-segment covering the rune range [from, to),
// keeping the styling. Out-of-range bounds are clamped.
func (s Segment) Slice(from, to int) Segment {
	runes := []rune(s.text)
	if from < 0 {
		from = 0
	}
	if to > len(runes) {
		to = len(runes)
	}
	if from >= to {
		return s.WithText("")
	}
	return s.WithText(string(runes[from:to]))
}

// SameStyling returns true if two segments carry identical styles and
// attributes. Adjacent segments with the same styling are merged by
// MergeSegments.
func (s Segment) SameStyling(other Segment) bool {
	if len(s.styles) != len(other.styles) || len(s.attrs) != len(other.attrs) {
		return false
	}
	for st := range s.styles {
		if _, ok := other.styles[st]; !ok {
			return false
		}
	}
	for k, v := range s.attrs {
		if ov, ok := other.attrs[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Equal returns true if two segments have the same text and styling.
func (s Segment) Equal(other Segment) bool {
	return s.text == other.text && s.SameStyling(other)
}

// MergeSegments normalizes a segment list: empty-text segments are dropped
// and adjacent segments with identical styling are folded together. The
// result's concatenated text equals the input's, and merging an already
// normalized list returns an equivalent list.
func MergeSegments(segs []Segment) []Segment {
	var out []Segment
	for _, seg := range segs {
		if seg.IsEmpty() {
			continue
		}
		if n := len(out); n > 0 && out[n-1].SameStyling(seg) {
			out[n-1] = out[n-1].WithText(out[n-1].text + seg.text)
			continue
		}
		out = append(out, seg)
	}
	return out
}

// ConcatText returns the concatenated text of a segment list.
func ConcatText(segs []Segment) string {
	var sb strings.Builder
	for _, seg := range segs {
		sb.WriteString(seg.text)
	}
	return sb.String()
}
