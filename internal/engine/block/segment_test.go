package block

import (
	"testing"
	"testing/quick"
)

func TestNewSegment(t *testing.T) {
	s := NewSegment("hello", StyleBold, StyleItalic)
	if s.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", s.Text(), "hello")
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
	if !s.HasStyle(StyleBold) || !s.HasStyle(StyleItalic) {
		t.Error("expected bold and italic styles")
	}
	if s.HasStyle(StyleCode) {
		t.Error("unexpected code style")
	}
}

func TestSegmentLenRunes(t *testing.T) {
	s := NewSegment("héllo 世界")
	if s.Len() != 8 {
		t.Errorf("Len() = %d, want 8 (runes, not bytes)", s.Len())
	}
}

func TestSegmentAttrs(t *testing.T) {
	attrs := map[string]string{AttrHref: "https://example.com"}
	s := NewSegmentAttrs("link", []Style{StyleLink}, attrs)

	if v, ok := s.Attr(AttrHref); !ok || v != "https://example.com" {
		t.Errorf("Attr(href) = %q, %v", v, ok)
	}

	// The constructor copies; mutating the input must not leak in.
	attrs[AttrHref] = "changed"
	if v, _ := s.Attr(AttrHref); v != "https://example.com" {
		t.Errorf("attribute map not copied: got %q", v)
	}
}

func TestSegmentSlice(t *testing.T) {
	tests := []struct {
		name string
		text string
		from int
		to   int
		want string
	}{
		{"interior", "hello", 1, 3, "el"},
		{"full", "hello", 0, 5, "hello"},
		{"clamp low", "hello", -3, 2, "he"},
		{"clamp high", "hello", 3, 99, "lo"},
		{"empty range", "hello", 3, 3, ""},
		{"inverted range", "hello", 4, 2, ""},
		{"unicode", "héllo", 1, 3, "él"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSegment(tt.text, StyleBold).Slice(tt.from, tt.to)
			if got.Text() != tt.want {
				t.Errorf("Slice(%d, %d) = %q, want %q", tt.from, tt.to, got.Text(), tt.want)
			}
			if !got.HasStyle(StyleBold) {
				t.Error("Slice dropped styling")
			}
		})
	}
}

func TestSegmentWithStyleImmutable(t *testing.T) {
	s := NewSegment("x")
	s2 := s.WithStyle(StyleBold)
	if s.HasStyle(StyleBold) {
		t.Error("WithStyle modified the receiver")
	}
	if !s2.HasStyle(StyleBold) {
		t.Error("WithStyle result missing the style")
	}
	s3 := s2.WithoutStyle(StyleBold)
	if !s2.HasStyle(StyleBold) {
		t.Error("WithoutStyle modified the receiver")
	}
	if s3.HasStyle(StyleBold) {
		t.Error("WithoutStyle result kept the style")
	}
}

func TestSameStyling(t *testing.T) {
	tests := []struct {
		name string
		a    Segment
		b    Segment
		want bool
	}{
		{"both plain", NewSegment("a"), NewSegment("b"), true},
		{"same style", NewSegment("a", StyleBold), NewSegment("b", StyleBold), true},
		{"different style", NewSegment("a", StyleBold), NewSegment("b", StyleItalic), false},
		{"style count", NewSegment("a", StyleBold, StyleItalic), NewSegment("b", StyleBold), false},
		{
			"same attrs",
			NewSegmentAttrs("a", []Style{StyleLink}, map[string]string{AttrHref: "u"}),
			NewSegmentAttrs("b", []Style{StyleLink}, map[string]string{AttrHref: "u"}),
			true,
		},
		{
			"different attrs",
			NewSegmentAttrs("a", []Style{StyleLink}, map[string]string{AttrHref: "u1"}),
			NewSegmentAttrs("b", []Style{StyleLink}, map[string]string{AttrHref: "u2"}),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.SameStyling(tt.b); got != tt.want {
				t.Errorf("SameStyling = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeSegments(t *testing.T) {
	tests := []struct {
		name string
		in   []Segment
		want []string // expected texts after merging
	}{
		{"nil", nil, nil},
		{"drops empty", []Segment{NewSegment(""), NewSegment("a"), NewSegment("")}, []string{"a"}},
		{"folds same styling", []Segment{NewSegment("hel"), NewSegment("lo")}, []string{"hello"}},
		{
			"keeps different styling",
			[]Segment{NewSegment("a"), NewSegment("b", StyleBold)},
			[]string{"a", "b"},
		},
		{
			"folds across dropped empty",
			[]Segment{NewSegment("a"), NewSegment("", StyleBold), NewSegment("b")},
			[]string{"ab"},
		},
		{
			"attrs block folding",
			[]Segment{
				NewSegmentAttrs("a", []Style{StyleLink}, map[string]string{AttrHref: "u1"}),
				NewSegmentAttrs("b", []Style{StyleLink}, map[string]string{AttrHref: "u2"}),
			},
			[]string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeSegments(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d segments, want %d", len(got), len(tt.want))
			}
			for i, text := range tt.want {
				if got[i].Text() != text {
					t.Errorf("segment %d = %q, want %q", i, got[i].Text(), text)
				}
			}
		})
	}
}

// TestMergeSegmentsProperties checks the normalization contract: merging
// preserves the concatenated text, never leaves empty segments or two
// adjacent segments with identical styling, and is idempotent.
func TestMergeSegmentsProperties(t *testing.T) {
	f := func(texts []string, boldMask uint8) bool {
		segs := make([]Segment, 0, len(texts))
		for i, text := range texts {
			if boldMask&(1<<(i%8)) != 0 {
				segs = append(segs, NewSegment(text, StyleBold))
			} else {
				segs = append(segs, NewSegment(text))
			}
		}

		merged := MergeSegments(segs)
		if ConcatText(merged) != ConcatText(segs) {
			return false
		}
		for i, seg := range merged {
			if seg.IsEmpty() {
				return false
			}
			if i > 0 && merged[i-1].SameStyling(seg) {
				return false
			}
		}

		again := MergeSegments(merged)
		if len(again) != len(merged) {
			return false
		}
		for i := range again {
			if !again[i].Equal(merged[i]) {
				return false
			}
		}
		return true
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
