package engine

import (
	"errors"
	"sync"
	"testing"

	"github.com/bullet-to/bullet-editor-sub002/internal/engine/block"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/document"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/policy"
)

func listDoc(texts ...string) *document.Document {
	blocks := make([]*block.Block, 0, len(texts))
	for _, text := range texts {
		blocks = append(blocks, block.NewText(block.TypeBulleted, text))
	}
	return document.New(blocks)
}

func TestNewDefaults(t *testing.T) {
	e := New()

	if got := e.Document().BlockCount(); got != 1 {
		t.Errorf("BlockCount() = %d, want 1", got)
	}
	if got := e.PlainText(); got != "" {
		t.Errorf("PlainText() = %q, want empty", got)
	}
	if e.Policies() == nil {
		t.Error("expected the stock policy table")
	}
}

func TestInsertAndDelete(t *testing.T) {
	e := New()

	changed, err := e.InsertText(0, "Hello, World!")
	if err != nil || !changed {
		t.Fatalf("InsertText = (%v, %v)", changed, err)
	}
	if got := e.PlainText(); got != "Hello, World!" {
		t.Errorf("PlainText() = %q", got)
	}

	if _, err := e.DeleteText(5, 12); err != nil {
		t.Fatal(err)
	}
	if got := e.PlainText(); got != "Hello!" {
		t.Errorf("PlainText() = %q", got)
	}
}

func TestInsertNewlineSplitsBlock(t *testing.T) {
	e := New(WithDocument(listDoc("firstsecond")))

	if _, err := e.InsertText(5, "\n"); err != nil {
		t.Fatal(err)
	}
	d := e.Document()
	if d.BlockCount() != 2 {
		t.Fatalf("BlockCount() = %d, want 2", d.BlockCount())
	}
	if d.PlainText() != "first\nsecond" {
		t.Errorf("PlainText() = %q", d.PlainText())
	}
}

func TestIndentOutdent(t *testing.T) {
	e := New(WithDocument(listDoc("first", "second")))

	moved, err := e.Indent(1)
	if err != nil || !moved {
		t.Fatalf("Indent = (%v, %v)", moved, err)
	}
	if depth := e.Document().DepthAt(1); depth != 1 {
		t.Errorf("DepthAt(1) = %d, want 1", depth)
	}

	moved, err = e.Outdent(1)
	if err != nil || !moved {
		t.Fatalf("Outdent = (%v, %v)", moved, err)
	}
	if depth := e.Document().DepthAt(1); depth != 0 {
		t.Errorf("DepthAt(1) = %d, want 0", depth)
	}
}

func TestPolicyRejectionReportsUnchanged(t *testing.T) {
	e := New(WithDocument(listDoc("only")))

	before := e.Document()
	moved, err := e.Indent(0) // no previous sibling
	if err != nil {
		t.Fatal(err)
	}
	if moved {
		t.Error("rejected indent must report unchanged")
	}
	if e.Document() != before {
		t.Error("rejected indent must keep the current revision")
	}
}

func TestCustomPolicies(t *testing.T) {
	// A table where bulleted items refuse children.
	tbl := policy.Table{
		block.TypeBulleted: {CanBeChild: true, CanHaveChildren: false},
	}
	e := New(WithDocument(listDoc("first", "second")), WithPolicies(tbl))

	moved, err := e.Indent(1)
	if err != nil {
		t.Fatal(err)
	}
	if moved {
		t.Error("indent must respect the custom table")
	}
}

func TestChangeBlockType(t *testing.T) {
	e := New(WithDocument(listDoc("title")))

	changed, err := e.ChangeBlockType(0, block.TypeHeading1)
	if err != nil || !changed {
		t.Fatalf("ChangeBlockType = (%v, %v)", changed, err)
	}
	if got := e.Document().Block(0).Type(); got != block.TypeHeading1 {
		t.Errorf("Type() = %q", got)
	}
}

func TestStyles(t *testing.T) {
	e := New(WithDocument(listDoc("hello world")))

	if _, err := e.ApplyStyle(0, 5, block.StyleBold); err != nil {
		t.Fatal(err)
	}
	styles := e.Document().StylesAt(3)
	if len(styles) != 1 || styles[0] != block.StyleBold {
		t.Errorf("StylesAt(3) = %v", styles)
	}

	if _, err := e.RemoveStyle(0, 5, block.StyleBold); err != nil {
		t.Fatal(err)
	}
	if styles := e.Document().StylesAt(3); len(styles) != 0 {
		t.Errorf("StylesAt(3) = %v after removal", styles)
	}
}

func TestReadOnly(t *testing.T) {
	e := New(WithDocument(listDoc("first", "second")), WithReadOnly())

	if _, err := e.InsertText(0, "x"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("InsertText err = %v, want ErrReadOnly", err)
	}
	if _, err := e.Indent(1); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Indent err = %v, want ErrReadOnly", err)
	}
	if got := e.PlainText(); got != "first\nsecond" {
		t.Errorf("PlainText() = %q, want untouched content", got)
	}
}

func TestExtractRange(t *testing.T) {
	e := New(WithDocument(listDoc("first", "second")))

	got := e.ExtractRange(0, 5)
	if len(got) != 1 || got[0].PlainText() != "first" {
		t.Fatalf("ExtractRange = %v", got)
	}
	if got[0].ID() == e.Document().Block(0).ID() {
		t.Error("extracted copies must carry fresh ids")
	}
}

// Snapshots stay valid while writers run.
func TestConcurrentReadersAndWriters(t *testing.T) {
	e := New(WithDocument(listDoc("first", "second")))
	snapshot := e.Document()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if n%2 == 0 {
					e.InsertText(0, "x")
				} else {
					_ = e.PlainText()
					_ = e.Document().BlockCount()
				}
			}
		}(i)
	}
	wg.Wait()

	if snapshot.PlainText() != "first\nsecond" {
		t.Error("earlier revision changed under concurrent edits")
	}
	if len(e.PlainText()) != len("first\nsecond")+4*50 {
		t.Errorf("PlainText length = %d", len(e.PlainText()))
	}
}
