package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bullet-to/bullet-editor-sub002/internal/engine"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/block"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/document"
	"github.com/bullet-to/bullet-editor-sub002/internal/engine/policy"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	statusStyle  = lipgloss.NewStyle().Faint(true)
)

type model struct {
	editor *engine.Editor
	cursor int // flat block index
	status string
}

func newModel(table policy.Table) model {
	blocks := []*block.Block{
		block.NewText(block.TypeHeading1, "Blockdoc"),
		block.NewText(block.TypeParagraph, "Tab indents, shift+tab outdents, 1/p/b retype."),
		block.NewText(block.TypeBulleted, "first item"),
		block.NewText(block.TypeBulleted, "second item"),
		block.NewText(block.TypeBulleted, "third item"),
	}
	ed := engine.New(
		engine.WithDocument(document.New(blocks)),
		engine.WithPolicies(table),
	)
	return model{editor: ed}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status = ""
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.cursor--
	case "down", "j":
		m.cursor++
	case "tab":
		m.structural(func() (bool, error) { return m.editor.Indent(m.cursor) },
			"indent not allowed here")
	case "shift+tab":
		m.structural(func() (bool, error) { return m.editor.Outdent(m.cursor) },
			"already at the top level")
	case "1":
		m.retype(block.TypeHeading1)
	case "p":
		m.retype(block.TypeParagraph)
	case "b":
		m.retype(block.TypeBulleted)
	case "t":
		m.retype(block.TypeTodo)
	case "enter":
		cur := m.editor.Document().Block(m.cursor)
		if cur != nil {
			if added, _ := m.editor.InsertBlockAfter(m.cursor, cur.Type()); added {
				m.cursor++
			}
		}
	case "d":
		m.editor.RemoveBlock(m.cursor)
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
	if last := m.editor.Document().BlockCount() - 1; m.cursor > last {
		m.cursor = last
	}
	return m, nil
}

// structural runs a structural edit and keeps the cursor on the block it
// was on, which may sit at a different flat index afterwards. Rejected
// operations set a status message instead.
func (m *model) structural(apply func() (bool, error), rejected string) {
	target := m.editor.Document().Block(m.cursor)
	moved, err := apply()
	if err != nil || !moved {
		m.status = rejected
		return
	}
	if target == nil {
		return
	}
	for i, b := range m.editor.Document().AllBlocks() {
		if b.ID() == target.ID() {
			m.cursor = i
			return
		}
	}
}

func (m *model) retype(typ block.Type) {
	changed, err := m.editor.ChangeBlockType(m.cursor, typ)
	if err != nil || !changed {
		m.status = "cannot retype to " + string(typ) + " here"
	}
}

func (m model) View() string {
	doc := m.editor.Document()
	var sb strings.Builder
	for i, b := range doc.AllBlocks() {
		line := strings.Repeat("  ", doc.DepthAt(i)) +
			markerStyle.Render(markerFor(b.Type())) + " " + renderText(b)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	help := "↑/↓ move · tab/shift+tab nest · 1/p/b/t retype · enter add · d delete · q quit"
	if m.status != "" {
		help = m.status
	}
	sb.WriteString(statusStyle.Render(help))
	return sb.String()
}

func renderText(b *block.Block) string {
	text := b.PlainText()
	switch b.Type() {
	case block.TypeHeading1, block.TypeHeading2, block.TypeHeading3:
		return headingStyle.Render(text)
	default:
		return text
	}
}

func markerFor(typ block.Type) string {
	switch typ {
	case block.TypeHeading1:
		return "#"
	case block.TypeHeading2:
		return "##"
	case block.TypeHeading3:
		return "###"
	case block.TypeBulleted:
		return "•"
	case block.TypeNumbered:
		return "-"
	case block.TypeTodo:
		return "[ ]"
	case block.TypeQuote:
		return ">"
	case block.TypeCode:
		return "```"
	default:
		return "¶"
	}
}
