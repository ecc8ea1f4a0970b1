package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/electrodiux/tbf/lib/tbfinspect"
)

// treeItem is one flattened row of a [tbfinspect.Node] tree: enough
// to render an indented line in the list pane and the full value in
// the detail pane when selected.
type treeItem struct {
	depth int
	label string
	typ   string
	value string // formatted with fmt.Sprintf("%v", ...); "" for containers
}

// FilterValue implements [list.Item].
func (i treeItem) FilterValue() string { return i.label }

// flatten walks nodes depth-first, producing one treeItem per field
// in the same order [tbfinspect.Dump] visited them, indented by
// nesting depth.
func flatten(nodes []tbfinspect.Node, depth int, out []treeItem) []treeItem {
	for _, n := range nodes {
		value := ""
		if n.Children == nil {
			value = fmt.Sprintf("%v", n.Value)
		}
		out = append(out, treeItem{depth: depth, label: n.Tag, typ: n.Type, value: value})
		if n.Children != nil {
			out = flatten(n.Children, depth+1, out)
		}
	}
	return out
}

var (
	normalStyle   = lipgloss.NewStyle()
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	typeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// treeDelegate renders a treeItem as an indented "label: type" line,
// highlighting the selected row. Modeled on the teacher's preference
// for a minimal custom delegate over [list.DefaultDelegate] when the
// row content isn't a title/description pair.
type treeDelegate struct{}

func (d treeDelegate) Height() int                               { return 1 }
func (d treeDelegate) Spacing() int                              { return 0 }
func (d treeDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d treeDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(treeItem)
	if !ok {
		return
	}
	indent := strings.Repeat("  ", item.depth)
	line := fmt.Sprintf("%s%s: %s", indent, item.label, typeStyle.Render(item.typ))
	// Tag names are arbitrary-length; truncate rather than wrap.
	if width := m.Width(); width > 3 {
		line = ansi.Truncate(line, width-2, "…")
	}

	if index == m.Index() {
		fmt.Fprint(w, selectedStyle.Render("> "+line))
		return
	}
	fmt.Fprint(w, normalStyle.Render("  "+line))
}
