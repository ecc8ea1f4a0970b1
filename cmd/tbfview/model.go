package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/electrodiux/tbf/lib/tbfinspect"
)

// focusRegion identifies which pane has keyboard focus.
type focusRegion int

const (
	focusTree focusRegion = iota
	focusDetail
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(lipgloss.Color("212"))
	headerStyle      = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)

// model is the top-level bubbletea model for tbfview: a tree pane on
// the left listing every field in the buffer (flattened and indented)
// and a detail pane on the right showing the selected field's value.
type model struct {
	list    list.Model
	detail  viewport.Model
	focus   focusRegion
	width   int
	height  int
	title   string
}

func newModel(title string, nodes []tbfinspect.Node) model {
	items := make([]list.Item, 0)
	for _, it := range flatten(nodes, 0, nil) {
		items = append(items, it)
	}

	l := list.New(items, treeDelegate{}, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)

	d := viewport.New(0, 0)

	m := model{list: l, detail: d, focus: focusTree, title: title}
	m.updateDetail()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.focus == focusTree {
				m.focus = focusDetail
			} else {
				m.focus = focusTree
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusTree {
		previous := m.list.Index()
		m.list, cmd = m.list.Update(msg)
		if m.list.Index() != previous {
			m.updateDetail()
		}
	} else {
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	treeBox := paneStyle
	detailBox := paneStyle
	if m.focus == focusTree {
		treeBox = focusedPaneStyle
	} else {
		detailBox = focusedPaneStyle
	}

	left := treeBox.Width(m.list.Width()).Height(m.list.Height()).Render(m.list.View())
	right := detailBox.Width(m.detail.Width).Height(m.detail.Height).Render(m.detail.View())

	header := headerStyle.Render(fmt.Sprintf("tbfview — %s (tab to switch panes, q to quit)", m.title))
	return lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
}

func (m *model) layout() {
	listWidth := m.width / 2
	paneHeight := m.height - 4
	if paneHeight < 1 {
		paneHeight = 1
	}

	m.list.SetSize(listWidth-4, paneHeight)
	m.detail.Width = m.width - listWidth - 4
	m.detail.Height = paneHeight
}

func (m *model) updateDetail() {
	selected, ok := m.list.SelectedItem().(treeItem)
	if !ok {
		m.detail.SetContent("(no field selected)")
		return
	}

	if selected.value == "" {
		m.detail.SetContent(fmt.Sprintf("%s\n\ntype: %s\n(container — see its children in the tree)", selected.label, selected.typ))
		return
	}
	m.detail.SetContent(fmt.Sprintf("%s\n\ntype: %s\nvalue: %s", selected.label, selected.typ, selected.value))
}
