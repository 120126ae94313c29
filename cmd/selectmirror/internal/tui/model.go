// Package tui provides the interactive replica demo using BubbleTea.
//
// The model never mutates engine state directly: every key press is
// translated into a document event (a click on a trigger or item), so
// what the screen shows is exactly what the sync engines produced.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/selectmirror/pkg/dom"
	"github.com/go-drift/selectmirror/pkg/selectmirror"
)

// Styles contains reusable lipgloss styles for the TUI.
var Styles = struct {
	Title    lipgloss.Style
	Focused  lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
	Status   lipgloss.Style
	Normal   lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	Focused:  lipgloss.NewStyle().Bold(true),
	Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	Disabled: lipgloss.NewStyle().Faint(true),
	Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	Normal:   lipgloss.NewStyle(),
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Policy key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "previous control"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open/select"),
		),
		Policy: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "latch prevent-native"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model drives the replica demo over one coordinator.
type Model struct {
	engines []*selectmirror.Engine
	focus   int
	cursor  int
	status  string
	keys    keyMap
}

// NewModel builds the demo model and hooks the coordinator's change
// callback into the status line.
func NewModel(c *selectmirror.Coordinator) *Model {
	m := &Model{
		engines: c.Engines(),
		keys:    defaultKeyMap(),
		status:  "no changes yet",
	}
	c.OnChange(func(ev selectmirror.ChangeEvent) {
		label := ev.SelectedTarget.Text()
		if v, ok := ev.Data.Get("value"); ok {
			m.status = fmt.Sprintf("change: %s (value=%v)", label, v)
			return
		}
		m.status = "change: " + label
	})
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Next):
		m.moveFocus(1)

	case key.Matches(keyMsg, m.keys.Prev):
		m.moveFocus(-1)

	case key.Matches(keyMsg, m.keys.Up):
		if m.focused().Open() && m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if e := m.focused(); e.Open() && m.cursor < len(e.Items())-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggle()

	case key.Matches(keyMsg, m.keys.Policy):
		selectmirror.PreventNative()
		m.status = "prevent-native latched"
	}
	return m, nil
}

func (m *Model) focused() *selectmirror.Engine {
	return m.engines[m.focus]
}

func (m *Model) moveFocus(delta int) {
	n := len(m.engines)
	m.focus = (m.focus + delta + n) % n
	m.cursor = m.focused().SelectedIndex()
}

// toggle routes the key press through the document: a click on the
// trigger when closed, a click on the cursored item when open.
func (m *Model) toggle() {
	e := m.focused()
	if !e.Open() {
		m.cursor = e.SelectedIndex()
		e.Trigger().Dispatch(dom.Event{Type: dom.Click})
		return
	}
	items := e.Items()
	if m.cursor >= 0 && m.cursor < len(items) {
		items[m.cursor].Element().Dispatch(dom.Event{Type: dom.Click})
	}
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("selectmirror demo"))
	b.WriteString("\n\n")

	for i, e := range m.engines {
		marker := "  "
		style := Styles.Normal
		if i == m.focus {
			marker = "> "
			style = Styles.Focused
		}
		b.WriteString(marker)
		b.WriteString(style.Render(triggerLine(e)))
		b.WriteString("\n")

		if e.Open() {
			for j, item := range e.Items() {
				b.WriteString(m.itemLine(i, j, item))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(Styles.Status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(Styles.Disabled.Render(
		"↑/↓ move · enter open/select · tab switch · p prevent-native · q quit"))
	b.WriteString("\n")
	return b.String()
}

func triggerLine(e *selectmirror.Engine) string {
	state := "closed"
	if e.Open() {
		state = "open"
	}
	return fmt.Sprintf("[%s] (%s)", e.Trigger().Text(), state)
}

func (m *Model) itemLine(focus, index int, item *selectmirror.Item) string {
	prefix := "    "
	if focus == m.focus && index == m.cursor {
		prefix = "  › "
	}
	label := item.Label()
	switch {
	case item.Data().Has("disabled"):
		label = Styles.Disabled.Render(label)
	case item.Element().HasClass(selectmirror.ClassSelected):
		label = Styles.Selected.Render("✓ " + label)
	default:
		label = Styles.Normal.Render(label)
	}
	return prefix + label
}

// Run starts a BubbleTea program with the given model.
func Run(model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model)
	return p.Run()
}
