package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"redpoint/internal/adapters/tui/styles"
	"redpoint/internal/application"
	"redpoint/internal/ports"
)

// CallbackKey is the key the browser registers its label callbacks under
const CallbackKey = "tui"

const maxEvents = 6

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Increment key.Binding
	Decrement key.Binding
	Clear     key.Binding
	Refresh   key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Increment: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "add redpoint"),
	),
	Decrement: key.NewBinding(
		key.WithKeys("-", "enter"),
		key.WithHelp("-/enter", "read one"),
	),
	Clear: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "clear"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh all"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type row struct {
	path  string
	name  string
	depth int
}

// BrowserModel shows every node with a badge label driven by tree callbacks
type BrowserModel struct {
	ViewState

	redpoints ports.Redpoints
	rows      []row
	labels    map[string]int // latest total delivered to each node's callback
	events    []string
	cursor    int

	copyPath func(string) error
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(redpoints ports.Redpoints) *BrowserModel {
	return &BrowserModel{
		redpoints: redpoints,
		labels:    make(map[string]int),
		copyPath:  clipboard.WriteAll,
	}
}

// Init binds a label callback to every node
func (m *BrowserModel) Init() tea.Cmd {
	m.Bind()
	return nil
}

// Bind flattens the tree and subscribes each row. Every subscription
// delivers the node's current total immediately.
func (m *BrowserModel) Bind() {
	root, ok := m.redpoints.GetNode(m.redpoints.RootName())
	if !ok {
		m.SetStatus("redpoint tree is not initialized", true)
		return
	}

	m.rows = m.rows[:0]
	flatten(root, 0, &m.rows)

	for _, r := range m.rows {
		if err := m.redpoints.AddCallback(r.path, CallbackKey, m.onChange(r.path)); err != nil {
			m.SetStatus(err.Error(), true)
			return
		}
	}
	m.clampCursor()
}

// Unbind removes every label callback
func (m *BrowserModel) Unbind() {
	for _, r := range m.rows {
		m.redpoints.RemoveCallback(r.path, CallbackKey)
	}
}

func flatten(n *application.Node, depth int, rows *[]row) {
	*rows = append(*rows, row{path: n.Path(), name: n.Name(), depth: depth})
	for _, child := range n.Children() {
		flatten(child, depth+1, rows)
	}
}

func (m *BrowserModel) onChange(path string) application.Callback {
	return func(total int) {
		prev, seen := m.labels[path]
		m.labels[path] = total
		if !seen || prev == total {
			return
		}
		m.events = append(m.events, fmt.Sprintf("%s: %d → %d", application.BaseName(path), prev, total))
		if len(m.events) > maxEvents {
			m.events = m.events[len(m.events)-maxEvents:]
		}
	}
}

// Label returns the total last delivered to the node's callback
func (m *BrowserModel) Label(path string) (int, bool) {
	total, ok := m.labels[path]
	return total, ok
}

// Events returns the most recent label changes, oldest first
func (m *BrowserModel) Events() []string {
	return m.events
}

// SelectedPath returns the path under the cursor
func (m *BrowserModel) SelectedPath() string {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return m.rows[m.cursor].path
	}
	return ""
}

// Select moves the cursor to path
func (m *BrowserModel) Select(path string) bool {
	for i, r := range m.rows {
		if r.path == path {
			m.cursor = i
			return true
		}
	}
	return false
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearStatus()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case key.Matches(msg, BrowserKeys.Increment):
			m.adjust(1)

		case key.Matches(msg, BrowserKeys.Decrement):
			m.adjust(-1)

		case key.Matches(msg, BrowserKeys.Clear):
			m.set(0)

		case key.Matches(msg, BrowserKeys.Refresh):
			if err := m.redpoints.RefreshAll(); err != nil {
				m.SetStatus(err.Error(), true)
			} else {
				m.SetStatus("Refreshed all nodes", false)
			}

		case key.Matches(msg, BrowserKeys.Copy):
			if path := m.SelectedPath(); path != "" {
				if err := m.copyPath(path); err != nil {
					m.SetStatus(fmt.Sprintf("copy failed: %v", err), true)
				} else {
					m.SetStatus(fmt.Sprintf("Copied %s", path), false)
				}
			}

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) adjust(delta int) {
	path := m.SelectedPath()
	if path == "" {
		return
	}
	m.set(m.redpoints.GetRedpoint(path, false) + delta)
}

func (m *BrowserModel) set(count int) {
	path := m.SelectedPath()
	if path == "" {
		return
	}
	if err := m.redpoints.SetRedpointCount(path, count, true); err != nil {
		m.SetStatus(err.Error(), true)
	}
}

func (m *BrowserModel) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Heading.Render("Redpoint"))
	b.WriteString("\n")
	b.WriteString(styles.Caption.Render("Hierarchical badge counters"))
	b.WriteString("\n\n")

	for i, r := range m.rows {
		b.WriteString(m.renderRow(r, i == m.cursor))
		b.WriteString("\n")
	}

	if len(m.events) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Section.Render("Changes"))
		b.WriteString("\n")
		for _, e := range m.events {
			b.WriteString(styles.Faint.Render("  " + e))
			b.WriteString("\n")
		}
	}

	if status := m.RenderStatus(); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.Frame.Render(b.String())
}

func (m *BrowserModel) renderRow(r row, selected bool) string {
	indent := strings.Repeat("  ", r.depth)
	total := m.labels[r.path]
	own := m.redpoints.GetRedpoint(r.path, false)

	name := styles.Row.Render(r.name)
	if selected {
		name = styles.RowSelected.Render(r.name)
	}

	line := indent + styles.BadgeDot(total) + name
	if pill := styles.BadgePill(total); pill != "" {
		line += " " + pill
	}
	if own > 0 {
		line += " " + styles.Faint.Render(fmt.Sprintf("(own %d)", own))
	}
	return line
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"+/-", "add/read"},
		{"0", "clear"},
		{"r", "refresh"},
		{"y", "copy path"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, styles.KeyHint(k.key, k.desc))
	}

	return strings.Join(parts, styles.KeySep.String())
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}
