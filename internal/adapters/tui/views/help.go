package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"redpoint/internal/adapters/tui/styles"
)

var closeHelp = key.NewBinding(
	key.WithKeys("esc", "q", "?"),
	key.WithHelp("esc/q/?", "close"),
)

type helpSection struct {
	title    string
	bindings []key.Binding
}

var helpSections = []helpSection{
	{"Navigation", []key.Binding{BrowserKeys.Up, BrowserKeys.Down}},
	{"Counts", []key.Binding{BrowserKeys.Increment, BrowserKeys.Decrement, BrowserKeys.Clear, BrowserKeys.Refresh}},
	{"General", []key.Binding{BrowserKeys.Copy, BrowserKeys.Help, BrowserKeys.Quit}},
}

var countingRules = []string{
	"Own count  set directly on a node, never below 0",
	"Total      own count plus every descendant's total",
	"Badge      shown while the total is above 0",
}

// HelpModel lists the browser key bindings and the counting rules
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init implements tea.Model
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update closes the view on esc, q or ?
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, closeHelp) {
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		}
	}
	return m, nil
}

// View renders the help screen
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Heading.Render("Redpoint Help"))
	b.WriteString("\n")

	for _, sec := range helpSections {
		b.WriteString(styles.Section.Render(sec.title))
		b.WriteString("\n")
		for _, kb := range sec.bindings {
			h := kb.Help()
			b.WriteString("  " + styles.Key.Render(padRight(h.Key, 12)) + styles.KeyDesc.Render(h.Desc) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.Section.Render("Counting"))
	b.WriteString("\n")
	for _, rule := range countingRules {
		b.WriteString(styles.Faint.Render("  " + rule))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	h := closeHelp.Help()
	b.WriteString(styles.KeyHint(h.Key, h.Desc))

	return styles.Frame.Render(b.String())
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
