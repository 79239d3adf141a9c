package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"redpoint/internal/adapters/tui/views"
	"redpoint/internal/ports"
)

type screen int

const (
	screenBrowser screen = iota
	screenHelp
)

// App switches between the badge browser and the help screen. The browser
// subscribes to the tree on Init; call Close when the program exits.
type App struct {
	screen  screen
	browser *views.BrowserModel
	help    *views.HelpModel

	width, height int
}

// NewApp creates the application over an initialized access point
func NewApp(redpoints ports.Redpoints) *App {
	return &App{
		browser: views.NewBrowserModel(redpoints),
		help:    views.NewHelpModel(),
	}
}

// Init subscribes the browser to the tree
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Close removes the browser's callbacks
func (a *App) Close() {
	a.browser.Unbind()
}

// Update routes size and navigation messages, then forwards the rest to the
// active screen
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil
	case views.SwitchToHelpMsg:
		a.screen = screenHelp
		return a, nil
	case views.SwitchToBrowserMsg:
		a.screen = screenBrowser
		return a, nil
	}

	_, cmd := a.active().Update(msg)
	return a, cmd
}

// View renders the active screen
func (a *App) View() string {
	return a.active().View()
}

func (a *App) active() tea.Model {
	if a.screen == screenHelp {
		return a.help
	}
	return a.browser
}
