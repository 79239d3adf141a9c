package views

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"redpoint/internal/application"
	"redpoint/internal/catalog"
)

func newTestBrowser(t *testing.T) (*BrowserModel, *application.Badges) {
	t.Helper()
	b := application.NewBadges(catalog.NewStatic())
	if err := b.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	b.SetRedpoint(catalog.ModelASub1, 2)
	b.SetRedpoint(catalog.ModelASub2, 3)

	m := NewBrowserModel(b)
	m.copyPath = func(string) error { return nil }
	m.Init()
	return m, b
}

func press(m *BrowserModel, keys string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return cmd
}

func TestBrowser_BindDeliversSnapshot(t *testing.T) {
	m, _ := newTestBrowser(t)

	if len(m.rows) != len(catalog.AllPaths) {
		t.Fatalf("expected %d rows, got %d", len(catalog.AllPaths), len(m.rows))
	}
	if m.rows[0].path != catalog.AllRoot || m.rows[0].depth != 0 {
		t.Errorf("expected root first, got %+v", m.rows[0])
	}

	tests := map[string]int{
		catalog.AllRoot:    5,
		catalog.ModelA:     5,
		catalog.ModelASub1: 2,
		catalog.ModelASub2: 3,
	}
	for path, want := range tests {
		got, ok := m.Label(path)
		if !ok || got != want {
			t.Errorf("label %s: expected %d, got %d (bound=%v)", path, want, got, ok)
		}
	}
	if len(m.Events()) != 0 {
		t.Errorf("expected no change events after binding, got %v", m.Events())
	}
}

func TestBrowser_Decrement(t *testing.T) {
	m, b := newTestBrowser(t)
	if !m.Select(catalog.ModelASub1) {
		t.Fatal("expected Sub1 row")
	}

	press(m, "-")

	if got := b.GetRedpoint(catalog.ModelASub1, false); got != 1 {
		t.Errorf("expected Sub1 own count 1, got %d", got)
	}
	if got, _ := m.Label(catalog.ModelA); got != 4 {
		t.Errorf("expected ModelA label 4, got %d", got)
	}

	events := m.Events()
	if len(events) != 4 {
		t.Fatalf("expected 4 events (leaf to root), got %v", events)
	}
	if !strings.HasPrefix(events[0], "ModelA_Sub_1:") || !strings.HasPrefix(events[3], "AllRoot:") {
		t.Errorf("expected leaf-to-root events, got %v", events)
	}
}

func TestBrowser_DecrementStopsAtZero(t *testing.T) {
	m, b := newTestBrowser(t)
	m.Select(catalog.ModelASub1)

	for range 4 {
		press(m, "-")
	}

	if got := b.GetRedpoint(catalog.ModelASub1, false); got != 0 {
		t.Errorf("expected Sub1 clamped at 0, got %d", got)
	}
	if got, _ := m.Label(catalog.AllRoot); got != 3 {
		t.Errorf("expected root label 3, got %d", got)
	}
}

func TestBrowser_IncrementAndClear(t *testing.T) {
	m, b := newTestBrowser(t)
	m.Select(catalog.ModelA)

	press(m, "+")
	if got := b.GetRedpoint(catalog.ModelA, false); got != 1 {
		t.Errorf("expected ModelA own count 1, got %d", got)
	}
	if got, _ := m.Label(catalog.Root); got != 6 {
		t.Errorf("expected Root label 6, got %d", got)
	}

	press(m, "0")
	if got := b.GetRedpoint(catalog.ModelA, false); got != 0 {
		t.Errorf("expected ModelA cleared, got %d", got)
	}
}

func TestBrowser_Navigation(t *testing.T) {
	m, _ := newTestBrowser(t)

	press(m, "k")
	if m.SelectedPath() != catalog.AllRoot {
		t.Errorf("expected cursor to stay at root, got %s", m.SelectedPath())
	}

	for range 10 {
		press(m, "j")
	}
	if m.SelectedPath() != catalog.ModelASub2 {
		t.Errorf("expected cursor at last row, got %s", m.SelectedPath())
	}
}

func TestBrowser_CopyPath(t *testing.T) {
	m, _ := newTestBrowser(t)
	m.Select(catalog.ModelA)

	var copied string
	m.copyPath = func(s string) error { copied = s; return nil }
	press(m, "y")
	if copied != catalog.ModelA {
		t.Errorf("expected %s copied, got %q", catalog.ModelA, copied)
	}

	m.copyPath = func(string) error { return errors.New("no clipboard") }
	press(m, "y")
	if !m.StatusErr || !strings.Contains(m.Status, "no clipboard") {
		t.Errorf("expected copy error message, got %q", m.Status)
	}
}

func TestBrowser_UnbindAndView(t *testing.T) {
	m, b := newTestBrowser(t)

	view := m.View()
	if !strings.Contains(view, "ModelA_Sub_2") || !strings.Contains(view, " 3 ") {
		t.Errorf("expected Sub2 badge in view:\n%s", view)
	}

	m.Unbind()
	b.SetRedpoint(catalog.ModelASub2, 0)
	if got, _ := m.Label(catalog.ModelASub2); got != 3 {
		t.Errorf("expected label frozen after unbind, got %d", got)
	}
	node, _ := b.GetNode(catalog.ModelASub2)
	if node.HasCallback(CallbackKey) {
		t.Error("expected callback to be removed")
	}
}

func TestBrowser_HelpSwitch(t *testing.T) {
	m, _ := newTestBrowser(t)

	cmd := press(m, "?")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(SwitchToHelpMsg); !ok {
		t.Error("expected SwitchToHelpMsg")
	}
}
