package views

import "redpoint/internal/adapters/tui/styles"

// ViewState holds the terminal size and the one-line status shown under a
// view. Embed it in view models.
type ViewState struct {
	Width     int
	Height    int
	Status    string
	StatusErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetStatus replaces the status line
func (s *ViewState) SetStatus(msg string, isErr bool) {
	s.Status = msg
	s.StatusErr = isErr
}

// ClearStatus hides the status line
func (s *ViewState) ClearStatus() {
	s.SetStatus("", false)
}

// RenderStatus returns the styled status line, or "" when there is none
func (s *ViewState) RenderStatus() string {
	switch {
	case s.Status == "":
		return ""
	case s.StatusErr:
		return styles.StatusErr.Render(s.Status)
	default:
		return styles.StatusOK.Render(s.Status)
	}
}
