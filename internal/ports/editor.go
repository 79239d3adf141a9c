package ports

import "context"

// LineEditor lets the user edit a list of lines in an external editor
type LineEditor interface {
	// EditLines writes lines to a scratch file, opens it, and returns the
	// lines left after the editor exits. Blank lines and lines starting
	// with # are dropped.
	EditLines(ctx context.Context, header string, lines []string) ([]string, error)
}
