package editor

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"redpoint/internal/ports"
)

// Lines implements ports.LineEditor on top of $VISUAL or $EDITOR
type Lines struct {
	// Editor overrides editor discovery when set
	Editor string
}

var _ ports.LineEditor = (*Lines)(nil)

// NewLines creates a new line editor
func NewLines() *Lines {
	return &Lines{}
}

// EditLines round-trips lines through a scratch file opened in the editor
func (l *Lines) EditLines(ctx context.Context, header string, lines []string) ([]string, error) {
	f, err := os.CreateTemp("", "redpoint-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}
	defer os.Remove(f.Name())

	w := bufio.NewWriter(f)
	for _, h := range strings.Split(header, "\n") {
		if h != "" {
			fmt.Fprintf(w, "# %s\n", h)
		}
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	cmd, err := l.Command(ctx, f.Name())
	if err != nil {
		return nil, err
	}
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("editor exited: %w", err)
	}

	data, err := os.ReadFile(f.Name())
	if err != nil {
		return nil, err
	}
	return parseLines(string(data)), nil
}

// Command returns the editor process for path, attached to the terminal
func (l *Lines) Command(ctx context.Context, path string) (*exec.Cmd, error) {
	editor := l.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	// $EDITOR may carry arguments, e.g. "code --wait"
	fields := strings.Fields(editor)
	cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

func (l *Lines) findEditor() string {
	if l.Editor != "" {
		return l.Editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}

func parseLines(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
