package editor

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"
)

func TestParseLines(t *testing.T) {
	content := "# header\n\nAllRoot/Root\n  AllRoot/Root/ModelB  \n# note\n"
	got := parseLines(content)
	want := []string{"AllRoot/Root", "AllRoot/Root/ModelB"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLines_EditLines(t *testing.T) {
	// "true" leaves the scratch file untouched
	truePath, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true not available")
	}

	l := &Lines{Editor: truePath}
	got, err := l.EditLines(context.Background(), "one path per line", []string{"AllRoot/Root", "AllRoot/Root/ModelA"})
	if err != nil {
		t.Fatalf("EditLines failed: %v", err)
	}
	if !slices.Equal(got, []string{"AllRoot/Root", "AllRoot/Root/ModelA"}) {
		t.Errorf("unexpected lines %v", got)
	}
}

func TestLines_EditorAppends(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "append.sh")
	body := "#!/bin/sh\necho 'AllRoot/Root/ModelB' >> \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}

	l := &Lines{Editor: script}
	got, err := l.EditLines(context.Background(), "", []string{"AllRoot/Root"})
	if err != nil {
		t.Fatalf("EditLines failed: %v", err)
	}
	if !slices.Equal(got, []string{"AllRoot/Root", "AllRoot/Root/ModelB"}) {
		t.Errorf("unexpected lines %v", got)
	}
}

func TestLines_NoEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	t.Setenv("PATH", t.TempDir())

	if _, err := NewLines().Command(context.Background(), "x"); err == nil {
		t.Error("expected error when no editor is available")
	}
}
