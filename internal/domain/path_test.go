package domain

import (
	"errors"
	"slices"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "root only", path: "AllRoot"},
		{name: "nested", path: "AllRoot/Root/ModelA"},
		{name: "empty", path: "", wantErr: true},
		{name: "blank", path: "   ", wantErr: true},
		{name: "trailing separator", path: "AllRoot/Root/", wantErr: true},
		{name: "double separator", path: "AllRoot//Root", wantErr: true},
		{name: "wrong root", path: "Root/ModelA", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path, RootName)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPath) {
					t.Errorf("expected ErrInvalidPath, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPathHelpers(t *testing.T) {
	if got := SplitPath("AllRoot/Root/ModelA"); !slices.Equal(got, []string{"AllRoot", "Root", "ModelA"}) {
		t.Errorf("unexpected split: %v", got)
	}
	if got := SplitPath(""); got != nil {
		t.Errorf("expected nil for empty path, got %v", got)
	}
	if got := JoinPath("AllRoot", "Root"); got != "AllRoot/Root" {
		t.Errorf("unexpected join: %s", got)
	}

	parent, ok := ParentPath("AllRoot/Root/ModelA")
	if !ok || parent != "AllRoot/Root" {
		t.Errorf("unexpected parent: %q %v", parent, ok)
	}
	if _, ok := ParentPath("AllRoot"); ok {
		t.Error("root must have no parent path")
	}

	if got := BaseName("AllRoot/Root/ModelA"); got != "ModelA" {
		t.Errorf("unexpected base name: %s", got)
	}
	if got := BaseName("AllRoot"); got != "AllRoot" {
		t.Errorf("unexpected base name: %s", got)
	}
}
