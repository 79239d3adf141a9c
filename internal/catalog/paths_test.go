package catalog

import (
	"errors"
	"slices"
	"testing"

	"redpoint/internal/domain"
)

type failingSource struct{}

func (failingSource) Paths() ([]string, error) {
	return nil, errors.New("boom")
}

func TestAllPaths_BuildTree(t *testing.T) {
	tree, err := domain.BuildTree(AllPaths)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if tree.Len() != len(AllPaths) {
		t.Errorf("expected %d nodes, got %d", len(AllPaths), tree.Len())
	}
	for _, p := range AllPaths {
		if !tree.HasNode(p) {
			t.Errorf("expected %s in tree", p)
		}
	}
}

func TestStatic_Paths(t *testing.T) {
	paths, err := NewStatic().Paths()
	if err != nil {
		t.Fatalf("Paths failed: %v", err)
	}
	if !slices.Equal(paths, AllPaths) {
		t.Errorf("expected default paths, got %v", paths)
	}

	// callers must not be able to mutate the catalog
	paths[0] = "changed"
	if AllPaths[0] != AllRoot {
		t.Error("Static.Paths leaked its backing slice")
	}
}

func TestMulti_Paths(t *testing.T) {
	extra := NewStatic(ModelA, ModelA+"/ModelA_Sub_3")
	paths, err := NewMulti(NewStatic(), extra).Paths()
	if err != nil {
		t.Fatalf("Paths failed: %v", err)
	}

	expected := append(slices.Clone(AllPaths), ModelA+"/ModelA_Sub_3")
	if !slices.Equal(paths, expected) {
		t.Errorf("expected %v, got %v", expected, paths)
	}

	if _, err := NewMulti(NewStatic(), failingSource{}).Paths(); err == nil {
		t.Error("expected error from failing source")
	}
}
