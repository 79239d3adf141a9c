// Package catalog holds the canonical node paths the redpoint tree is built from.
package catalog

import (
	"fmt"

	"redpoint/internal/domain"
	"redpoint/internal/ports"
)

const (
	AllRoot    = domain.RootName
	Root       = AllRoot + domain.Separator + "Root"
	ModelA     = Root + domain.Separator + "ModelA"
	ModelASub1 = ModelA + domain.Separator + "ModelA_Sub_1"
	ModelASub2 = ModelA + domain.Separator + "ModelA_Sub_2"
)

// AllPaths lists every canonical path, parents before children
var AllPaths = []string{
	AllRoot,
	Root,
	ModelA,
	ModelASub1,
	ModelASub2,
}

// Static serves a fixed list of paths
type Static struct {
	paths []string
}

// NewStatic creates a catalog source over paths; no paths means AllPaths
func NewStatic(paths ...string) *Static {
	if len(paths) == 0 {
		paths = AllPaths
	}
	return &Static{paths: paths}
}

// Paths returns a copy of the catalog paths
func (s *Static) Paths() ([]string, error) {
	return append([]string(nil), s.paths...), nil
}

// Multi concatenates several sources, dropping duplicate paths
type Multi struct {
	sources []ports.CatalogSource
}

// NewMulti creates a source reading each of sources in order
func NewMulti(sources ...ports.CatalogSource) *Multi {
	return &Multi{sources: sources}
}

// Paths returns the union of all source paths in first-seen order
func (m *Multi) Paths() ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	for _, src := range m.sources {
		paths, err := src.Paths()
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				result = append(result, p)
			}
		}
	}
	return result, nil
}
