package commands

import (
	"context"
	"slices"

	"redpoint/internal/application"
	"redpoint/internal/ports"
)

// GetResult describes the counts of one node
type GetResult struct {
	Path     string
	Exists   bool
	OwnCount int
	Total    int
}

// HasRedpoint reports whether the node shows a badge
func (r *GetResult) HasRedpoint() bool {
	return r.Total > 0
}

// GetCountCommand reads the counts of a node
type GetCountCommand struct {
	redpoints ports.Redpoints
	Path      string
}

// NewGetCountCommand creates a new GetCountCommand
func NewGetCountCommand(redpoints ports.Redpoints, path string) *GetCountCommand {
	return &GetCountCommand{
		redpoints: redpoints,
		Path:      path,
	}
}

// Execute runs the get command. Unknown paths are not an error.
func (c *GetCountCommand) Execute(ctx context.Context) (*GetResult, error) {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return nil, err
	}

	return &GetResult{
		Path:     c.Path,
		Exists:   c.redpoints.HasNode(c.Path),
		OwnCount: c.redpoints.GetRedpoint(c.Path, false),
		Total:    c.redpoints.GetRedpoint(c.Path, true),
	}, nil
}

// PathCount pairs a path with its total
type PathCount struct {
	Path  string `json:"path"`
	Total int    `json:"total"`
}

// SnapshotCommand lists the total of every node in path order
type SnapshotCommand struct {
	redpoints ports.Redpoints
}

// NewSnapshotCommand creates a new SnapshotCommand
func NewSnapshotCommand(redpoints ports.Redpoints) *SnapshotCommand {
	return &SnapshotCommand{redpoints: redpoints}
}

// Execute runs the snapshot command
func (c *SnapshotCommand) Execute(ctx context.Context) ([]PathCount, error) {
	snap := c.redpoints.Snapshot()
	result := make([]PathCount, 0, len(snap))
	for p, total := range snap {
		result = append(result, PathCount{Path: p, Total: total})
	}
	slices.SortFunc(result, func(a, b PathCount) int {
		if a.Path < b.Path {
			return -1
		}
		if a.Path > b.Path {
			return 1
		}
		return 0
	})
	return result, nil
}

// DumpTreeCommand renders the tree with totals
type DumpTreeCommand struct {
	redpoints ports.Redpoints
}

// NewDumpTreeCommand creates a new DumpTreeCommand
func NewDumpTreeCommand(redpoints ports.Redpoints) *DumpTreeCommand {
	return &DumpTreeCommand{redpoints: redpoints}
}

// Execute runs the dump command
func (c *DumpTreeCommand) Execute(ctx context.Context) (string, error) {
	return c.redpoints.Dump(), nil
}
