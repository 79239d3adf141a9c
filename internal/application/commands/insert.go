package commands

import (
	"context"
	"fmt"

	"redpoint/internal/application"
	"redpoint/internal/ports"
)

// InsertResult contains the result of an insert operation
type InsertResult struct {
	Path    string
	Created bool
	Message string
}

// InsertNodeCommand adds a node (and its missing ancestors) to the live tree
type InsertNodeCommand struct {
	redpoints ports.Redpoints
	Path      string
}

// NewInsertNodeCommand creates a new InsertNodeCommand
func NewInsertNodeCommand(redpoints ports.Redpoints, path string) *InsertNodeCommand {
	return &InsertNodeCommand{
		redpoints: redpoints,
		Path:      path,
	}
}

// Validate checks if the insert operation is valid
func (c *InsertNodeCommand) Validate() error {
	return application.ValidatePath("path", c.Path, c.redpoints.RootName())
}

// Execute runs the insert command
func (c *InsertNodeCommand) Execute(ctx context.Context) (*InsertResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	existed := c.redpoints.HasNode(c.Path)
	if err := c.redpoints.InsertNode(c.Path); err != nil {
		return nil, fmt.Errorf("failed to insert %s: %w", c.Path, err)
	}

	if existed {
		return &InsertResult{Path: c.Path, Message: fmt.Sprintf("%s already exists", c.Path)}, nil
	}
	return &InsertResult{
		Path:    c.Path,
		Created: true,
		Message: fmt.Sprintf("Inserted %s", c.Path),
	}, nil
}

// RegisterPathCommand records a path in the catalog store so later
// sessions build it at startup
type RegisterPathCommand struct {
	store    ports.CatalogStore
	rootName string
	Path     string
}

// NewRegisterPathCommand creates a new RegisterPathCommand
func NewRegisterPathCommand(store ports.CatalogStore, rootName, path string) *RegisterPathCommand {
	return &RegisterPathCommand{
		store:    store,
		rootName: rootName,
		Path:     path,
	}
}

// Validate checks if the register operation is valid
func (c *RegisterPathCommand) Validate() error {
	return application.ValidatePath("path", c.Path, c.rootName)
}

// Execute runs the register command
func (c *RegisterPathCommand) Execute(ctx context.Context) (*InsertResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	added, err := c.store.Add(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", c.Path, err)
	}
	if !added {
		return &InsertResult{Path: c.Path, Message: fmt.Sprintf("%s already registered", c.Path)}, nil
	}
	return &InsertResult{
		Path:    c.Path,
		Created: true,
		Message: fmt.Sprintf("Registered %s", c.Path),
	}, nil
}
