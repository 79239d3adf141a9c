package commands

import (
	"context"
	"fmt"

	"redpoint/internal/application"
	"redpoint/internal/ports"
)

// SetResult contains the result of a set operation
type SetResult struct {
	Path     string
	OwnCount int
	Total    int
	Message  string
}

// SetCountCommand sets the own count of a node
type SetCountCommand struct {
	redpoints ports.Redpoints
	Path      string
	Count     int
	Propagate bool
}

// NewSetCountCommand creates a SetCountCommand that propagates to ancestors
func NewSetCountCommand(redpoints ports.Redpoints, path string, count int) *SetCountCommand {
	return &SetCountCommand{
		redpoints: redpoints,
		Path:      path,
		Count:     count,
		Propagate: true,
	}
}

// Validate checks if the set operation is valid
func (c *SetCountCommand) Validate() error {
	return application.ValidatePath("path", c.Path, c.redpoints.RootName())
}

// Execute runs the set command
func (c *SetCountCommand) Execute(ctx context.Context) (*SetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.redpoints.SetRedpointCount(c.Path, c.Count, c.Propagate); err != nil {
		return nil, &application.SetError{Path: c.Path, Count: c.Count, Err: err}
	}

	own := c.redpoints.GetRedpoint(c.Path, false)
	total := c.redpoints.GetRedpoint(c.Path, true)
	return &SetResult{
		Path:     c.Path,
		OwnCount: own,
		Total:    total,
		Message:  fmt.Sprintf("Set %s to %d (total %d)", c.Path, own, total),
	}, nil
}

// ApplyCommand runs a batch of "path=count" assignments in order
type ApplyCommand struct {
	redpoints   ports.Redpoints
	Assignments []string
}

// NewApplyCommand creates a new ApplyCommand
func NewApplyCommand(redpoints ports.Redpoints, assignments []string) *ApplyCommand {
	return &ApplyCommand{
		redpoints:   redpoints,
		Assignments: assignments,
	}
}

// Validate parses every assignment before any is applied
func (c *ApplyCommand) Validate() error {
	if len(c.Assignments) == 0 {
		return &application.ValidationError{
			Field:   "assignment",
			Message: "at least one path=count assignment is required",
		}
	}
	for _, a := range c.Assignments {
		path, _, err := application.ParseAssignment(a)
		if err != nil {
			return err
		}
		if err := application.ValidatePath("path", path, c.redpoints.RootName()); err != nil {
			return err
		}
	}
	return nil
}

// Execute applies the assignments, stopping at the first failure
func (c *ApplyCommand) Execute(ctx context.Context) ([]*SetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var results []*SetResult
	for _, a := range c.Assignments {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		path, count, _ := application.ParseAssignment(a)
		result, err := NewSetCountCommand(c.redpoints, path, count).Execute(ctx)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
