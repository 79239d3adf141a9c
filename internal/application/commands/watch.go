package commands

import (
	"context"
	"fmt"

	"redpoint/internal/application"
	"redpoint/internal/ports"
)

// Notification is one callback invocation observed by a watch
type Notification struct {
	Path  string
	Total int
}

// WatchCommand subscribes to a set of paths and records every
// notification they receive, the initial snapshot included
type WatchCommand struct {
	redpoints ports.Redpoints
	Paths     []string
	Key       string

	notifications []Notification
}

// NewWatchCommand creates a new WatchCommand registering under key
func NewWatchCommand(redpoints ports.Redpoints, key string, paths []string) *WatchCommand {
	return &WatchCommand{
		redpoints: redpoints,
		Paths:     paths,
		Key:       key,
	}
}

// Validate checks that every watched path exists
func (c *WatchCommand) Validate() error {
	if err := application.ValidateRequired("callbackKey", c.Key); err != nil {
		return err
	}
	for _, p := range c.Paths {
		if !c.redpoints.HasNode(p) {
			return &application.ValidationError{
				Field:   "path",
				Message: fmt.Sprintf("unknown node: %s", p),
			}
		}
	}
	return nil
}

// Execute registers the watch callbacks
func (c *WatchCommand) Execute(ctx context.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, p := range c.Paths {
		if err := c.redpoints.AddCallback(p, c.Key, func(total int) {
			c.notifications = append(c.notifications, Notification{Path: p, Total: total})
		}); err != nil {
			return err
		}
	}
	return nil
}

// Notifications returns everything recorded so far
func (c *WatchCommand) Notifications() []Notification {
	return c.notifications
}

// Stop removes the watch callbacks
func (c *WatchCommand) Stop() error {
	for _, p := range c.Paths {
		if err := c.redpoints.RemoveCallback(p, c.Key); err != nil {
			return err
		}
	}
	return nil
}
