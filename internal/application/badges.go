package application

import (
	"context"
	"fmt"
	"log/slog"

	"redpoint/internal/domain"
	"redpoint/internal/ports"
)

// Badges owns one redpoint tree for a host session and exposes the
// operations UI code calls. Hosts construct it explicitly and pass it to
// every call site; there is no process-wide instance.
//
// Like the tree it wraps, Badges is not safe for concurrent use.
type Badges struct {
	source   ports.CatalogSource
	rootName string
	log      *slog.Logger

	tree *domain.Tree
}

// Ensure Badges implements Redpoints
var _ ports.Redpoints = (*Badges)(nil)

// Option configures Badges
type Option func(*Badges)

// WithLogger sets the logger shared with the tree
func WithLogger(log *slog.Logger) Option {
	return func(b *Badges) {
		if log != nil {
			b.log = log
		}
	}
}

// WithRootName sets the name of the tree root (default RootName)
func WithRootName(name string) Option {
	return func(b *Badges) {
		b.rootName = name
	}
}

// NewBadges creates an uninitialized access point reading paths from source
func NewBadges(source ports.CatalogSource, opts ...Option) *Badges {
	b := &Badges{
		source:   source,
		rootName: domain.RootName,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Initialize builds the tree from the catalog source. Calling it twice
// returns ErrAlreadyInitialized and leaves the existing tree untouched.
func (b *Badges) Initialize(ctx context.Context) error {
	if b.tree != nil {
		b.log.Warn("redpoint system already initialized")
		return ErrAlreadyInitialized
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	paths, err := b.source.Paths()
	if err != nil {
		b.log.Error("redpoint system initialization failed", "error", err)
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	tree, err := domain.BuildTree(paths,
		domain.WithRootName(b.rootName),
		domain.WithLogger(b.log),
	)
	if err != nil {
		b.log.Error("redpoint system initialization failed", "error", err)
		return err
	}

	b.tree = tree
	b.log.Info("redpoint system initialized", "nodes", tree.Len())
	return nil
}

// Reinitialize drops every callback and count and rebuilds the tree
func (b *Badges) Reinitialize(ctx context.Context) error {
	if b.tree != nil {
		b.tree.ClearAllCallbacks()
		b.tree = nil
	}
	return b.Initialize(ctx)
}

// Initialized reports whether Initialize has succeeded
func (b *Badges) Initialized() bool {
	return b.tree != nil
}

// Tree returns the underlying tree
func (b *Badges) Tree() (*domain.Tree, error) {
	if b.tree == nil {
		return nil, ErrNotInitialized
	}
	return b.tree, nil
}

// RootName returns the name of the tree root
func (b *Badges) RootName() string {
	return b.rootName
}

// ClearAll removes every callback; counts are kept
func (b *Badges) ClearAll() {
	if b.tree != nil {
		b.tree.ClearAllCallbacks()
	}
}

// SetRedpoint sets the own count at path and propagates to the root
func (b *Badges) SetRedpoint(path string, count int) error {
	return b.SetRedpointCount(path, count, true)
}

// SetRedpointCount sets the own count at path; see domain.Tree.SetRedpointCount
func (b *Badges) SetRedpointCount(path string, count int, propagate bool) error {
	tree, err := b.mustTree()
	if err != nil {
		return err
	}
	return tree.SetRedpointCount(path, count, propagate)
}

// GetRedpoint returns the count at path, 0 when unknown or uninitialized
func (b *Badges) GetRedpoint(path string, includeChildren bool) int {
	tree, err := b.mustTree()
	if err != nil {
		return 0
	}
	return tree.GetRedpointCount(path, includeChildren)
}

// HasRedpoint reports whether the count at path is positive
func (b *Badges) HasRedpoint(path string, includeChildren bool) bool {
	return b.GetRedpoint(path, includeChildren) > 0
}

// AddCallback registers cb at path under key (empty key = node name) and
// calls it once with the current total
func (b *Badges) AddCallback(path, key string, cb domain.Callback) error {
	tree, err := b.mustTree()
	if err != nil {
		return err
	}
	tree.AddCallback(path, key, cb)
	return nil
}

// RemoveCallback drops the callback under key at path
func (b *Badges) RemoveCallback(path, key string) error {
	tree, err := b.mustTree()
	if err != nil {
		return err
	}
	tree.RemoveCallback(path, key)
	return nil
}

// ClearAllCallbacks removes every callback in the tree
func (b *Badges) ClearAllCallbacks() error {
	tree, err := b.mustTree()
	if err != nil {
		return err
	}
	tree.ClearAllCallbacks()
	return nil
}

// RefreshAll recalculates every total and notifies every node
func (b *Badges) RefreshAll() error {
	tree, err := b.mustTree()
	if err != nil {
		return err
	}
	tree.RefreshAll()
	return nil
}

// InsertNode adds path and its missing ancestors to the tree
func (b *Badges) InsertNode(path string) error {
	tree, err := b.mustTree()
	if err != nil {
		return err
	}
	return tree.InsertNode(path)
}

// GetNode looks up the node at path
func (b *Badges) GetNode(path string) (*domain.Node, bool) {
	tree, err := b.mustTree()
	if err != nil {
		return nil, false
	}
	return tree.GetNode(path)
}

// HasNode reports whether path is known
func (b *Badges) HasNode(path string) bool {
	_, ok := b.GetNode(path)
	return ok
}

// Paths returns every known path in sorted order
func (b *Badges) Paths() []string {
	tree, err := b.mustTree()
	if err != nil {
		return nil
	}
	return tree.Paths()
}

// Dump renders the tree, one indented line per node
func (b *Badges) Dump() string {
	tree, err := b.mustTree()
	if err != nil {
		return ""
	}
	return tree.Dump()
}

// Snapshot maps every known path to its total
func (b *Badges) Snapshot() map[string]int {
	tree, err := b.mustTree()
	if err != nil {
		return map[string]int{}
	}
	return tree.Snapshot()
}

func (b *Badges) mustTree() (*domain.Tree, error) {
	if b.tree == nil {
		b.log.Error("redpoint system not initialized, call Initialize first")
		return nil, ErrNotInitialized
	}
	return b.tree, nil
}
