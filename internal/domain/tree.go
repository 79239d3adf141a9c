package domain

import (
	"fmt"
	"log/slog"
	"slices"
)

// Tree owns the root node and a flat index from full path to node.
//
// A Tree is not safe for concurrent use. Every operation, including callback
// propagation, completes on the caller's goroutine before returning.
type Tree struct {
	root  *Node
	index map[string]*Node // non-owning; the node graph owns the nodes
	log   *slog.Logger
}

// TreeOption configures a Tree
type TreeOption func(*treeOptions)

type treeOptions struct {
	rootName string
	log      *slog.Logger
}

// WithRootName sets the name of the root node (default RootName)
func WithRootName(name string) TreeOption {
	return func(o *treeOptions) {
		o.rootName = name
	}
}

// WithLogger sets the logger used for callback overwrites and write errors
func WithLogger(log *slog.Logger) TreeOption {
	return func(o *treeOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// NewTree creates a tree holding only its root
func NewTree(opts ...TreeOption) *Tree {
	o := treeOptions{
		rootName: RootName,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	root := newNode(o.rootName, nil, o.log)
	return &Tree{
		root:  root,
		index: map[string]*Node{o.rootName: root},
		log:   o.log,
	}
}

// BuildTree creates a tree and inserts every catalog path into it
func BuildTree(paths []string, opts ...TreeOption) (*Tree, error) {
	t := NewTree(opts...)
	for _, p := range paths {
		if err := t.InsertNode(p); err != nil {
			return nil, fmt.Errorf("failed to build tree: %w", err)
		}
	}
	t.root.RecalculateTotal()
	t.log.Info("redpoint tree built", "nodes", len(t.index))
	return t, nil
}

// Root returns the root node
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of indexed nodes, root included
func (t *Tree) Len() int { return len(t.index) }

// Paths returns every indexed path in sorted order
func (t *Tree) Paths() []string {
	paths := make([]string, 0, len(t.index))
	for p := range t.index {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// InsertNode creates the node at path together with any missing ancestors.
// Empty or already indexed paths are ignored.
func (t *Tree) InsertNode(path string) error {
	if path == "" {
		return nil
	}
	if _, ok := t.index[path]; ok {
		return nil
	}
	if err := ValidatePath(path, t.root.name); err != nil {
		return err
	}

	current := t.root
	for _, name := range SplitPath(path)[1:] {
		child, ok := current.children[name]
		if !ok {
			child = newNode(name, current, t.log)
			current.children[name] = child
			t.index[child.Path()] = child
		}
		current = child
	}
	return nil
}

// GetNode looks up the node at path
func (t *Tree) GetNode(path string) (*Node, bool) {
	node, ok := t.index[path]
	return node, ok
}

// HasNode reports whether path is indexed
func (t *Tree) HasNode(path string) bool {
	_, ok := t.index[path]
	return ok
}

// SetRedpointCount sets the own count of the node at path. Negative counts
// are clamped to zero and writing the current value is a no-op.
//
// With propagate the node is recalculated and notified first, then every
// ancestor in turn up to the root. Without it only the node itself is
// refreshed and ancestor totals stay stale until the next RefreshAll.
func (t *Tree) SetRedpointCount(path string, count int, propagate bool) error {
	node, ok := t.index[path]
	if !ok {
		t.log.Error("set on unknown redpoint node", "path", path)
		return fmt.Errorf("%w: %s", ErrNodeNotFound, path)
	}

	count = max(count, 0)
	if node.ownCount == count {
		return nil
	}
	node.ownCount = count

	if !propagate {
		updateNode(node)
		return nil
	}
	for cur := node; cur != nil; cur = cur.parent {
		updateNode(cur)
	}
	return nil
}

func updateNode(n *Node) {
	n.RecalculateTotal()
	n.TriggerCallbacks()
}

// GetRedpointCount returns the total (includeChildren) or own count of the
// node at path; unknown paths count as 0
func (t *Tree) GetRedpointCount(path string, includeChildren bool) int {
	node, ok := t.index[path]
	if !ok {
		return 0
	}
	if includeChildren {
		return node.total
	}
	return node.ownCount
}

// HasRedpoint reports whether the node at path has a positive count
func (t *Tree) HasRedpoint(path string, includeChildren bool) bool {
	return t.GetRedpointCount(path, includeChildren) > 0
}

// AddCallback registers cb on the node at path and immediately calls it
// once with the node's current total. Unknown paths are ignored.
func (t *Tree) AddCallback(path, key string, cb Callback) {
	node, ok := t.index[path]
	if !ok {
		return
	}
	node.AddCallback(key, cb)
	if cb != nil {
		cb(node.total)
	}
}

// RemoveCallback drops a callback from the node at path; unknown paths are ignored
func (t *Tree) RemoveCallback(path, key string) {
	if node, ok := t.index[path]; ok {
		node.RemoveCallback(key)
	}
}

// ClearAllCallbacks empties the callback registry of every node
func (t *Tree) ClearAllCallbacks() {
	for _, node := range t.index {
		node.ClearCallbacks()
	}
}

// RefreshAll recalculates the whole tree and notifies every node, changed
// or not, in path order
func (t *Tree) RefreshAll() {
	t.root.RecalculateTotal()
	for _, p := range t.Paths() {
		t.index[p].TriggerCallbacks()
	}
}
