package domain

import (
	"log/slog"
	"slices"
	"strings"
)

// Callback receives the aggregated total of the node it is registered on
type Callback func(total int)

// Node is one addressable point in the redpoint hierarchy
type Node struct {
	name     string
	parent   *Node // non-owning; nil for the root
	ownCount int   // contributed by this node alone
	total    int   // ownCount plus every child total, cached

	children  map[string]*Node
	callbacks map[string]Callback

	log *slog.Logger
}

func newNode(name string, parent *Node, log *slog.Logger) *Node {
	return &Node{
		name:      name,
		parent:    parent,
		children:  make(map[string]*Node),
		callbacks: make(map[string]Callback),
		log:       log,
	}
}

// Name returns the segment name of the node
func (n *Node) Name() string { return n.name }

// Parent returns the enclosing node, or nil for the root
func (n *Node) Parent() *Node { return n.parent }

// OwnCount returns the count set directly on this node
func (n *Node) OwnCount() int { return n.ownCount }

// Total returns the cached aggregated count of this node and its descendants
func (n *Node) Total() int { return n.total }

// DefaultCallbackKey is the key used when a callback is registered without one
func (n *Node) DefaultCallbackKey() string { return n.name }

// Path returns the full separator-joined path from the root to this node
func (n *Node) Path() string {
	var names []string
	for cur := n; cur != nil; cur = cur.parent {
		names = append(names, cur.name)
	}
	slices.Reverse(names)
	return strings.Join(names, Separator)
}

// Depth returns the depth of this node in the tree (root is 0)
func (n *Node) Depth() int {
	depth := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		depth++
	}
	return depth
}

// Child returns the direct child with the given name
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.children[name]
	return child, ok
}

// Children returns the direct children sorted by name
func (n *Node) Children() []*Node {
	result := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		result = append(result, child)
	}
	slices.SortFunc(result, func(a, b *Node) int {
		return strings.Compare(a.name, b.name)
	})
	return result
}

// CallbackCount returns the number of registered callbacks
func (n *Node) CallbackCount() int { return len(n.callbacks) }

// HasCallback reports whether a callback is registered under key
// (empty key means the default key)
func (n *Node) HasCallback(key string) bool {
	_, ok := n.callbacks[n.resolveKey(key)]
	return ok
}

// RecalculateTotal recomputes the total of this subtree, children first,
// caches it and returns it
func (n *Node) RecalculateTotal() int {
	total := n.ownCount
	for _, child := range n.children {
		total += child.RecalculateTotal()
	}
	n.total = total
	return total
}

// TriggerCallbacks invokes every registered callback with the current total.
// Nil callbacks are skipped; order across keys is unspecified.
func (n *Node) TriggerCallbacks() {
	for _, cb := range n.callbacks {
		if cb != nil {
			cb(n.total)
		}
	}
}

// AddCallback registers cb under key, replacing any callback already there.
// An empty key selects the default key (the node name).
func (n *Node) AddCallback(key string, cb Callback) {
	key = n.resolveKey(key)
	if _, exists := n.callbacks[key]; exists {
		if key == n.name {
			n.log.Info("default callback updated", "node", n.name)
		} else {
			n.log.Warn("custom callback key overwritten", "node", n.name, "key", key)
		}
	}
	n.callbacks[key] = cb
}

// RemoveCallback drops the callback under key; absent keys are ignored.
// An empty key selects the default key.
func (n *Node) RemoveCallback(key string) {
	delete(n.callbacks, n.resolveKey(key))
}

// ClearCallbacks empties the callback registry
func (n *Node) ClearCallbacks() {
	clear(n.callbacks)
}

func (n *Node) resolveKey(key string) string {
	if key == "" {
		return n.name
	}
	return key
}
