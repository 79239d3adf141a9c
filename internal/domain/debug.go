package domain

import (
	"fmt"
	"io"
	"strings"
)

// Walk visits every node depth-first, children in name order
func (t *Tree) Walk(fn func(n *Node, depth int)) {
	walk(t.root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int)) {
	fn(n, depth)
	for _, child := range n.Children() {
		walk(child, depth+1, fn)
	}
}

// DumpTo writes one line per node: name and total, indented two spaces per level
func (t *Tree) DumpTo(w io.Writer) error {
	var err error
	t.Walk(func(n *Node, depth int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s%s [%d]\n", strings.Repeat("  ", depth), n.name, n.total)
	})
	return err
}

// Dump returns the tree rendered by DumpTo
func (t *Tree) Dump() string {
	var sb strings.Builder
	t.DumpTo(&sb)
	return sb.String()
}

// Snapshot maps every indexed path to its current total
func (t *Tree) Snapshot() map[string]int {
	info := make(map[string]int, len(t.index))
	for p, n := range t.index {
		info[p] = n.total
	}
	return info
}
