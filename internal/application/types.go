package application

import "redpoint/internal/domain"

// Re-export domain types for use by adapters
type (
	Node     = domain.Node
	Callback = domain.Callback
)

// RootName is the default name of the tree root
const RootName = domain.RootName

// BaseName returns the last segment of a path
func BaseName(path string) string {
	return domain.BaseName(path)
}
