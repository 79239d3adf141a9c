package ports

import "redpoint/internal/domain"

// Redpoints is the access point adapters drive the redpoint tree through
type Redpoints interface {
	RootName() string

	// Count operations
	SetRedpointCount(path string, count int, propagate bool) error
	GetRedpoint(path string, includeChildren bool) int
	HasRedpoint(path string, includeChildren bool) bool

	// Callback operations
	AddCallback(path, key string, cb domain.Callback) error
	RemoveCallback(path, key string) error
	ClearAllCallbacks() error
	RefreshAll() error

	// Structure operations
	InsertNode(path string) error
	GetNode(path string) (*domain.Node, bool)
	HasNode(path string) bool

	// Introspection
	Paths() []string
	Dump() string
	Snapshot() map[string]int
}
