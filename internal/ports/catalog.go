package ports

// CatalogSource provides the node paths a redpoint tree is built from
type CatalogSource interface {
	Paths() ([]string, error)
}

// CatalogStore persists paths registered on top of the static catalog.
// Only the tree shape is stored, never counts.
type CatalogStore interface {
	CatalogSource

	// Lifecycle
	Open(dbPath string) error
	Close() error

	// Add registers a path; registering a known path is a no-op
	Add(path string) (bool, error)
}
