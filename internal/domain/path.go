package domain

import (
	"fmt"
	"strings"
)

const (
	// Separator joins the segments of a node path
	Separator = "/"
	// RootName names the fixed root of the default catalog
	RootName = "AllRoot"
)

// SplitPath breaks a path into its segments (e.g., "AllRoot/Root/ModelA" -> [AllRoot Root ModelA])
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, Separator)
}

// JoinPath joins segments into a path
func JoinPath(segments ...string) string {
	return strings.Join(segments, Separator)
}

// ValidatePath checks that a path is non-empty, has no empty segments
// and starts at the given root
func ValidatePath(path, root string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	segments := SplitPath(path)
	for i, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			return fmt.Errorf("%w: empty segment %d in %q", ErrInvalidPath, i, path)
		}
	}

	if segments[0] != root {
		return fmt.Errorf("%w: %q does not start at root %q", ErrInvalidPath, path, root)
	}
	return nil
}

// ParentPath returns the path of the enclosing node
// e.g., "AllRoot/Root/ModelA" -> "AllRoot/Root"
func ParentPath(path string) (string, bool) {
	i := strings.LastIndex(path, Separator)
	if i < 0 {
		return "", false
	}
	return path[:i], true
}

// BaseName returns the last segment of a path
// e.g., "AllRoot/Root/ModelA" -> "ModelA"
func BaseName(path string) string {
	i := strings.LastIndex(path, Separator)
	return path[i+1:]
}
