package application

import (
	"fmt"
	"strconv"
	"strings"

	"redpoint/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "callbackKey" -> "callback key")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"path":        "path",
		"callbackKey": "callback key",
		"count":       "count",
		"assignment":  "assignment",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidatePath checks that path is a well-formed node path under root.
// The returned ValidationError unwraps to ErrInvalidPath.
func ValidatePath(fieldName, path, root string) error {
	if err := ValidateRequired(fieldName, path); err != nil {
		return err
	}
	if err := domain.ValidatePath(path, root); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: err.Error(),
			Err:     err,
		}
	}
	return nil
}

// ParseAssignment splits a "path=count" pair
// e.g., "AllRoot/Root/ModelA=3" -> ("AllRoot/Root/ModelA", 3)
func ParseAssignment(s string) (string, int, error) {
	path, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, &ValidationError{
			Field:   "assignment",
			Message: fmt.Sprintf("expected path=count, got: %s", s),
		}
	}

	count, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return "", 0, &ValidationError{
			Field:   "count",
			Message: fmt.Sprintf("count must be an integer, got: %s", value),
		}
	}
	return strings.TrimSpace(path), count, nil
}
