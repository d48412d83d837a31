package registry

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a component or version is not in the registry.
var ErrNotFound = errors.New("not found")

// NotFoundError wraps ErrNotFound with the component (and optionally
// version) that was missing.
type NotFoundError struct {
	Name    string
	Version string
}

func (e *NotFoundError) Error() string {
	if e.Version != "" {
		return fmt.Sprintf("component %s version %s not found in registry", e.Name, e.Version)
	}
	return fmt.Sprintf("component %s not found in registry", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// HTTPError represents a non-success HTTP response from the registry.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.URL)
}
