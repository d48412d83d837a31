// Package testutil provides fake collaborators for command tests: an
// in-process component registry and helpers for seeding projects.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mnove/voidui/internal/changelog"
)

// Component is one component served by the fake registry.
type Component struct {
	CurrentVersion    string
	AvailableVersions []string
	Changelog         []changelog.Entry
	Source            string
	// Sources holds historical source by version, used as merge bases.
	Sources map[string]string
}

// Registry is an in-process component registry for tests.
type Registry struct {
	Server     *httptest.Server
	Components map[string]Component
}

// NewRegistry starts a fake registry serving the given components.
// It is shut down automatically when the test finishes.
func NewRegistry(t *testing.T, components map[string]Component) *Registry {
	t.Helper()
	r := &Registry{Components: components}
	r.Server = httptest.NewServer(http.HandlerFunc(r.handle))
	t.Cleanup(r.Server.Close)
	return r
}

// URL returns the registry base URL.
func (r *Registry) URL() string {
	return r.Server.URL
}

func (r *Registry) handle(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, "/components/")

	// /components/{name}/{version}/source
	if parts := strings.Split(path, "/"); len(parts) == 3 && parts[2] == "source" {
		c, ok := r.Components[parts[0]]
		if !ok {
			http.NotFound(w, req)
			return
		}
		src, ok := c.Sources[parts[1]]
		if !ok {
			http.NotFound(w, req)
			return
		}
		_, _ = w.Write([]byte(src))
		return
	}

	// /components/{name}.json
	name := strings.TrimSuffix(path, ".json")
	c, ok := r.Components[name]
	if !ok {
		http.NotFound(w, req)
		return
	}
	item := map[string]any{
		"name":              name,
		"currentVersion":    c.CurrentVersion,
		"availableVersions": c.AvailableVersions,
		"changelog":         c.Changelog,
		"source":            c.Source,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(item)
}
