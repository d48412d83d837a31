package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mnove/voidui/internal/changelog"
	"github.com/mnove/voidui/internal/checksum"
	"github.com/mnove/voidui/internal/lock"
	"github.com/mnove/voidui/internal/project"
	"github.com/mnove/voidui/internal/testutil"
)

// setupProject writes a project config pointing at the given registry
// and returns the project directory.
func setupProject(t *testing.T, registryURL string) string {
	t.Helper()
	dir := t.TempDir()
	cfg := project.Config{
		RegistryURL:   registryURL,
		ComponentsDir: "components/ui",
		Extension:     ".tsx",
		Installer:     []string{"sh", "-c", "mkdir -p components/ui && printf 'installed {name}\\n' > components/ui/{name}.tsx"},
		ChangelogDir:  "changelogs",
	}
	if err := project.SaveConfig(filepath.Join(dir, project.ConfigFileName), cfg); err != nil {
		t.Fatal(err)
	}
	return dir
}

// seedComponent writes a component file and its lock record, simulating
// an earlier successful install of the given version.
func seedComponent(t *testing.T, dir, name, version, content string) {
	t.Helper()

	path := filepath.Join(dir, "components", "ui", name+".tsx")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lockPath := filepath.Join(dir, project.LockFileName)
	store := lock.NewStore()
	if data, err := os.ReadFile(lockPath); err == nil {
		store, err = lock.Parse(data)
		if err != nil {
			t.Fatal(err)
		}
	}
	store = store.Upsert(name, lock.Record{
		InstalledVersion: version,
		InstalledAt:      "2026-01-01T00:00:00Z",
		Checksum:         checksum.Sum(content),
	})
	if err := lock.Save(lockPath, store); err != nil {
		t.Fatal(err)
	}
}

// editComponent overwrites a component file without touching the lock,
// simulating a local hand edit.
func editComponent(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, "components", "ui", name+".tsx")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// editComponentRemove deletes a component file, leaving the lock intact.
func editComponentRemove(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.Remove(filepath.Join(dir, "components", "ui", name+".tsx")); err != nil {
		t.Fatal(err)
	}
}

func readComponent(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "components", "ui", name+".tsx"))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func loadLock(t *testing.T, dir string) lock.Store {
	t.Helper()
	s, err := lock.Load(filepath.Join(dir, project.LockFileName))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// execRoot runs the CLI with the given args and returns combined output.
func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func buttonChangelog() []changelog.Entry {
	return []changelog.Entry{
		{
			Version: "2.0.0",
			Date:    "2026-03-01T00:00:00Z",
			Changes: []changelog.Change{
				{Type: changelog.TypeChanged, Description: "renamed variant prop to appearance"},
			},
			Breaking: true,
		},
		{
			Version: "1.1.0",
			Date:    "2026-02-01T00:00:00Z",
			Changes: []changelog.Change{
				{Type: changelog.TypeAdded, Description: "loading state"},
			},
		},
		{
			Version: "1.0.0",
			Date:    "2026-01-01T00:00:00Z",
			Changes: []changelog.Change{
				{Type: changelog.TypeAdded, Description: "initial release"},
			},
		},
	}
}

func buttonRegistry(t *testing.T) *testutil.Registry {
	t.Helper()
	return testutil.NewRegistry(t, map[string]testutil.Component{
		"button": {
			CurrentVersion:    "2.0.0",
			AvailableVersions: []string{"2.0.0", "1.1.0", "1.0.0"},
			Changelog:         buttonChangelog(),
			Source:            "a\nb\nC\n",
			Sources: map[string]string{
				"2.0.0": "a\nb\nC\n",
				"1.0.0": "a\nb\nc\n",
			},
		},
	})
}
