package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mnove/voidui/internal/changelog"
)

func TestRunChangelog_createsFile(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())

	out, err := execRoot(t, "--root", dir, "changelog", "button",
		"--version", "1.0.0", "--type", "added", "--message", "initial release")
	if err != nil {
		t.Fatalf("changelog failed: %v", err)
	}
	if !strings.Contains(out, "Recorded button 1.0.0") {
		t.Errorf("missing confirmation:\n%s", out)
	}

	cl, err := changelog.Load(filepath.Join(dir, "changelogs", "button.changelog.json"))
	if err != nil {
		t.Fatalf("written changelog should load: %v", err)
	}
	if cl.CurrentVersion != "1.0.0" || len(cl.Entries) != 1 {
		t.Errorf("unexpected changelog: %+v", cl)
	}
	if cl.Entries[0].Changes[0].Type != changelog.TypeAdded {
		t.Errorf("change type = %q", cl.Entries[0].Changes[0].Type)
	}
}

func TestRunChangelog_prepends(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())

	if _, err := execRoot(t, "--root", dir, "changelog", "button",
		"--version", "1.0.0", "--message", "initial release"); err != nil {
		t.Fatal(err)
	}
	if _, err := execRoot(t, "--root", dir, "changelog", "button",
		"--version", "2.0.0", "--message", "new api", "--breaking"); err != nil {
		t.Fatal(err)
	}

	cl, err := changelog.Load(filepath.Join(dir, "changelogs", "button.changelog.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cl.CurrentVersion != "2.0.0" {
		t.Errorf("currentVersion = %q, want 2.0.0", cl.CurrentVersion)
	}
	if len(cl.Entries) != 2 || cl.Entries[0].Version != "2.0.0" {
		t.Errorf("new entry should be first: %+v", cl.Entries)
	}
	if !cl.Entries[0].Breaking {
		t.Error("breaking flag should be recorded")
	}
	if cl.Entries[1].Version != "1.0.0" {
		t.Error("existing entries must be preserved untouched")
	}
}

func TestRunChangelog_rejectsOlderVersion(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())

	if _, err := execRoot(t, "--root", dir, "changelog", "button",
		"--version", "2.0.0", "--message", "new api"); err != nil {
		t.Fatal(err)
	}
	_, err := execRoot(t, "--root", dir, "changelog", "button",
		"--version", "1.0.0", "--message", "too late")
	if err == nil {
		t.Fatal("prepending an older version should fail")
	}
}

func TestRunChangelog_requiresFlagsWithoutTTY(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())

	_, err := execRoot(t, "--root", dir, "changelog", "button")
	if err == nil {
		t.Fatal("expected error without --version/--message on a non-TTY")
	}
	if !strings.Contains(err.Error(), "--version") {
		t.Errorf("error should point at the flags: %v", err)
	}
}
