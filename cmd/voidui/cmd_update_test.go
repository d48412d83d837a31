package main

import (
	"strings"
	"testing"

	"github.com/mnove/voidui/internal/checksum"
	"github.com/mnove/voidui/internal/testutil"
)

func TestRunUpdate_cleanOverwrite(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())
	seedComponent(t, dir, "button", "1.0.0", "a\nb\nc\n")

	out, err := execRoot(t, "--root", dir, "update", "button")
	if err != nil {
		t.Fatalf("update failed: %v\n%s", err, out)
	}

	if got := readComponent(t, dir, "button"); got != "a\nb\nC\n" {
		t.Errorf("content = %q, want upstream content", got)
	}

	rec, _ := loadLock(t, dir).Get("button")
	if rec.InstalledVersion != "2.0.0" {
		t.Errorf("installedVersion = %q, want 2.0.0", rec.InstalledVersion)
	}
	if rec.Checksum != checksum.Sum("a\nb\nC\n") {
		t.Error("checksum should reflect the newly written content")
	}
}

func TestRunUpdate_mergePreservesLocalEdit(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())
	seedComponent(t, dir, "button", "1.0.0", "a\nb\nc\n")

	// User edited line 1, upstream 2.0.0 edited line 3.
	editComponent(t, dir, "button", "A\nb\nc\n")

	out, err := execRoot(t, "--root", dir, "update", "button")
	if err != nil {
		t.Fatalf("update failed: %v\n%s", err, out)
	}

	if got := readComponent(t, dir, "button"); got != "A\nb\nC\n" {
		t.Errorf("merge result = %q, want both edits preserved", got)
	}
	if strings.Contains(out, "conflict") {
		t.Errorf("clean merge should not mention conflicts:\n%s", out)
	}
}

func TestRunUpdate_conflictWrittenAndReported(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())
	seedComponent(t, dir, "button", "1.0.0", "a\nb\nc\n")

	// Both sides rewrote line 3 differently.
	editComponent(t, dir, "button", "a\nb\nLOCAL\n")

	out, err := execRoot(t, "--root", dir, "update", "button")
	if err != nil {
		t.Fatalf("conflicts are a warning, not a failure: %v\n%s", err, out)
	}
	if !strings.Contains(out, "conflict") {
		t.Errorf("expected conflict warning in output:\n%s", out)
	}

	content := readComponent(t, dir, "button")
	if strings.Count(content, "<<<<<<<") != 1 || strings.Count(content, ">>>>>>>") != 1 {
		t.Errorf("expected exactly one conflict region in:\n%s", content)
	}
	if !strings.Contains(content, "LOCAL") || !strings.Contains(content, "C") {
		t.Errorf("conflict region must keep both sides:\n%s", content)
	}

	// Lock still advances: the written file is the new baseline.
	rec, _ := loadLock(t, dir).Get("button")
	if rec.InstalledVersion != "2.0.0" {
		t.Errorf("installedVersion = %q, want 2.0.0", rec.InstalledVersion)
	}
	if rec.Checksum != checksum.Sum(content) {
		t.Error("checksum should match the conflict-marked content on disk")
	}
}

func TestRunUpdate_baseUnavailableNeedsForce(t *testing.T) {
	reg := testutil.NewRegistry(t, map[string]testutil.Component{
		"button": {
			CurrentVersion: "2.0.0",
			Source:         "a\nb\nC\n",
			// No historical sources: merge base is gone.
		},
	})
	dir := setupProject(t, reg.URL())
	seedComponent(t, dir, "button", "1.0.0", "a\nb\nc\n")
	editComponent(t, dir, "button", "a\nEDITED\nc\n")

	// Without a TTY and without --force the update must refuse.
	_, err := execRoot(t, "--root", dir, "update", "button")
	if err == nil {
		t.Fatal("expected error when merge base is unavailable and --force is absent")
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Errorf("error should point at --force: %v", err)
	}
	if got := readComponent(t, dir, "button"); got != "a\nEDITED\nc\n" {
		t.Error("local modifications must be untouched after refusal")
	}

	// With --force the file is overwritten and the lock advances.
	out, err := execRoot(t, "--root", dir, "update", "button", "--force")
	if err != nil {
		t.Fatalf("forced update failed: %v\n%s", err, out)
	}
	if got := readComponent(t, dir, "button"); got != "a\nb\nC\n" {
		t.Errorf("content = %q, want upstream content after forced overwrite", got)
	}
}

func TestRunUpdate_alreadyCurrent(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())
	seedComponent(t, dir, "button", "2.0.0", "a\nb\nC\n")

	out, err := execRoot(t, "--root", dir, "update", "button")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !strings.Contains(out, "already at 2.0.0") {
		t.Errorf("expected up-to-date notice:\n%s", out)
	}
}

func TestRunUpdate_untrackedComponent(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())

	_, err := execRoot(t, "--root", dir, "update", "button")
	if err == nil {
		t.Fatal("updating an untracked component should fail")
	}
	if !strings.Contains(err.Error(), "not tracked") {
		t.Errorf("error = %v", err)
	}
}

func TestRunUpdate_customLabels(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())
	seedComponent(t, dir, "button", "1.0.0", "a\nb\nc\n")
	editComponent(t, dir, "button", "a\nb\nLOCAL\n")

	_, err := execRoot(t, "--root", dir, "update", "button",
		"--ours-label", "mine", "--theirs-label", "registry")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	content := readComponent(t, dir, "button")
	if !strings.Contains(content, "<<<<<<< mine") || !strings.Contains(content, ">>>>>>> registry") {
		t.Errorf("custom labels missing in:\n%s", content)
	}
}
