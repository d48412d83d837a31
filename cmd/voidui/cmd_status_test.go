package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRunStatus_table(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())
	seedComponent(t, dir, "button", "1.0.0", "a\nb\nc\n")

	out, err := execRoot(t, "--root", dir, "status")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if !strings.Contains(out, "COMPONENT") {
		t.Errorf("missing table header:\n%s", out)
	}
	if !strings.Contains(out, "button") || !strings.Contains(out, "1.0.0") || !strings.Contains(out, "2.0.0") {
		t.Errorf("missing component row data:\n%s", out)
	}
	if !strings.Contains(out, "update available") {
		t.Errorf("expected update available state:\n%s", out)
	}
}

func TestRunStatus_json(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())
	seedComponent(t, dir, "button", "1.0.0", "a\nb\nc\n")

	// Hand-edit the file so drift is reported.
	editComponent(t, dir, "button", "a\nEDITED\nc\n")

	out, err := execRoot(t, "--root", dir, "status", "--json")
	if err != nil {
		t.Fatalf("status --json failed: %v", err)
	}

	var statuses []componentStatus
	if err := json.Unmarshal([]byte(out), &statuses); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status entry, got %d", len(statuses))
	}
	s := statuses[0]
	if s.Name != "button" {
		t.Errorf("name = %q", s.Name)
	}
	if !s.Modified {
		t.Error("hand-edited component should report modified = true")
	}
	if s.Latest != "2.0.0" {
		t.Errorf("latest = %q, want 2.0.0", s.Latest)
	}
}

func TestRunStatus_missingFile(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())
	seedComponent(t, dir, "button", "1.0.0", "a\nb\nc\n")
	editComponentRemove(t, dir, "button")

	out, err := execRoot(t, "--root", dir, "status", "--json")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	var statuses []componentStatus
	if err := json.Unmarshal([]byte(out), &statuses); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if !statuses[0].Missing {
		t.Error("deleted component file should report missing = true")
	}
}

func TestRunStatus_untrackedProject(t *testing.T) {
	reg := buttonRegistry(t)
	dir := setupProject(t, reg.URL())

	out, err := execRoot(t, "--root", dir, "status")
	if err != nil {
		t.Fatalf("status on empty project failed: %v", err)
	}
	if !strings.Contains(out, "COMPONENT") {
		t.Errorf("expected header even with no components:\n%s", out)
	}
}
