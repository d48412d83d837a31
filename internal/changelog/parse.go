package changelog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"golang.org/x/mod/semver"
)

// ErrCorrupt marks a changelog file that fails schema validation.
var ErrCorrupt = errors.New("changelog is corrupt")

var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Load reads a component changelog JSON file.
func Load(path string) (*Changelog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading changelog: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates component changelog content.
func Parse(data []byte) (*Changelog, error) {
	var cl Changelog
	if err := json.Unmarshal(data, &cl); err != nil {
		return nil, fmt.Errorf("parsing changelog JSON: %v: %w", err, ErrCorrupt)
	}
	if err := Validate(&cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// Save validates and writes a component changelog to disk.
func Save(path string, cl *Changelog) error {
	if err := Validate(cl); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cl, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling changelog: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing changelog: %w", err)
	}
	return nil
}

// Validate checks the changelog invariants: version formats, change
// type enums, non-empty descriptions, newest-first ordering, and
// currentVersion matching the newest entry.
func Validate(cl *Changelog) error {
	if cl.Component == "" {
		return fmt.Errorf("changelog: component is required: %w", ErrCorrupt)
	}
	if !versionPattern.MatchString(cl.CurrentVersion) {
		return fmt.Errorf("changelog: %s: currentVersion must be MAJOR.MINOR.PATCH (got %q): %w",
			cl.Component, cl.CurrentVersion, ErrCorrupt)
	}
	for i, e := range cl.Entries {
		if err := validateEntry(cl.Component, i, e); err != nil {
			return err
		}
		if i > 0 && semver.Compare("v"+cl.Entries[i-1].Version, "v"+e.Version) <= 0 {
			return fmt.Errorf("changelog: %s: entries must be newest-first (%s appears before %s): %w",
				cl.Component, cl.Entries[i-1].Version, e.Version, ErrCorrupt)
		}
	}
	if len(cl.Entries) > 0 && cl.Entries[0].Version != cl.CurrentVersion {
		return fmt.Errorf("changelog: %s: currentVersion %s does not match newest entry %s: %w",
			cl.Component, cl.CurrentVersion, cl.Entries[0].Version, ErrCorrupt)
	}
	return nil
}

func validateEntry(component string, i int, e Entry) error {
	if !versionPattern.MatchString(e.Version) {
		return fmt.Errorf("changelog: %s: entries[%d].version must be MAJOR.MINOR.PATCH (got %q): %w",
			component, i, e.Version, ErrCorrupt)
	}
	if _, err := time.Parse(time.RFC3339, e.Date); err != nil {
		return fmt.Errorf("changelog: %s: entries[%d].date must be an ISO-8601 timestamp (got %q): %w",
			component, i, e.Date, ErrCorrupt)
	}
	if len(e.Changes) == 0 {
		return fmt.Errorf("changelog: %s: entries[%d].changes must not be empty: %w",
			component, i, ErrCorrupt)
	}
	for j, c := range e.Changes {
		if !c.Type.valid() {
			return fmt.Errorf("changelog: %s: entries[%d].changes[%d].type %q is not a known change type: %w",
				component, i, j, c.Type, ErrCorrupt)
		}
		if c.Description == "" {
			return fmt.Errorf("changelog: %s: entries[%d].changes[%d].description is required: %w",
				component, i, j, ErrCorrupt)
		}
	}
	return nil
}

// Prepend returns a copy of the changelog with a new newest entry.
// History is immutable: existing entries are never touched, and the
// new entry's version must be greater than the current one.
func Prepend(cl *Changelog, e Entry) (*Changelog, error) {
	if len(cl.Entries) > 0 && semver.Compare("v"+e.Version, "v"+cl.Entries[0].Version) <= 0 {
		return nil, fmt.Errorf("changelog: %s: new entry %s must be newer than %s",
			cl.Component, e.Version, cl.Entries[0].Version)
	}
	out := &Changelog{
		Component:      cl.Component,
		CurrentVersion: e.Version,
		Entries:        append([]Entry{e}, cl.Entries...),
	}
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}
