package lock

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/mnove/voidui/internal/checksum"
)

// ErrCorrupt marks a lock file that exists but fails schema validation.
// It is reported to the user, never silently repaired.
var ErrCorrupt = errors.New("lock file is corrupt")

var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Load reads a voidui.lock.json file. A missing file is reported via
// os.ErrNotExist, distinguishable from a corrupt one.
func Load(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Store{}, fmt.Errorf("reading lock file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates voidui.lock.json content.
func Parse(data []byte) (Store, error) {
	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return Store{}, fmt.Errorf("parsing lock JSON: %v: %w", err, ErrCorrupt)
	}
	if err := validate(s); err != nil {
		return Store{}, err
	}
	if s.Components == nil {
		s.Components = map[string]Record{}
	}
	return s, nil
}

// Save writes the lock store to disk as indented JSON.
func Save(path string, s Store) error {
	if err := validate(s); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling lock file: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing lock file: %w", err)
	}
	return nil
}

func validate(s Store) error {
	if s.Version == "" {
		return fmt.Errorf("lock: version is required: %w", ErrCorrupt)
	}
	for name, r := range s.Components {
		if err := validateRecord(name, r); err != nil {
			return err
		}
	}
	return nil
}

func validateRecord(name string, r Record) error {
	if name == "" {
		return fmt.Errorf("lock: component name must not be empty: %w", ErrCorrupt)
	}
	if !versionPattern.MatchString(r.InstalledVersion) {
		return fmt.Errorf("lock: component %q: installedVersion must be MAJOR.MINOR.PATCH (got %q): %w",
			name, r.InstalledVersion, ErrCorrupt)
	}
	if _, err := time.Parse(time.RFC3339, r.InstalledAt); err != nil {
		return fmt.Errorf("lock: component %q: installedAt must be an ISO-8601 timestamp (got %q): %w",
			name, r.InstalledAt, ErrCorrupt)
	}
	if !checksum.Valid(r.Checksum) {
		return fmt.Errorf("lock: component %q: checksum must be sha256: followed by 64 lowercase hex chars (got %q): %w",
			name, r.Checksum, ErrCorrupt)
	}
	return nil
}
