package changelog

// ChangeType classifies a single change line within a release entry.
type ChangeType string

const (
	TypeAdded      ChangeType = "added"
	TypeChanged    ChangeType = "changed"
	TypeDeprecated ChangeType = "deprecated"
	TypeRemoved    ChangeType = "removed"
	TypeFixed      ChangeType = "fixed"
	TypeSecurity   ChangeType = "security"
)

// Marker returns the single-character prefix used when rendering a
// change of this type.
func (t ChangeType) Marker() string {
	switch t {
	case TypeAdded:
		return "+"
	case TypeChanged:
		return "~"
	case TypeDeprecated:
		return "!"
	case TypeRemoved:
		return "-"
	case TypeFixed:
		return "*"
	case TypeSecurity:
		return "!"
	default:
		return "?"
	}
}

func (t ChangeType) valid() bool {
	switch t {
	case TypeAdded, TypeChanged, TypeDeprecated, TypeRemoved, TypeFixed, TypeSecurity:
		return true
	}
	return false
}

// Change is one line of a release entry.
type Change struct {
	Type        ChangeType `json:"type"`
	Description string     `json:"description"`
}

// Entry describes one released version of a component.
type Entry struct {
	Version  string   `json:"version"`
	Date     string   `json:"date"`
	Changes  []Change `json:"changes"`
	Breaking bool     `json:"breaking,omitempty"`
}

// Changelog owns the release history of a single component, newest
// entry first. CurrentVersion always equals Entries[0].Version.
type Changelog struct {
	Component      string  `json:"component"`
	CurrentVersion string  `json:"currentVersion"`
	Entries        []Entry `json:"entries"`
}
