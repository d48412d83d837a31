package lock

import "maps"

// NewStore returns an empty lock store at the current format version.
func NewStore() Store {
	return Store{Version: FormatVersion, Components: map[string]Record{}}
}

// Upsert returns a copy of the store with the record for name replaced
// or inserted. The receiver is left untouched, so holders of the old
// snapshot never observe the change.
func (s Store) Upsert(name string, r Record) Store {
	out := s
	out.Components = maps.Clone(s.Components)
	if out.Components == nil {
		out.Components = map[string]Record{}
	}
	out.Components[name] = r
	return out
}

// Remove returns a copy of the store without the named component.
// Removing an untracked component is a no-op, not an error.
func (s Store) Remove(name string) Store {
	if _, ok := s.Components[name]; !ok {
		return s
	}
	out := s
	out.Components = maps.Clone(s.Components)
	delete(out.Components, name)
	return out
}

// Get returns the record for name, if tracked.
func (s Store) Get(name string) (Record, bool) {
	r, ok := s.Components[name]
	return r, ok
}

// IsTracked reports whether name has a lock record. Absence means
// "untracked", not "version zero".
func (s Store) IsTracked(name string) bool {
	_, ok := s.Components[name]
	return ok
}
