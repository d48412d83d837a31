// Package changelog models per-component release history and resolves
// the ordered set of entries between two versions. Entries are
// append-only history: once written they are never mutated or deleted.
package changelog
