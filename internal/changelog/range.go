package changelog

import (
	"fmt"
	"strings"
)

// EntriesBetween returns the entries spanning fromVersion..toVersion,
// inclusive on both ends, reordered oldest-first for chronological
// narration. The direction of the arguments does not matter. If either
// version has no entry the result is empty: callers treat that as
// "no changelog data available", not as a failure.
func EntriesBetween(entries []Entry, fromVersion, toVersion string) []Entry {
	from := indexOf(entries, fromVersion)
	to := indexOf(entries, toVersion)
	if from < 0 || to < 0 {
		return nil
	}
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}

	// Entries are stored newest-first; reverse the slice so the result
	// reads oldest-first.
	out := make([]Entry, 0, hi-lo+1)
	for i := hi; i >= lo; i-- {
		out = append(out, entries[i])
	}
	return out
}

func indexOf(entries []Entry, version string) int {
	for i, e := range entries {
		if e.Version == version {
			return i
		}
	}
	return -1
}

// Summarize renders one entry as human-readable text, one change per
// line, each prefixed by its type marker.
func Summarize(e Entry) string {
	var b strings.Builder
	header := e.Version
	if e.Breaking {
		header += " (breaking)"
	}
	fmt.Fprintf(&b, "%s (%s)\n", header, e.Date)
	for _, c := range e.Changes {
		fmt.Fprintf(&b, "  %s %s\n", c.Type.Marker(), c.Description)
	}
	return b.String()
}

// SummarizeRange renders a sequence of entries oldest-first, separated
// by blank lines.
func SummarizeRange(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, Summarize(e))
	}
	return strings.Join(parts, "\n")
}
