package merge

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Default conflict marker labels.
const (
	DefaultOursLabel   = "your changes"
	DefaultTheirsLabel = "theirs (upstream)"
)

// Options configures the labels used on conflict markers.
type Options struct {
	OursLabel   string
	TheirsLabel string
}

// Result is the outcome of one merge invocation. Content is always
// populated, with conflict markers when Conflicts > 0.
type Result struct {
	Ok        bool
	Content   string
	Conflicts int
}

const (
	sideOurs = iota
	sideTheirs
)

// hunk is one contiguous change a side made relative to base:
// base[baseStart:baseEnd] was replaced by side[sideStart:sideEnd].
type hunk struct {
	side               int
	baseStart, baseEnd int
	sideStart, sideEnd int
}

func (h hunk) zeroLen() bool { return h.baseStart == h.baseEnd }

// Merge performs a three-way line merge of ours and theirs against
// their common ancestor base. The same three inputs always produce the
// same output, byte for byte.
func Merge(base, ours, theirs string, opts Options) Result {
	if opts.OursLabel == "" {
		opts.OursLabel = DefaultOursLabel
	}
	if opts.TheirsLabel == "" {
		opts.TheirsLabel = DefaultTheirsLabel
	}

	baseLines := strings.Split(base, "\n")
	oursLines := strings.Split(ours, "\n")
	theirsLines := strings.Split(theirs, "\n")

	hunks := append(
		sideHunks(sideOurs, baseLines, oursLines),
		sideHunks(sideTheirs, baseLines, theirsLines)...,
	)
	sort.Slice(hunks, func(i, j int) bool {
		if hunks[i].baseStart != hunks[j].baseStart {
			return hunks[i].baseStart < hunks[j].baseStart
		}
		// Wider hunks first so touching insertions fold into them.
		if hunks[i].baseEnd != hunks[j].baseEnd {
			return hunks[i].baseEnd > hunks[j].baseEnd
		}
		return hunks[i].side < hunks[j].side
	})

	var out []string
	conflicts := 0
	cursor := 0

	for i := 0; i < len(hunks); {
		rs, re := hunks[i].baseStart, hunks[i].baseEnd
		j := i + 1
		for j < len(hunks) {
			next := hunks[j]
			overlaps := next.baseStart < re
			// Two insertions at the same point compete for one spot.
			sameSpot := rs == re && next.baseStart == re && next.zeroLen()
			if !overlaps && !sameSpot {
				break
			}
			if next.baseEnd > re {
				re = next.baseEnd
			}
			j++
		}

		out = append(out, baseLines[cursor:rs]...)

		region := hunks[i:j]
		oursSeg := sideSegment(filterSide(region, sideOurs), oursLines, baseLines, rs, re)
		theirsSeg := sideSegment(filterSide(region, sideTheirs), theirsLines, baseLines, rs, re)

		switch {
		case !touched(region, sideTheirs):
			out = append(out, oursSeg...)
		case !touched(region, sideOurs):
			out = append(out, theirsSeg...)
		case equalLines(oursSeg, theirsSeg):
			// Both sides made the same change.
			out = append(out, oursSeg...)
		default:
			conflicts++
			out = append(out, "<<<<<<< "+opts.OursLabel)
			out = append(out, oursSeg...)
			out = append(out, "=======")
			out = append(out, theirsSeg...)
			out = append(out, ">>>>>>> "+opts.TheirsLabel)
		}

		cursor = re
		i = j
	}
	out = append(out, baseLines[cursor:]...)

	return Result{
		Ok:        conflicts == 0,
		Content:   strings.Join(out, "\n"),
		Conflicts: conflicts,
	}
}

// sideHunks diffs one side against base and returns its change hunks.
// Junk heuristics are disabled so the merge stays deterministic on
// files with many repeated lines.
func sideHunks(side int, baseLines, sideLines []string) []hunk {
	m := difflib.NewMatcherWithJunk(baseLines, sideLines, false, nil)
	var hunks []hunk
	for _, op := range m.GetOpCodes() {
		if op.Tag == 'e' {
			continue
		}
		hunks = append(hunks, hunk{
			side:      side,
			baseStart: op.I1, baseEnd: op.I2,
			sideStart: op.J1, sideEnd: op.J2,
		})
	}
	return hunks
}

func filterSide(region []hunk, side int) []hunk {
	var out []hunk
	for _, h := range region {
		if h.side == side {
			out = append(out, h)
		}
	}
	return out
}

func touched(region []hunk, side int) bool {
	for _, h := range region {
		if h.side == side {
			return true
		}
	}
	return false
}

// sideSegment returns the side's text aligned with base[rs:re]. Between
// a side's hunks the side matches base line for line, so the segment
// bounds follow from the first and last hunk offsets.
func sideSegment(hunks []hunk, sideLines, baseLines []string, rs, re int) []string {
	if len(hunks) == 0 {
		return baseLines[rs:re]
	}
	first, last := hunks[0], hunks[len(hunks)-1]
	s := first.sideStart - (first.baseStart - rs)
	e := last.sideEnd + (re - last.baseEnd)
	return sideLines[s:e]
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
