// Package diffutil renders unified diffs for human inspection. The
// output is display-only text and is never parsed back.
package diffutil

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultContext is the number of context lines around each hunk.
const DefaultContext = 3

// Unified returns a unified diff between old and new content. context
// values below zero fall back to DefaultContext.
func Unified(oldContent, newContent, oldLabel, newLabel string, context int) (string, error) {
	if context < 0 {
		context = DefaultContext
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldContent),
		B:        difflib.SplitLines(newContent),
		FromFile: oldLabel,
		ToFile:   newLabel,
		Context:  context,
		Eol:      "\n",
	})
	if err != nil {
		return "", fmt.Errorf("rendering unified diff: %w", err)
	}
	return text, nil
}
