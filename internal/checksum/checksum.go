// Package checksum computes content fingerprints used for drift detection.
// Checksums are taken over line-ending-normalized content so the same
// logical file checksums identically on every platform.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// Prefix identifies the digest algorithm in serialized checksums.
const Prefix = "sha256:"

var sumPattern = regexp.MustCompile(`^sha256:[0-9a-f]{64}$`)

// Normalize converts CRLF line endings to LF.
func Normalize(content string) string {
	return strings.ReplaceAll(content, "\r\n", "\n")
}

// Sum returns the fingerprint of content as "sha256:" followed by
// 64 lowercase hex characters. Line endings are normalized first.
func Sum(content string) string {
	digest := sha256.Sum256([]byte(Normalize(content)))
	return Prefix + hex.EncodeToString(digest[:])
}

// Matches reports whether two checksum strings are identical.
func Matches(expected, actual string) bool {
	return expected == actual
}

// Modified reports drift: true if the current content no longer hashes
// to the checksum recorded at install time.
func Modified(recorded, content string) bool {
	return !Matches(recorded, Sum(content))
}

// Valid reports whether s is a well-formed checksum string.
func Valid(s string) bool {
	return sumPattern.MatchString(s)
}
