// Package merge implements a three-way line merge between a base
// version, the user's current copy, and new upstream content. Regions
// changed on only one side merge automatically; regions changed on both
// sides are emitted with conflict markers for manual resolution. The
// merge never drops a change silently and never fails: conflicts are
// surfaced as data in the Result.
package merge
