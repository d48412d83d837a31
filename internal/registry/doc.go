// Package registry fetches component metadata and source code from a
// voidui component registry over HTTP. A missing component or version
// is a normal outcome, reported as ErrNotFound. Transient failures get
// a single bounded retry and nothing more.
package registry
