// Package lock handles parsing and writing of voidui.lock.json files.
// The lock file records the installed version and content checksum of
// every tracked component, enabling drift detection against upstream.
package lock
