// Package project integrates config and lock loading with path
// resolution. It provides the Context type holding resolved project
// paths, the parsed .voidui.yaml config, and the lock store if one
// exists.
package project
