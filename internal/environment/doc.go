// Package environment captures the process environment into an immutable
// Snapshot that is passed explicitly to every resolver.
//
// Capture reads os.Environ once; FromMap builds a snapshot from a synthetic
// map for tests and embedding callers.
package environment
