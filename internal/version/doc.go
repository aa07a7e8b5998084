// Package version exposes build metadata of the epsilon-publish tool itself.
//
// Version, Commit and BuildTime can be injected via Go ldflags; when they
// are not, Commit and BuildTime fall back to the VCS stamp embedded by the
// Go toolchain. This is unrelated to the artifact version resolved from the
// environment.
package version
