// Package config defines the publisher settings and provides helpers to
// load, validate and save them in YAML format.
//
// The file is optional: a missing file at the default location yields the
// defaults, while an explicitly named file must exist.
package config
