// Package publisher resolves the build version and publication target from
// the environment and emits the descriptor consumed by the external
// publishing step.
//
// It captures the environment once, applies the configured strategy, lays
// out the Maven publication files, checksums any that were already built,
// and warns about credentials that will not authenticate.
package publisher
