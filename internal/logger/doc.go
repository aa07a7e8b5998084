// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger writing console output to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (Info, WarnKV, etc.).
//
// Stdout is left to the descriptor output so it can be piped into the
// publisher.
package logger
