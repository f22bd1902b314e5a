// Package logging provides a minimal logging facade for the bridge tooling.
//
// The Logger interface wraps a subset of log/slog with context-aware methods.
// The default implementation is slog-backed:
//
//	logger := logging.New(nil)              // slog.Default()
//	logger := logging.NewText(os.Stderr, true) // text records, debug enabled
//
// Packages that accept an optional Logger call OrDiscard so a nil logger is
// never dereferenced.
package logging
