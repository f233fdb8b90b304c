// Package logging provides concrete implementations of the hashify.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: writes formatted messages to stderr with verbose gating
//   - NullLogger: discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
