// Package logger holds the structured logger shared by the check operations.
package logger

import "log/slog"

// Discard drops all output. It is the default for every operation.
var Discard = slog.New(slog.DiscardHandler)

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard
	}

	return l
}
