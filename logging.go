package grantkit

import "log/slog"

// logOrDefault returns the given logger, or slog.Default when nil, so
// callers can always pass through whatever they were configured with.
func logOrDefault(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
