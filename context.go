package grantkit

import "context"

// Context keys for GrantKit values.
type contextKey string

const contextKeyRunID contextKey = "grantkit:run_id"

// WithRunID adds a run ID to the context. The service reuses it for log
// correlation and the audit row instead of generating its own.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, contextKeyRunID, runID)
}

// GetRunID retrieves the run ID from context.
// Returns empty string if not set.
func GetRunID(ctx context.Context) string {
	if v := ctx.Value(contextKeyRunID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
