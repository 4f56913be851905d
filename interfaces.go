package grantkit

import "context"

// GrantFlattener is the behavior of the flattening engine, for callers
// that want to substitute their own implementation in tests.
type GrantFlattener interface {
	FlattenRole(role string) []PrivilegeGrant
	FlattenAll() []PrivilegeGrant
}

// ResultStore defines the database persistence operations for flattened
// grants.
type ResultStore interface {
	SaveFlattened(ctx context.Context, runID string, doc *FlattenedDocument) error
	QueryFlattened(ctx context.Context, filter GrantFilter) ([]FlattenedGrant, error)
	CountFlattened(ctx context.Context) (int, error)
	QueryRuns(ctx context.Context, limit int) ([]FlattenRun, error)
}

// Runner executes complete flattening runs.
type Runner interface {
	Run(ctx context.Context) (*FlattenResult, error)
}
