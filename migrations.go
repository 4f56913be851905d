package grantkit

import (
	"github.com/fernandezvara/dbkit"
)

// Migrations returns all database migrations required for GrantKit
// persistence. Use dbkit.Migrate(ctx, service.Migrations()) to run them.
// Persistence is optional: a service without a database never needs
// these tables.
func (s *Service) Migrations() []dbkit.Migration {
	return []dbkit.Migration{
		{
			ID:          "grantkit-001",
			Description: "Create grants_flattened table",
			SQL: `
                CREATE TABLE IF NOT EXISTS grants_flattened (
                    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
                    run_id UUID NOT NULL,
                    role_name TEXT NOT NULL,
                    privilege TEXT NOT NULL,
                    granted_on TEXT NOT NULL,
                    object_name TEXT NOT NULL,
                    source TEXT NOT NULL,
                    source_database TEXT,
                    source_schema TEXT,
                    created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp
                )`,
		},
		{
			ID:          "grantkit-002",
			Description: "Create flatten_runs table",
			SQL: `
                CREATE TABLE IF NOT EXISTS flatten_runs (
                    id UUID PRIMARY KEY,
                    source_database TEXT,
                    source_schema TEXT,
                    role_count INTEGER NOT NULL,
                    total_grants INTEGER NOT NULL,
                    direct_grants INTEGER NOT NULL,
                    inherited_grants INTEGER NOT NULL,
                    expansion_ratio DOUBLE PRECISION NOT NULL,
                    duration_ms BIGINT NOT NULL,
                    started_at TIMESTAMPTZ NOT NULL,
                    finished_at TIMESTAMPTZ NOT NULL
                )`,
		},
		{
			ID:          "grantkit-003",
			Description: "Index flattened grants by role",
			SQL: `
                CREATE INDEX IF NOT EXISTS idx_grants_flattened_role
                    ON grants_flattened (role_name)`,
		},
	}
}
