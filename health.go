package grantkit

import (
	"context"

	"github.com/fernandezvara/dbkit"
)

// Health performs a health check of the database connection, returning
// detailed status including latency and connection pool statistics.
// Returns an unhealthy status when the service has no database.
func (s *Service) Health(ctx context.Context) dbkit.HealthStatus {
	if s.db == nil {
		return dbkit.HealthStatus{
			Healthy: false,
			Error:   "no database configured",
		}
	}

	if db, ok := s.db.(*dbkit.DBKit); ok {
		return db.Health(ctx)
	}

	return dbkit.HealthStatus{
		Healthy: s.Ping(ctx) == nil,
		Error:   "limited health check - not a DBKit instance",
	}
}

// Ping performs a basic connectivity test to the database.
// Returns an error if the database is not configured or not reachable.
func (s *Service) Ping(ctx context.Context) error {
	if s.db == nil {
		return NewError(ErrDatabaseError, "no database configured")
	}

	var result int
	return s.db.NewSelect().Model((*struct{})(nil)).ColumnExpr("1").Limit(1).Scan(ctx, &result)
}
