package grantkit

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/fernandezvara/dbkit"
)

// SaveFlattened persists a flattened document to the database,
// replacing any previously persisted result for the same source
// database/schema. The replace and the batch insert run in one
// transaction so readers never see a half-written result set.
func (s *Service) SaveFlattened(ctx context.Context, runID string, doc *FlattenedDocument) error {
	sourceDB := derefString(doc.Database)
	sourceSchema := derefString(doc.Schema)

	rows := make([]*FlattenedGrant, 0, len(doc.GrantsFlattened))
	for _, g := range doc.GrantsFlattened {
		rows = append(rows, &FlattenedGrant{
			RunID:          runID,
			RoleName:       g.RoleName,
			Privilege:      g.Privilege,
			GrantedOn:      g.GrantedOn,
			ObjectName:     g.Name,
			Source:         g.Source,
			SourceDatabase: sourceDB,
			SourceSchema:   sourceSchema,
		})
	}

	return s.Transaction(ctx, func(ctx context.Context, txs *Service) error {
		result, err := txs.db.NewDelete().Table("grants_flattened").
			Where("source_database = ? AND source_schema = ?", sourceDB, sourceSchema).Exec(ctx)
		if err := dbkit.WithErr(result, err, "DeleteFlattenedGrants").Err(); err != nil {
			return NewError(ErrDatabaseError, "failed to clear previous flattened grants")
		}

		if len(rows) == 0 {
			return nil
		}

		_, err = dbkit.BatchInsert(ctx, txs.db, rows, dbkit.BatchSize)
		if err := dbkit.WithErr1(err, "SaveFlattened").Err(); err != nil {
			return NewError(ErrDatabaseError, "failed to insert flattened grants")
		}
		return nil
	})
}

// persistResult saves the flattened rows and records the run audit row.
func (s *Service) persistResult(ctx context.Context, res *FlattenResult, started time.Time) error {
	if err := s.SaveFlattened(ctx, res.RunID, res.Document); err != nil {
		return err
	}

	run := &FlattenRun{
		ID:              res.RunID,
		SourceDatabase:  res.Database,
		SourceSchema:    res.Schema,
		RoleCount:       res.RoleCount,
		TotalGrants:     res.Stats.TotalGrants,
		DirectGrants:    res.Stats.DirectGrants,
		InheritedGrants: res.Stats.InheritedGrants,
		ExpansionRatio:  res.Stats.ExpansionRatio,
		DurationMS:      res.Duration.Milliseconds(),
		StartedAt:       started,
		FinishedAt:      started.Add(res.Duration),
	}

	result, err := s.db.NewInsert().Model(run).Exec(ctx)
	if err := dbkit.WithErr(result, err, "RecordFlattenRun").Err(); err != nil {
		return NewError(ErrDatabaseError, "failed to record flatten run")
	}
	return nil
}

// QueryFlattened retrieves persisted flattened grants with optional
// filters, ordered by role then privilege for stable paging.
func (s *Service) QueryFlattened(ctx context.Context, filter GrantFilter) ([]FlattenedGrant, error) {
	var grants []FlattenedGrant
	q := s.db.NewSelect().Model(&grants)
	if filter.RoleName != "" {
		q = q.Where("role_name = ?", filter.RoleName)
	}
	if filter.Privilege != "" {
		q = q.Where("privilege = ?", filter.Privilege)
	}
	if filter.GrantedOn != "" {
		q = q.Where("granted_on = ?", filter.GrantedOn)
	}
	if filter.ObjectName != "" {
		q = q.Where("object_name = ?", filter.ObjectName)
	}
	if filter.Source != "" {
		q = q.Where("source = ?", filter.Source)
	}
	if filter.RunID != "" {
		q = q.Where("run_id = ?", filter.RunID)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 100 // Default limit
	}
	q = q.Limit(limit)

	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	q = q.Order("role_name ASC", "privilege ASC", "object_name ASC")
	if err := dbkit.WithErr1(q.Scan(ctx), "QueryFlattened").Err(); err != nil {
		return nil, err
	}

	return grants, nil
}

// CountFlattened returns the number of persisted flattened grants.
func (s *Service) CountFlattened(ctx context.Context) (int, error) {
	return dbkit.Count[FlattenedGrant](ctx, s.db, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q
	})
}

// HasFlattenedGrant checks whether a persisted flattened grant exists
// for the exact (role, privilege, granted_on, name) tuple. This is more
// efficient than QueryFlattened when only existence matters.
func (s *Service) HasFlattenedGrant(ctx context.Context, role, privilege, grantedOn, name string) bool {
	exists, err := dbkit.Exists[FlattenedGrant](ctx, s.db, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("role_name = ? AND privilege = ? AND granted_on = ? AND object_name = ?",
			role, privilege, grantedOn, name)
	})
	if err != nil {
		return false
	}
	return exists
}

// QueryRuns retrieves recent flattening runs, newest first.
func (s *Service) QueryRuns(ctx context.Context, limit int) ([]FlattenRun, error) {
	if limit == 0 {
		limit = 20
	}
	var runs []FlattenRun
	q := s.db.NewSelect().Model(&runs).Order("started_at DESC").Limit(limit)
	if err := dbkit.WithErr1(q.Scan(ctx), "QueryRuns").Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
