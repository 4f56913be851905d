package grantkit

import (
	"context"
	"fmt"

	"github.com/fernandezvara/dbkit"
)

// Transaction executes a function within a database transaction with
// automatic commit/rollback. The callback receives a Service bound to
// the transaction; persistence calls made through it run inside the
// transaction. If the function returns an error, the transaction is
// rolled back; otherwise it is committed. Nested calls use savepoints.
//
// Example:
//
//	err := service.Transaction(ctx, func(ctx context.Context, txs *grantkit.Service) error {
//	    if err := txs.SaveFlattened(ctx, runID, doc); err != nil {
//	        return err // This will cause a rollback
//	    }
//	    return nil // This will cause a commit
//	})
func (s *Service) Transaction(ctx context.Context, fn func(ctx context.Context, txs *Service) error) error {
	bound := func(tx *dbkit.Tx) error {
		return fn(ctx, s.withDB(tx))
	}

	// Check if we're already in a transaction by casting to dbkit.Tx
	if tx, ok := s.db.(*dbkit.Tx); ok {
		return tx.Transaction(ctx, bound)
	}

	if db, ok := s.db.(*dbkit.DBKit); ok {
		return db.Transaction(ctx, bound)
	}

	return fmt.Errorf("transaction support requires a dbkit.DBKit or dbkit.Tx instance")
}

// withDB returns a copy of the service with its statements routed
// through the given handle.
func (s *Service) withDB(db dbkit.IDB) *Service {
	return &Service{
		store:  s.store,
		db:     db,
		logger: s.logger,
	}
}
