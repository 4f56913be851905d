package grantkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransactionWithoutDatabase tests that the wrapper refuses to run
// without a transactional handle
func TestTransactionWithoutDatabase(t *testing.T) {
	service := NewService(NewDirStore(t.TempDir()), testLogger())

	called := false
	err := service.Transaction(context.Background(), func(ctx context.Context, txs *Service) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}

// TestWithDB tests that the transaction-bound copy swaps only the
// database handle
func TestWithDB(t *testing.T) {
	store := NewDirStore(t.TempDir())
	service := NewService(store, testLogger())

	bound := service.withDB(nil)
	assert.Same(t, service.store, bound.store)
	assert.Same(t, service.logger, bound.logger)
	assert.NotSame(t, service, bound)
}
