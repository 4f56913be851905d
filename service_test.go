package grantkit

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServiceRun tests a complete flattening run over a directory store
func TestServiceRun(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)

	service := NewService(NewDirStore(dir), testLogger())
	result, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "PROD", result.Database)
	assert.Equal(t, "PUBLIC", result.Schema)
	assert.Equal(t, 2, result.RoleCount)
	assert.Equal(t, 0, result.Cycles)
	assert.Equal(t, 2, result.Stats.TotalGrants)
	assert.Equal(t, 1, result.Stats.DirectGrants)
	assert.Equal(t, 1, result.Stats.InheritedGrants)
	assert.InDelta(t, 2.0, result.Stats.ExpansionRatio, 0.0001)

	// The flattened artifact landed next to the inputs.
	data, err := os.ReadFile(filepath.Join(dir, FlattenedFile))
	require.NoError(t, err)

	var doc FlattenedDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.GrantsFlattened, 2)
	assert.Equal(t, "ANALYST", doc.GrantsFlattened[0].RoleName)
	assert.Equal(t, InheritedSource("SENIOR_ANALYST"), doc.GrantsFlattened[0].Source)
	assert.Equal(t, "SENIOR_ANALYST", doc.GrantsFlattened[1].RoleName)
	assert.Equal(t, SourceDirect, doc.GrantsFlattened[1].Source)

	// Extra input fields survive into the output.
	assert.Contains(t, doc.GrantsFlattened[1].Extra, "grant_option")
}

// TestServiceRunIdempotent tests that running twice produces the same
// document
func TestServiceRunIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	service := NewService(NewDirStore(dir), testLogger())
	ctx := context.Background()

	first, err := service.Run(ctx)
	require.NoError(t, err)
	second, err := service.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Document, second.Document)
	assert.Equal(t, first.Stats, second.Stats)
}

// TestServiceRunReusesContextRunID tests run ID propagation from context
func TestServiceRunReusesContextRunID(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	service := NewService(NewDirStore(dir), testLogger())

	ctx := WithRunID(context.Background(), "run-123")
	result, err := service.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-123", result.RunID)
}

// TestServiceRunMissingArtifact tests that a missing input aborts the
// run before anything is written
func TestServiceRunMissingArtifact(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, HierarchyFile)))

	service := NewService(NewDirStore(dir), testLogger())
	_, err := service.Run(context.Background())
	require.Error(t, err)
	assert.True(t, IsLoadFailure(err))

	_, statErr := os.Stat(filepath.Join(dir, FlattenedFile))
	assert.True(t, os.IsNotExist(statErr))
}

// TestServiceRunWithCycle tests that a cyclic hierarchy degrades with a
// diagnostic instead of failing the run
func TestServiceRunWithCycle(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	cyclic := `{"grants_hierarchy":[
		{"parent_role":"SENIOR_ANALYST","grantee_name":"ANALYST"},
		{"parent_role":"ANALYST","grantee_name":"SENIOR_ANALYST"}
	]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, HierarchyFile), []byte(cyclic), 0o644))

	service := NewService(NewDirStore(dir), testLogger())
	result, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Greater(t, result.Cycles, 0)
	assert.Equal(t, 2, result.Stats.TotalGrants)
}

// TestServiceChecker tests the query-only pipeline
func TestServiceChecker(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)

	service := NewService(NewDirStore(dir), testLogger())
	checker, err := service.Checker(context.Background())
	require.NoError(t, err)

	assert.True(t, checker.HasPrivilege("ANALYST", "SELECT", "TABLE", "ORDERS"))
	assert.False(t, checker.HasDirectPrivilege("ANALYST", "SELECT", "TABLE", "ORDERS"))
	assert.True(t, checker.HasDirectPrivilege("SENIOR_ANALYST", "SELECT", "TABLE", "ORDERS"))

	// Checker never writes the output artifact.
	_, statErr := os.Stat(filepath.Join(dir, FlattenedFile))
	assert.True(t, os.IsNotExist(statErr))
}
