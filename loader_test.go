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

const (
	fixtureRoles = `{
		"database": "PROD",
		"schema": "PUBLIC",
		"roles": [{"name": "ANALYST"}, {"name": "SENIOR_ANALYST"}]
	}`
	fixturePrivileges = `{
		"grants_privileges": [
			{"role_name": "SENIOR_ANALYST", "privilege": "SELECT", "granted_on": "TABLE", "name": "ORDERS", "grant_option": false}
		]
	}`
	fixtureHierarchy = `{
		"grants_hierarchy": [
			{"parent_role": "SENIOR_ANALYST", "grantee_name": "ANALYST"}
		]
	}`
)

// writeFixtures lays the three input artifacts in a directory
func writeFixtures(t *testing.T, dir string) {
	t.Helper()
	for name, content := range map[string]string{
		RolesFile:      fixtureRoles,
		PrivilegesFile: fixturePrivileges,
		HierarchyFile:  fixtureHierarchy,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

// TestDirStoreLoadAll tests loading the three artifacts from disk
func TestDirStoreLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)

	store := NewDirStore(dir)
	assert.Equal(t, dir, store.Dir())
	ctx := context.Background()

	roles, err := store.LoadRoles(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PROD", roles.Database)
	assert.Len(t, roles.Roles, 2)

	privs, err := store.LoadPrivileges(ctx)
	require.NoError(t, err)
	require.Len(t, privs.GrantsPrivileges, 1)
	assert.Equal(t, "SENIOR_ANALYST", privs.GrantsPrivileges[0].RoleName)
	assert.Contains(t, privs.GrantsPrivileges[0].Extra, "grant_option")

	hier, err := store.LoadHierarchy(ctx)
	require.NoError(t, err)
	require.Len(t, hier.GrantsHierarchy, 1)
	assert.Equal(t, "ANALYST", hier.GrantsHierarchy[0].GranteeName)
}

// TestDirStoreLoadMissingFile tests the load failure sentinel for a
// missing artifact
func TestDirStoreLoadMissingFile(t *testing.T) {
	store := NewDirStore(t.TempDir())

	_, err := store.LoadRoles(context.Background())
	require.Error(t, err)
	assert.True(t, IsLoadFailure(err))

	var gkErr *Error
	require.ErrorAs(t, err, &gkErr)
	assert.Equal(t, RolesFile, gkErr.Artifact)
}

// TestDirStoreLoadMalformedJSON tests the load failure sentinel for an
// undecodable artifact
func TestDirStoreLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, HierarchyFile), []byte("{not json"), 0o644))

	_, err := NewDirStore(dir).LoadHierarchy(context.Background())
	require.Error(t, err)
	assert.True(t, IsLoadFailure(err))

	var gkErr *Error
	require.ErrorAs(t, err, &gkErr)
	assert.Equal(t, HierarchyFile, gkErr.Artifact)
}

// TestDirStoreWriteFlattened tests writing and re-reading the output
// document
func TestDirStoreWriteFlattened(t *testing.T) {
	dir := t.TempDir()
	store := NewDirStore(dir)

	doc := (&RolesDocument{Database: "PROD", Schema: "PUBLIC"}).Document([]PrivilegeGrant{
		tagged("ANALYST", "SELECT", "TABLE", "ORDERS", InheritedSource("SENIOR_ANALYST")),
	})
	require.NoError(t, store.WriteFlattened(context.Background(), doc))

	data, err := os.ReadFile(filepath.Join(dir, FlattenedFile))
	require.NoError(t, err)

	var back FlattenedDocument
	require.NoError(t, json.Unmarshal(data, &back))
	require.NotNil(t, back.Database)
	assert.Equal(t, "PROD", *back.Database)
	require.Len(t, back.GrantsFlattened, 1)
	assert.Equal(t, InheritedSource("SENIOR_ANALYST"), back.GrantsFlattened[0].Source)
}

// TestDirStoreWriteFlattenedUnwritableDir tests the write failure
// sentinel
func TestDirStoreWriteFlattenedUnwritableDir(t *testing.T) {
	store := NewDirStore(filepath.Join(t.TempDir(), "missing", "nested"))

	err := store.WriteFlattened(context.Background(), &FlattenedDocument{})
	require.Error(t, err)
	assert.True(t, IsWriteFailure(err))
	assert.False(t, IsLoadFailure(err))
}
