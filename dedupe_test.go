package grantkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagged(role, privilege, grantedOn, name, source string) PrivilegeGrant {
	g := grant(role, privilege, grantedOn, name)
	g.Source = source
	return g
}

// TestDedupeGrantsNoDuplicates tests that distinct keys pass through in
// order
func TestDedupeGrantsNoDuplicates(t *testing.T) {
	in := []PrivilegeGrant{
		tagged("R", "SELECT", "TABLE", "T1", SourceDirect),
		tagged("R", "SELECT", "TABLE", "T2", SourceDirect),
		tagged("R", "INSERT", "TABLE", "T1", SourceDirect),
	}

	out := DedupeGrants(in)
	assert.Equal(t, in, out)
}

// TestDedupeGrantsDirectWinsEitherOrder tests that a direct grant beats
// an inherited duplicate no matter which comes first
func TestDedupeGrantsDirectWinsEitherOrder(t *testing.T) {
	direct := tagged("R", "SELECT", "TABLE", "T", SourceDirect)
	inherited := tagged("R", "SELECT", "TABLE", "T", InheritedSource("P"))

	for _, in := range [][]PrivilegeGrant{
		{direct, inherited},
		{inherited, direct},
	} {
		out := DedupeGrants(in)
		require.Len(t, out, 1)
		assert.Equal(t, SourceDirect, out[0].Source)
	}
}

// TestDedupeGrantsInheritedKeepsFirst tests the inherited-vs-inherited
// tie-break
func TestDedupeGrantsInheritedKeepsFirst(t *testing.T) {
	out := DedupeGrants([]PrivilegeGrant{
		tagged("R", "SELECT", "TABLE", "T", InheritedSource("P1")),
		tagged("R", "SELECT", "TABLE", "T", InheritedSource("P2")),
	})

	require.Len(t, out, 1)
	assert.Equal(t, InheritedSource("P1"), out[0].Source)
}

// TestDedupeGrantsDirectKeepsLast tests the malformed-input case of two
// direct duplicates
func TestDedupeGrantsDirectKeepsLast(t *testing.T) {
	first := tagged("R", "SELECT", "TABLE", "T", SourceDirect)
	first.Extra = map[string]json.RawMessage{"granted_by": json.RawMessage(`"ADMIN"`)}
	second := tagged("R", "SELECT", "TABLE", "T", SourceDirect)

	out := DedupeGrants([]PrivilegeGrant{first, second})
	require.Len(t, out, 1)
	assert.Equal(t, second, out[0])
}

// TestDedupeGrantsPreservesPosition tests that a direct replacement
// keeps the first-encounter position
func TestDedupeGrantsPreservesPosition(t *testing.T) {
	out := DedupeGrants([]PrivilegeGrant{
		tagged("R", "SELECT", "TABLE", "T", InheritedSource("P")),
		tagged("R", "INSERT", "TABLE", "T", SourceDirect),
		tagged("R", "SELECT", "TABLE", "T", SourceDirect),
	})

	require.Len(t, out, 2)
	assert.Equal(t, "SELECT", out[0].Privilege)
	assert.Equal(t, SourceDirect, out[0].Source)
	assert.Equal(t, "INSERT", out[1].Privilege)
}

// TestDedupeGrantsDifferentRolesKept tests that role_name participates
// in the key
func TestDedupeGrantsDifferentRolesKept(t *testing.T) {
	out := DedupeGrants([]PrivilegeGrant{
		tagged("A", "SELECT", "TABLE", "T", SourceDirect),
		tagged("B", "SELECT", "TABLE", "T", SourceDirect),
	})

	assert.Len(t, out, 2)
}

// TestDedupeGrantsEmpty tests the empty input
func TestDedupeGrantsEmpty(t *testing.T) {
	assert.Empty(t, DedupeGrants(nil))
	assert.Empty(t, DedupeGrants([]PrivilegeGrant{}))
}
