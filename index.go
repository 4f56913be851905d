package grantkit

import "sort"

// PrivilegeIndex groups the raw direct privilege grants by the role that
// holds them. Like the hierarchy graph it is built once and read-only
// afterwards.
//
// Every declared role gets an entry even with no grants. Grants naming a
// role missing from the roles document are indexed anyway; such "ghost"
// roles surface with their direct grants if they are ever flattened,
// rather than silently dropping privileges.
type PrivilegeIndex struct {
	direct map[string][]PrivilegeGrant
}

// BuildPrivilegeIndex constructs the role→direct-grants index. Grant
// order within a role is preserved from the input.
func BuildPrivilegeIndex(roles []Role, grants []PrivilegeGrant) *PrivilegeIndex {
	idx := &PrivilegeIndex{
		direct: make(map[string][]PrivilegeGrant, len(roles)),
	}

	for _, r := range roles {
		idx.direct[r.Name] = nil
	}
	for _, g := range grants {
		idx.direct[g.RoleName] = append(idx.direct[g.RoleName], g)
	}

	return idx
}

// Direct returns the direct grants of a role, in input order. Returns
// nil for unknown roles.
func (idx *PrivilegeIndex) Direct(role string) []PrivilegeGrant {
	return idx.direct[role]
}

// Has reports whether the role has an entry in the index (declared, or
// referenced by at least one grant).
func (idx *PrivilegeIndex) Has(role string) bool {
	_, ok := idx.direct[role]
	return ok
}

// Roles returns every indexed role name, sorted.
func (idx *PrivilegeIndex) Roles() []string {
	names := make([]string, 0, len(idx.direct))
	for name := range idx.direct {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DirectCount returns the total number of direct grants in the index.
func (idx *PrivilegeIndex) DirectCount() int {
	n := 0
	for _, grants := range idx.direct {
		n += len(grants)
	}
	return n
}
