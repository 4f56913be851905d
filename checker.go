package grantkit

import "sort"

// Checker provides read-only queries over a flattened grant list. It is
// what the downstream migration steps consume: once flattening has made
// every effective privilege explicit, access questions become simple
// lookups.
type Checker struct {
	grants  []PrivilegeGrant
	byRole  map[string][]PrivilegeGrant
	matcher *PrivilegeMatcher
}

// NewChecker creates a Checker over a flattened grant list.
func NewChecker(grants []PrivilegeGrant) *Checker {
	c := &Checker{
		grants:  grants,
		byRole:  make(map[string][]PrivilegeGrant),
		matcher: NewPrivilegeMatcher(),
	}
	for _, g := range grants {
		c.byRole[g.RoleName] = append(c.byRole[g.RoleName], g)
	}
	return c
}

// HasPrivilege checks if a role effectively holds a privilege on an
// object, directly or through inheritance. ALL-privileges grants and
// object-name wildcards count (see PrivilegeMatcher).
//
// Example:
//
//	if checker.HasPrivilege("ANALYST", "SELECT", "TABLE", "ORDERS") {
//	    // ANALYST can read ORDERS
//	}
func (c *Checker) HasPrivilege(role, privilege, grantedOn, name string) bool {
	return c.matcher.MatchAny(c.byRole[role], privilege, grantedOn, name)
}

// HasDirectPrivilege checks if a role holds a privilege directly,
// ignoring anything inherited.
func (c *Checker) HasDirectPrivilege(role, privilege, grantedOn, name string) bool {
	for _, g := range c.byRole[role] {
		if g.Source == SourceDirect && c.matcher.Match(g, privilege, grantedOn, name) {
			return true
		}
	}
	return false
}

// PrivilegesFor returns every flattened grant a role holds.
func (c *Checker) PrivilegesFor(role string) []PrivilegeGrant {
	return c.byRole[role]
}

// DirectPrivilegesFor returns only the grants a role holds directly.
func (c *Checker) DirectPrivilegesFor(role string) []PrivilegeGrant {
	var out []PrivilegeGrant
	for _, g := range c.byRole[role] {
		if g.Source == SourceDirect {
			out = append(out, g)
		}
	}
	return out
}

// InheritedFrom groups a role's inherited grants by the ancestor that
// originally held them.
//
// Example:
//
//	origins := checker.InheritedFrom("ANALYST")
//	// origins["SENIOR_ANALYST"] holds everything ANALYST gets from it
func (c *Checker) InheritedFrom(role string) map[string][]PrivilegeGrant {
	out := make(map[string][]PrivilegeGrant)
	for _, g := range c.byRole[role] {
		if origin := InheritedOrigin(g.Source); origin != "" {
			out[origin] = append(out[origin], g)
		}
	}
	return out
}

// RolesWithPrivilege returns every role that effectively holds a
// privilege on an object, sorted by name.
func (c *Checker) RolesWithPrivilege(privilege, grantedOn, name string) []string {
	var roles []string
	for role, grants := range c.byRole {
		if c.matcher.MatchAny(grants, privilege, grantedOn, name) {
			roles = append(roles, role)
		}
	}
	sort.Strings(roles)
	return roles
}

// Roles returns every role with at least one flattened grant, sorted.
func (c *Checker) Roles() []string {
	roles := make([]string, 0, len(c.byRole))
	for role := range c.byRole {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// IsEmpty returns true if the checker holds no grants.
func (c *Checker) IsEmpty() bool {
	return len(c.grants) == 0
}
