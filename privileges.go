package grantkit

import "strings"

// PrivilegeMatcher handles privilege matching with warehouse wildcard
// semantics.
//
// Supported patterns on the granted side:
//   - privilege "ALL" or "ALL PRIVILEGES" matches any privilege on the
//     same object
//   - object name "*" matches any object of the same type
//   - everything else matches case-insensitively, the way warehouse
//     identifiers resolve
//
// Matching is check-time only. Flattening never expands wildcards into
// concrete grants; the flattened document keeps whatever the source
// warehouse recorded.
type PrivilegeMatcher struct{}

// NewPrivilegeMatcher creates a new PrivilegeMatcher.
func NewPrivilegeMatcher() *PrivilegeMatcher {
	return &PrivilegeMatcher{}
}

// Match checks whether a held grant satisfies a required
// (privilege, granted_on, name) triple.
//
// Examples:
//
//	Match(grant{SELECT, TABLE, ORDERS}, "SELECT", "TABLE", "ORDERS")  // true
//	Match(grant{ALL, TABLE, ORDERS}, "SELECT", "TABLE", "ORDERS")    // true - ALL covers SELECT
//	Match(grant{SELECT, TABLE, *}, "SELECT", "TABLE", "ORDERS")      // true - object wildcard
//	Match(grant{SELECT, TABLE, ORDERS}, "INSERT", "TABLE", "ORDERS") // false
//	Match(grant{SELECT, VIEW, ORDERS}, "SELECT", "TABLE", "ORDERS")  // false - object type differs
func (pm *PrivilegeMatcher) Match(grant PrivilegeGrant, privilege, grantedOn, name string) bool {
	if !strings.EqualFold(grant.GrantedOn, grantedOn) {
		return false
	}

	if !strings.EqualFold(grant.Privilege, privilege) && !pm.isAllPrivileges(grant.Privilege) {
		return false
	}

	if grant.Name == "*" {
		return true
	}
	return strings.EqualFold(grant.Name, name)
}

// MatchAny checks whether any of the held grants satisfies the required
// (privilege, granted_on, name) triple.
func (pm *PrivilegeMatcher) MatchAny(grants []PrivilegeGrant, privilege, grantedOn, name string) bool {
	for _, g := range grants {
		if pm.Match(g, privilege, grantedOn, name) {
			return true
		}
	}
	return false
}

func (pm *PrivilegeMatcher) isAllPrivileges(privilege string) bool {
	return strings.EqualFold(privilege, "ALL") || strings.EqualFold(privilege, "ALL PRIVILEGES")
}

// DefaultMatcher is the default privilege matcher instance.
var DefaultMatcher = NewPrivilegeMatcher()

// MatchGrant is a convenience function using the default matcher.
func MatchGrant(grant PrivilegeGrant, privilege, grantedOn, name string) bool {
	return DefaultMatcher.Match(grant, privilege, grantedOn, name)
}

// MatchAnyGrant is a convenience function using the default matcher.
func MatchAnyGrant(grants []PrivilegeGrant, privilege, grantedOn, name string) bool {
	return DefaultMatcher.MatchAny(grants, privilege, grantedOn, name)
}
