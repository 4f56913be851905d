package grantkit

import "strings"

// SourceDirect tags a grant assigned straight to the role that holds it.
const SourceDirect = "direct"

// sourceInheritedPrefix prefixes the name of the ancestor role that
// originally held an inherited grant.
const sourceInheritedPrefix = "inherited_from:"

// InheritedSource returns the source tag for a grant inherited from the
// named ancestor role.
func InheritedSource(ancestor string) string {
	return sourceInheritedPrefix + ancestor
}

// IsInherited reports whether a source tag marks an inherited grant.
func IsInherited(source string) bool {
	return strings.HasPrefix(source, sourceInheritedPrefix)
}

// InheritedOrigin returns the ancestor role named by an inherited source
// tag, or "" for direct or untagged grants.
//
// For inheritance chains of length two or more the tag names the role
// that originally held the grant, not the immediate parent it arrived
// through. This is intentional: the tag answers "where did this
// privilege ultimately come from", which is what a migration review
// needs.
func InheritedOrigin(source string) string {
	if !IsInherited(source) {
		return ""
	}
	return strings.TrimPrefix(source, sourceInheritedPrefix)
}
