package grantkit

// DedupeGrants collapses duplicate grants, keyed by
// (role_name, privilege, granted_on, name).
//
// Tie-breaks:
//   - a direct grant wins over any inherited duplicate, regardless of
//     encounter order
//   - two inherited duplicates keep the first encountered (both name an
//     ancestor that ultimately holds the same privilege)
//   - two direct duplicates keep the last encountered; well-formed input
//     never produces this case, the rule just keeps malformed input
//     deterministic
//
// Relative order of the surviving records follows first encounter.
func DedupeGrants(grants []PrivilegeGrant) []PrivilegeGrant {
	if len(grants) == 0 {
		return grants
	}

	at := make(map[GrantKey]int, len(grants))
	out := make([]PrivilegeGrant, 0, len(grants))

	for _, g := range grants {
		key := g.Key()
		pos, seen := at[key]
		if !seen {
			at[key] = len(out)
			out = append(out, g)
			continue
		}
		if g.Source == SourceDirect {
			out[pos] = g
		}
	}

	return out
}
