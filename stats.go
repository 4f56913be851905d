package grantkit

// FlattenStats summarizes one flattening run. Descriptive output only:
// nothing downstream branches on these numbers.
type FlattenStats struct {
	// TotalGrants is the number of flattened grants across all roles.
	TotalGrants int `json:"total_grants"`

	// DirectGrants counts flattened grants with source "direct".
	DirectGrants int `json:"direct_grants"`

	// InheritedGrants counts flattened grants with an inherited source.
	InheritedGrants int `json:"inherited_grants"`

	// ExpansionRatio is TotalGrants divided by the number of raw direct
	// grants in the input. Zero when the input had no direct grants.
	ExpansionRatio float64 `json:"expansion_ratio"`
}

// ComputeStats derives run statistics from the flattened grant list and
// the raw direct grants that produced it.
func ComputeStats(flattened, direct []PrivilegeGrant) FlattenStats {
	stats := FlattenStats{
		TotalGrants: len(flattened),
	}

	for _, g := range flattened {
		switch {
		case g.Source == SourceDirect:
			stats.DirectGrants++
		case IsInherited(g.Source):
			stats.InheritedGrants++
		}
	}

	if len(direct) > 0 {
		stats.ExpansionRatio = float64(len(flattened)) / float64(len(direct))
	}

	return stats
}
