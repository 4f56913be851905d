package grantkit

// GrantFilter provides options for filtering persisted flattened grants.
type GrantFilter struct {
	// Filter by the role holding the grant
	RoleName string

	// Filter by privilege (SELECT, INSERT, ...)
	Privilege string

	// Filter by object type (TABLE, VIEW, SCHEMA, ...)
	GrantedOn string

	// Filter by object name
	ObjectName string

	// Filter by provenance: "direct" or an "inherited_from:<role>" tag
	Source string

	// Filter by the run that produced the rows
	RunID string

	// Pagination
	Limit  int
	Offset int
}

// NewGrantFilter creates a new GrantFilter with default values.
func NewGrantFilter() GrantFilter {
	return GrantFilter{
		Limit: 100,
	}
}

// WithRole sets the role name filter.
func (f GrantFilter) WithRole(role string) GrantFilter {
	f.RoleName = role
	return f
}

// WithPrivilege sets the privilege filter.
func (f GrantFilter) WithPrivilege(privilege string) GrantFilter {
	f.Privilege = privilege
	return f
}

// WithObject sets the object type and name filters.
func (f GrantFilter) WithObject(grantedOn, name string) GrantFilter {
	f.GrantedOn = grantedOn
	f.ObjectName = name
	return f
}

// WithSource sets the provenance filter.
func (f GrantFilter) WithSource(source string) GrantFilter {
	f.Source = source
	return f
}

// WithDirectOnly keeps only directly held grants.
func (f GrantFilter) WithDirectOnly() GrantFilter {
	f.Source = SourceDirect
	return f
}

// WithInheritedFrom keeps only grants originally held by the named
// ancestor role.
func (f GrantFilter) WithInheritedFrom(ancestor string) GrantFilter {
	f.Source = InheritedSource(ancestor)
	return f
}

// WithRun sets the run ID filter.
func (f GrantFilter) WithRun(runID string) GrantFilter {
	f.RunID = runID
	return f
}

// WithLimit sets the limit for results.
func (f GrantFilter) WithLimit(limit int) GrantFilter {
	f.Limit = limit
	return f
}

// WithOffset sets the offset for pagination.
func (f GrantFilter) WithOffset(offset int) GrantFilter {
	f.Offset = offset
	return f
}

// WithPagination sets both limit and offset.
func (f GrantFilter) WithPagination(limit, offset int) GrantFilter {
	f.Limit = limit
	f.Offset = offset
	return f
}
