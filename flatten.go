package grantkit

import "log/slog"

// Flattener computes effective privilege sets over a hierarchy graph and
// a direct privilege index. Both inputs are treated as read-only for the
// lifetime of the Flattener.
//
// Flattening is a pure in-memory computation: no I/O happens between
// building the inputs and collecting the result. A Flattener is not
// safe for concurrent use because it counts cycle diagnostics across
// calls.
type Flattener struct {
	graph  *HierarchyGraph
	index  *PrivilegeIndex
	logger *slog.Logger

	cycles int
}

// NewFlattener creates a Flattener over the built structures. A nil
// logger falls back to slog.Default.
func NewFlattener(graph *HierarchyGraph, index *PrivilegeIndex, logger *slog.Logger) *Flattener {
	return &Flattener{
		graph:  graph,
		index:  index,
		logger: logOrDefault(logger),
	}
}

// FlattenRole computes the complete deduplicated privilege list for one
// role: its direct grants plus everything inherited transitively from
// every ancestor, with every grant re-stamped to this role.
//
// Each call starts with a fresh visited set, so cycle detection is
// scoped to this role's traversal.
func (f *Flattener) FlattenRole(role string) []PrivilegeGrant {
	visited := make(map[string]bool)
	return f.flatten(role, visited)
}

// flatten resolves one role with the visited set threaded through the
// whole call tree of a single top-level traversal.
func (f *Flattener) flatten(role string, visited map[string]bool) []PrivilegeGrant {
	if visited[role] {
		// A misconfigured cyclic hierarchy must not abort the run: stop
		// inheriting along this path and keep flattening everything else.
		f.cycles++
		f.logger.Warn("cycle in role hierarchy, stopping inheritance along this path",
			"role", role)
		return nil
	}
	visited[role] = true

	var collected []PrivilegeGrant

	for _, g := range f.index.Direct(role) {
		g.RoleName = role
		g.Source = SourceDirect
		collected = append(collected, g)
	}

	for _, parent := range f.graph.Parents(role) {
		if !f.index.Has(parent) {
			f.logger.Warn("skipping undeclared parent role",
				"role", role, "parent", parent)
			continue
		}

		for _, g := range f.flatten(parent, visited) {
			g.RoleName = role
			if g.Source == SourceDirect {
				g.Source = InheritedSource(parent)
			}
			// An already-inherited source keeps the ancestor that
			// originally held the grant, not the immediate hop.
			collected = append(collected, g)
		}
	}

	return DedupeGrants(collected)
}

// FlattenAll flattens every indexed role and returns the combined grant
// list, roles in sorted order for reproducible output.
func (f *Flattener) FlattenAll() []PrivilegeGrant {
	var out []PrivilegeGrant
	for _, role := range f.index.Roles() {
		out = append(out, f.FlattenRole(role)...)
	}
	return out
}

// CyclesDetected returns how many times a traversal hit an
// already-visited role since the Flattener was created.
func (f *Flattener) CyclesDetected() int {
	return f.cycles
}
