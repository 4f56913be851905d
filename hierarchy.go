package grantkit

import (
	"log/slog"
	"sort"
)

// HierarchyGraph is the role membership graph: for every role, the list
// of roles that are members of it (its children). Children inherit their
// parent's privileges.
//
// The graph is built once and read-only afterwards. Every declared role
// appears as a node even when it has no children, so traversal never
// hits a missing key. A reverse child→parents index is built alongside
// the forward map, making parent lookups O(1) instead of a scan over the
// whole graph.
type HierarchyGraph struct {
	children map[string][]string
	parents  map[string][]string
}

// BuildHierarchyGraph constructs the membership graph from the declared
// roles and the hierarchy edges.
//
// Edges referencing undeclared roles do not fail the build: the missing
// endpoint is created as a node with no privileges of its own and a
// warning is logged. Duplicate edges are collapsed.
func BuildHierarchyGraph(roles []Role, edges []HierarchyEdge, logger *slog.Logger) *HierarchyGraph {
	log := logOrDefault(logger)

	declared := make(map[string]bool, len(roles))
	for _, r := range roles {
		declared[r.Name] = true
	}

	g := &HierarchyGraph{
		children: make(map[string][]string, len(roles)),
		parents:  make(map[string][]string, len(roles)),
	}

	// Every declared role participates in traversal, childless or not.
	for _, r := range roles {
		g.children[r.Name] = nil
	}

	for _, e := range edges {
		if !declared[e.ParentRole] {
			log.Warn("hierarchy edge references undeclared parent role",
				"parent_role", e.ParentRole, "grantee_name", e.GranteeName)
		}
		if !declared[e.GranteeName] {
			log.Warn("hierarchy edge references undeclared grantee role",
				"parent_role", e.ParentRole, "grantee_name", e.GranteeName)
		}

		if _, ok := g.children[e.ParentRole]; !ok {
			g.children[e.ParentRole] = nil
		}
		if !containsString(g.children[e.ParentRole], e.GranteeName) {
			g.children[e.ParentRole] = append(g.children[e.ParentRole], e.GranteeName)
		}
		if _, ok := g.children[e.GranteeName]; !ok {
			g.children[e.GranteeName] = nil
		}
	}

	for parent, children := range g.children {
		for _, child := range children {
			g.parents[child] = append(g.parents[child], parent)
		}
	}
	// The children map iterates in random order; keep parent lists
	// stable so traversal order is reproducible across runs.
	for child := range g.parents {
		sort.Strings(g.parents[child])
	}

	return g
}

// Children returns the roles that are members of the given role.
func (g *HierarchyGraph) Children(role string) []string {
	return g.children[role]
}

// Parents returns the roles the given role is a member of, i.e. the
// roles it inherits privileges from.
func (g *HierarchyGraph) Parents(role string) []string {
	return g.parents[role]
}

// HasRole reports whether the role appears as a node in the graph.
func (g *HierarchyGraph) HasRole(role string) bool {
	_, ok := g.children[role]
	return ok
}

// Roles returns every node in the graph, sorted by name.
func (g *HierarchyGraph) Roles() []string {
	names := make([]string, 0, len(g.children))
	for name := range g.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of nodes in the graph.
func (g *HierarchyGraph) Len() int {
	return len(g.children)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
