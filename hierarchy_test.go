package grantkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBuildHierarchyGraphBasic tests graph construction from declared
// roles and edges
func TestBuildHierarchyGraphBasic(t *testing.T) {
	graph := BuildHierarchyGraph(
		declared("PARENT", "CHILD"),
		[]HierarchyEdge{{ParentRole: "PARENT", GranteeName: "CHILD"}},
		testLogger(),
	)

	assert.Equal(t, 2, graph.Len())
	assert.Equal(t, []string{"CHILD"}, graph.Children("PARENT"))
	assert.Equal(t, []string{"PARENT"}, graph.Parents("CHILD"))
	assert.Empty(t, graph.Children("CHILD"))
	assert.Empty(t, graph.Parents("PARENT"))
}

// TestBuildHierarchyGraphChildlessRole tests that a declared role with
// no edges still appears as a node
func TestBuildHierarchyGraphChildlessRole(t *testing.T) {
	graph := BuildHierarchyGraph(declared("LONER"), nil, testLogger())

	assert.True(t, graph.HasRole("LONER"))
	assert.Empty(t, graph.Children("LONER"))
	assert.Equal(t, []string{"LONER"}, graph.Roles())
}

// TestBuildHierarchyGraphUndeclaredRoles tests that edges referencing
// undeclared roles create nodes instead of failing
func TestBuildHierarchyGraphUndeclaredRoles(t *testing.T) {
	graph := BuildHierarchyGraph(
		declared("KNOWN"),
		[]HierarchyEdge{
			{ParentRole: "MYSTERY", GranteeName: "KNOWN"},
			{ParentRole: "KNOWN", GranteeName: "STRANGER"},
		},
		testLogger(),
	)

	assert.True(t, graph.HasRole("MYSTERY"))
	assert.True(t, graph.HasRole("STRANGER"))
	assert.Empty(t, graph.Children("STRANGER"))
	assert.Equal(t, []string{"KNOWN"}, graph.Children("MYSTERY"))
	assert.Equal(t, 3, graph.Len())
}

// TestBuildHierarchyGraphDuplicateEdges tests that repeated edges do not
// produce duplicate children
func TestBuildHierarchyGraphDuplicateEdges(t *testing.T) {
	graph := BuildHierarchyGraph(
		declared("P", "C"),
		[]HierarchyEdge{
			{ParentRole: "P", GranteeName: "C"},
			{ParentRole: "P", GranteeName: "C"},
			{ParentRole: "P", GranteeName: "C"},
		},
		testLogger(),
	)

	assert.Equal(t, []string{"C"}, graph.Children("P"))
	assert.Equal(t, []string{"P"}, graph.Parents("C"))
}

// TestHierarchyGraphParentsSorted tests that parent lists come back in
// name order regardless of edge order
func TestHierarchyGraphParentsSorted(t *testing.T) {
	graph := BuildHierarchyGraph(
		declared("Z", "A", "M", "C"),
		[]HierarchyEdge{
			{ParentRole: "Z", GranteeName: "C"},
			{ParentRole: "A", GranteeName: "C"},
			{ParentRole: "M", GranteeName: "C"},
		},
		testLogger(),
	)

	assert.Equal(t, []string{"A", "M", "Z"}, graph.Parents("C"))
}

// TestHierarchyGraphRoles tests the sorted node listing
func TestHierarchyGraphRoles(t *testing.T) {
	graph := BuildHierarchyGraph(
		declared("B", "A"),
		[]HierarchyEdge{{ParentRole: "C", GranteeName: "A"}},
		testLogger(),
	)

	assert.Equal(t, []string{"A", "B", "C"}, graph.Roles())
	assert.False(t, graph.HasRole("D"))
}

// TestBuildHierarchyGraphEmpty tests the degenerate empty inputs
func TestBuildHierarchyGraphEmpty(t *testing.T) {
	graph := BuildHierarchyGraph(nil, nil, testLogger())

	assert.Equal(t, 0, graph.Len())
	assert.Empty(t, graph.Roles())
	assert.False(t, graph.HasRole("ANY"))
}
