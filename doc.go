// Package grantkit flattens warehouse role hierarchies into explicit,
// per-role privilege lists.
//
// GrantKit consumes the three artifacts a warehouse metadata export
// produces (declared roles, direct privilege grants, and role hierarchy
// edges) and computes, for every role, the complete set of effective
// privileges including everything inherited transitively through role
// membership. The result is the input a lakehouse migration needs to
// recreate the same access model with flat group grants.
//
// # Core Concepts
//
// Role: a named grantable principal. Roles are nodes in the hierarchy
// graph. A role's descriptive fields (owner, comment) are carried through
// but never used algorithmically.
//
// Hierarchy edge: a (parent_role, grantee_name) pair meaning the grantee
// is a member of the parent role, and therefore inherits the parent's
// privileges.
//
// Direct grant: a privilege assigned straight to a role, identified by
// the tuple (role_name, privilege, granted_on, name).
//
// Flattening: resolving all direct plus transitively inherited grants
// into one deduplicated list per role. Each flattened grant carries a
// source tag: "direct", or "inherited_from:<role>" naming the ancestor
// that originally held the grant.
//
// # Basic Usage
//
//	// 1. Load the three artifacts (here from a local directory)
//	store := grantkit.NewDirStore("/data/export")
//	roles, _ := store.LoadRoles(ctx)
//	privs, _ := store.LoadPrivileges(ctx)
//	hier, _ := store.LoadHierarchy(ctx)
//
//	// 2. Build the graph and the direct-privilege index
//	graph := grantkit.BuildHierarchyGraph(roles.Roles, hier.GrantsHierarchy, nil)
//	index := grantkit.BuildPrivilegeIndex(roles.Roles, privs.GrantsPrivileges)
//
//	// 3. Flatten
//	flattener := grantkit.NewFlattener(graph, index, nil)
//	flattened := flattener.FlattenAll()
//
//	// 4. Inspect or persist
//	stats := grantkit.ComputeStats(flattened, privs.GrantsPrivileges)
//	store.WriteFlattened(ctx, roles.Document(flattened))
//
// Or let the service drive the whole pipeline:
//
//	service := grantkit.NewService(store, nil)
//	result, err := service.Run(ctx)
//
// # Degrade, Don't Crash
//
// Structural anomalies in the input never abort a run. Hierarchy edges
// referencing undeclared roles create the missing node with a warning;
// privilege grants for undeclared roles are indexed anyway; cycles in the
// hierarchy stop inheritance along the cyclic edge and continue. Only
// I/O failures (loading or writing an artifact) propagate as errors.
//
// # Database Persistence
//
// Flattened results can additionally be persisted to PostgreSQL through
// dbkit, with one audit row per run:
//
//	db, _ := dbkit.New(dbkit.Config{URL: "postgres://..."})
//	service := grantkit.NewService(store, nil, grantkit.WithDatabase(db))
//	result, err := service.Run(ctx)
package grantkit
