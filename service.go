package grantkit

import (
	"context"
	"log/slog"
	"time"

	"github.com/fernandezvara/dbkit"
	"github.com/google/uuid"
)

// Service drives a complete flattening run: load the three artifacts,
// build the hierarchy graph and privilege index, flatten every role,
// write the output document, and optionally persist the result to
// PostgreSQL through dbkit.
//
// The computation itself is pure over the loaded inputs; the Service
// only owns the boundaries. All I/O happens strictly before and after
// flattening.
type Service struct {
	store  ArtifactStore
	db     dbkit.IDB
	logger *slog.Logger
}

// ServiceOption configures optional Service collaborators.
type ServiceOption func(*Service)

// WithDatabase enables database persistence of flattened grants and the
// per-run audit row.
func WithDatabase(db dbkit.IDB) ServiceOption {
	return func(s *Service) {
		s.db = db
	}
}

// NewService creates a flattening service over an artifact store. A nil
// logger falls back to slog.Default.
//
// Example:
//
//	store := grantkit.NewDirStore("/data/export")
//	service := grantkit.NewService(store, logger)
//	result, err := service.Run(ctx)
func NewService(store ArtifactStore, logger *slog.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		store:  store,
		logger: logOrDefault(logger),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FlattenResult reports one completed flattening run.
type FlattenResult struct {
	RunID     string
	Database  string
	Schema    string
	RoleCount int
	Cycles    int
	Stats     FlattenStats
	Document  *FlattenedDocument
	Duration  time.Duration
}

// Run executes one flattening run end to end.
//
// Graph anomalies (undeclared roles, cycles) are recovered locally with
// warnings and never abort the run. Failures loading any input document
// or writing the output are fatal and returned unrecovered: flattening
// never proceeds with a missing input.
func (s *Service) Run(ctx context.Context) (*FlattenResult, error) {
	runID := GetRunID(ctx)
	if runID == "" {
		runID = uuid.NewString()
	}
	log := s.logger.With("run_id", runID)
	started := time.Now()

	rolesDoc, err := s.store.LoadRoles(ctx)
	if err != nil {
		return nil, err
	}
	privsDoc, err := s.store.LoadPrivileges(ctx)
	if err != nil {
		return nil, err
	}
	hierDoc, err := s.store.LoadHierarchy(ctx)
	if err != nil {
		return nil, err
	}

	log.Info("artifacts loaded",
		"database", rolesDoc.Database,
		"schema", rolesDoc.Schema,
		"roles", len(rolesDoc.Roles),
		"direct_grants", len(privsDoc.GrantsPrivileges),
		"hierarchy_edges", len(hierDoc.GrantsHierarchy))

	graph := BuildHierarchyGraph(rolesDoc.Roles, hierDoc.GrantsHierarchy, log)
	index := BuildPrivilegeIndex(rolesDoc.Roles, privsDoc.GrantsPrivileges)

	flattener := NewFlattener(graph, index, log)
	flattened := flattener.FlattenAll()
	stats := ComputeStats(flattened, privsDoc.GrantsPrivileges)

	doc := rolesDoc.Document(flattened)
	if err := s.store.WriteFlattened(ctx, doc); err != nil {
		return nil, err
	}

	result := &FlattenResult{
		RunID:     runID,
		Database:  rolesDoc.Database,
		Schema:    rolesDoc.Schema,
		RoleCount: len(index.Roles()),
		Cycles:    flattener.CyclesDetected(),
		Stats:     stats,
		Document:  doc,
		Duration:  time.Since(started),
	}

	if s.db != nil {
		if err := s.persistResult(ctx, result, started); err != nil {
			return nil, err
		}
	}

	log.Info("flattening complete",
		"roles", result.RoleCount,
		"total_grants", stats.TotalGrants,
		"direct_grants", stats.DirectGrants,
		"inherited_grants", stats.InheritedGrants,
		"expansion_ratio", stats.ExpansionRatio,
		"cycles", result.Cycles,
		"duration", result.Duration)

	return result, nil
}

// Checker runs the pipeline up to flattening and returns a Checker over
// the result, without writing anything. Useful for ad-hoc access
// questions against a fresh export.
func (s *Service) Checker(ctx context.Context) (*Checker, error) {
	rolesDoc, err := s.store.LoadRoles(ctx)
	if err != nil {
		return nil, err
	}
	privsDoc, err := s.store.LoadPrivileges(ctx)
	if err != nil {
		return nil, err
	}
	hierDoc, err := s.store.LoadHierarchy(ctx)
	if err != nil {
		return nil, err
	}

	graph := BuildHierarchyGraph(rolesDoc.Roles, hierDoc.GrantsHierarchy, s.logger)
	index := BuildPrivilegeIndex(rolesDoc.Roles, privsDoc.GrantsPrivileges)
	flattener := NewFlattener(graph, index, s.logger)

	return NewChecker(flattener.FlattenAll()), nil
}
