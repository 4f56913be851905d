package grantkit

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// Artifact filenames. The store resolves these under its configured
// location; path resolution beyond that is the caller's concern.
const (
	RolesFile      = "roles.json"
	PrivilegesFile = "grants_privileges.json"
	HierarchyFile  = "grants_hierarchy.json"
	FlattenedFile  = "grants_flattened.json"
)

// ArtifactStore loads the three input documents a flattening run needs
// and writes the output document. Implementations decide where the
// documents live; load and write failures are fatal for the run and
// propagate to the caller unrecovered.
type ArtifactStore interface {
	LoadRoles(ctx context.Context) (*RolesDocument, error)
	LoadPrivileges(ctx context.Context) (*PrivilegesDocument, error)
	LoadHierarchy(ctx context.Context) (*HierarchyDocument, error)
	WriteFlattened(ctx context.Context, doc *FlattenedDocument) error
}

// DirStore is an ArtifactStore over a local directory, one JSON file per
// artifact under the fixed filenames.
type DirStore struct {
	dir string
}

// NewDirStore creates a DirStore rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Dir returns the directory this store reads and writes.
func (s *DirStore) Dir() string {
	return s.dir
}

// LoadRoles reads and decodes the roles document.
func (s *DirStore) LoadRoles(ctx context.Context) (*RolesDocument, error) {
	var doc RolesDocument
	if err := s.loadJSON(RolesFile, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadPrivileges reads and decodes the direct privilege grants document.
func (s *DirStore) LoadPrivileges(ctx context.Context) (*PrivilegesDocument, error) {
	var doc PrivilegesDocument
	if err := s.loadJSON(PrivilegesFile, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadHierarchy reads and decodes the role hierarchy document.
func (s *DirStore) LoadHierarchy(ctx context.Context) (*HierarchyDocument, error) {
	var doc HierarchyDocument
	if err := s.loadJSON(HierarchyFile, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// WriteFlattened serializes the flattened document under the fixed
// output filename, replacing any previous result.
func (s *DirStore) WriteFlattened(ctx context.Context, doc *FlattenedDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return NewError(ErrWriteArtifact, err.Error()).WithArtifact(FlattenedFile)
	}
	path := filepath.Join(s.dir, FlattenedFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return NewError(ErrWriteArtifact, err.Error()).WithArtifact(FlattenedFile)
	}
	return nil
}

func (s *DirStore) loadJSON(name string, dst any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return NewError(ErrLoadArtifact, err.Error()).WithArtifact(name)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return NewError(ErrLoadArtifact, err.Error()).WithArtifact(name)
	}
	return nil
}
