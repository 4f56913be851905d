package grantkit

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

// Role represents a declared role from the source warehouse.
// Only Name participates in flattening; Owner and Comment are carried
// through for reporting.
type Role struct {
	Name    string `json:"name"`
	Owner   string `json:"owner,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// HierarchyEdge is a directed membership relationship between two roles:
// GranteeName is a member of ParentRole, and therefore inherits the
// parent's privileges. Note the inheritance direction: the child gains
// the parent's grants, not the other way around.
type HierarchyEdge struct {
	ParentRole  string `json:"parent_role"`
	GranteeName string `json:"grantee_name"`
}

// PrivilegeGrant is a single privilege held by a role on an object.
// The tuple (RoleName, Privilege, GrantedOn, Name) identifies an
// effective privilege; two grants with the same tuple are duplicates.
//
// Source records provenance after flattening: SourceDirect for a grant
// assigned straight to the role, or "inherited_from:<role>" naming the
// ancestor that originally held it. Raw input grants have an empty
// Source.
//
// Extra preserves any additional fields present on the raw grant record
// (grant_option, granted_by, timestamps, ...) so they survive the round
// trip into the flattened document unchanged.
type PrivilegeGrant struct {
	RoleName  string
	Privilege string
	GrantedOn string
	Name      string
	Source    string

	Extra map[string]json.RawMessage
}

// GrantKey is the deduplication key for a flattened grant.
type GrantKey struct {
	RoleName  string
	Privilege string
	GrantedOn string
	Name      string
}

// Key returns the deduplication key for this grant.
func (g PrivilegeGrant) Key() GrantKey {
	return GrantKey{
		RoleName:  g.RoleName,
		Privilege: g.Privilege,
		GrantedOn: g.GrantedOn,
		Name:      g.Name,
	}
}

// grantField names handled explicitly by PrivilegeGrant marshalling.
// Everything else round-trips through Extra.
var grantFields = []string{"role_name", "privilege", "granted_on", "name", "source"}

// UnmarshalJSON decodes a grant record, keeping unknown fields in Extra.
func (g *PrivilegeGrant) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	dsts := map[string]*string{
		"role_name":  &g.RoleName,
		"privilege":  &g.Privilege,
		"granted_on": &g.GrantedOn,
		"name":       &g.Name,
		"source":     &g.Source,
	}
	for _, field := range grantFields {
		v, ok := raw[field]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dsts[field]); err != nil {
			return err
		}
		delete(raw, field)
	}

	if len(raw) > 0 {
		g.Extra = raw
	}
	return nil
}

// MarshalJSON encodes a grant record, merging Extra back in. Source is
// omitted when empty so raw (unflattened) grants serialize without it.
func (g PrivilegeGrant) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(g.Extra)+len(grantFields))
	for k, v := range g.Extra {
		out[k] = v
	}

	vals := map[string]string{
		"role_name":  g.RoleName,
		"privilege":  g.Privilege,
		"granted_on": g.GrantedOn,
		"name":       g.Name,
	}
	if g.Source != "" {
		vals["source"] = g.Source
	}
	for field, val := range vals {
		b, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		out[field] = b
	}

	return json.Marshal(out)
}

// RolesDocument is the roles artifact: the declared roles plus the
// database/schema the export was taken from.
type RolesDocument struct {
	Database string `json:"database"`
	Schema   string `json:"schema"`
	Roles    []Role `json:"roles"`
}

// Document wraps a flattened grant list in an output document carrying
// this roles document's source metadata.
func (d *RolesDocument) Document(grants []PrivilegeGrant) *FlattenedDocument {
	return &FlattenedDocument{
		Database:        optString(d.Database),
		Schema:          optString(d.Schema),
		GrantsFlattened: grants,
	}
}

// PrivilegesDocument is the direct privilege grants artifact.
type PrivilegesDocument struct {
	GrantsPrivileges []PrivilegeGrant `json:"grants_privileges"`
}

// HierarchyDocument is the role hierarchy artifact.
type HierarchyDocument struct {
	GrantsHierarchy []HierarchyEdge `json:"grants_hierarchy"`
}

// FlattenedDocument is the output artifact: every role's complete,
// deduplicated privilege list plus the source database/schema. Database
// and Schema are null when the roles document carried none.
type FlattenedDocument struct {
	Database        *string          `json:"database"`
	Schema          *string          `json:"schema"`
	GrantsFlattened []PrivilegeGrant `json:"grants_flattened"`
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// FlattenedGrant is the database row for a persisted flattened grant.
type FlattenedGrant struct {
	bun.BaseModel `bun:"table:grants_flattened,alias:gf"`

	ID             string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	RunID          string    `bun:"run_id,notnull"`
	RoleName       string    `bun:"role_name,notnull"`
	Privilege      string    `bun:"privilege,notnull"`
	GrantedOn      string    `bun:"granted_on,notnull"`
	ObjectName     string    `bun:"object_name,notnull"`
	Source         string    `bun:"source,notnull"`
	SourceDatabase string    `bun:"source_database"`
	SourceSchema   string    `bun:"source_schema"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// FlattenRun records one flattening run for audit and monitoring.
type FlattenRun struct {
	bun.BaseModel `bun:"table:flatten_runs,alias:fr"`

	ID              string    `bun:"id,pk,type:uuid"`
	SourceDatabase  string    `bun:"source_database"`
	SourceSchema    string    `bun:"source_schema"`
	RoleCount       int       `bun:"role_count,notnull"`
	TotalGrants     int       `bun:"total_grants,notnull"`
	DirectGrants    int       `bun:"direct_grants,notnull"`
	InheritedGrants int       `bun:"inherited_grants,notnull"`
	ExpansionRatio  float64   `bun:"expansion_ratio,notnull"`
	DurationMS      int64     `bun:"duration_ms,notnull"`
	StartedAt       time.Time `bun:"started_at,notnull"`
	FinishedAt      time.Time `bun:"finished_at,notnull"`
}
