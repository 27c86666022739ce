// Package authz carries the identity of the caller through application
// services and enforces the structure-scoping rule on edits.
package authz

import (
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BypassAction is the per-resource action allowing edits on records
// owned by another structure.
const BypassAction = "bypass_structure"

// Actor is the authenticated caller as seen by application services.
// It is built from validated JWT claims by the HTTP layer.
type Actor struct {
	UserID      uuid.UUID
	StructureID uuid.UUID
	Permissions []string
	IsAdmin     bool
}

// Has reports whether the actor holds the given permission.
// Admin accounts hold every permission.
func (a Actor) Has(permission string) bool {
	if a.IsAdmin {
		return true
	}
	for _, p := range a.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// Require returns ErrForbidden unless the actor holds the permission.
func (a Actor) Require(permission string) error {
	if !a.Has(permission) {
		return shared.ErrForbidden
	}
	return nil
}

// CheckSameStructure enforces the edit-scoping rule: a record owned by
// another structure can only be edited with <resource>:bypass_structure.
// Reads are never structure-filtered.
func (a Actor) CheckSameStructure(resource string, recordStructureID uuid.UUID) error {
	if recordStructureID == a.StructureID {
		return nil
	}
	if a.Has(resource + ":" + BypassAction) {
		return nil
	}
	return shared.ErrStructureMismatch
}
