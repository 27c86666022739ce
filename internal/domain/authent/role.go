package authent

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
)

// Resources that permissions can target
var knownResources = map[string]struct{}{
	"structure":      {},
	"user":           {},
	"role":           {},
	"path":           {},
	"trail":          {},
	"trek":           {},
	"poi":            {},
	"service":        {},
	"signage":        {},
	"blade":          {},
	"infrastructure": {},
	"land":           {},
	"tourism":        {},
	"intervention":   {},
	"report":         {},
	"job":            {},
	"export":         {},
}

// Actions a permission can grant on a resource
var knownActions = map[string]struct{}{
	"read":             {},
	"create":           {},
	"update":           {},
	"delete":           {},
	"publish":          {},
	"export":           {},
	"bypass_structure": {},
}

// Role groups permissions of the form "<resource>:<action>"
type Role struct {
	shared.BaseAggregateRoot
	Name        string   `gorm:"type:varchar(150);not null;uniqueIndex"`
	Description string   `gorm:"type:text"`
	Permissions []string `gorm:"serializer:json;type:jsonb"`
}

// TableName returns the database table name
func (Role) TableName() string {
	return "authent_roles"
}

// NewRole creates a role after validating its permission strings
func NewRole(name, description string, permissions []string) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "role name is required")
	}
	if err := ValidatePermissions(permissions); err != nil {
		return nil, err
	}
	return &Role{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		Permissions:       permissions,
	}, nil
}

// Update replaces the role's description and permissions
func (r *Role) Update(description string, permissions []string) error {
	if err := ValidatePermissions(permissions); err != nil {
		return err
	}
	r.Description = description
	r.Permissions = permissions
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// HasPermission reports whether the role grants a permission
func (r *Role) HasPermission(permission string) bool {
	for _, p := range r.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// ValidatePermissions checks every "<resource>:<action>" string
func ValidatePermissions(permissions []string) error {
	for _, p := range permissions {
		resource, action, ok := strings.Cut(p, ":")
		if !ok {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "permission must be of the form resource:action: "+p)
		}
		if _, known := knownResources[resource]; !known {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown permission resource: "+resource)
		}
		if _, known := knownActions[action]; !known {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown permission action: "+action)
		}
	}
	return nil
}
