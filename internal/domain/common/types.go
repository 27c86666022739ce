// Package common holds reference records shared across trail contexts:
// themes tag treks and touristic contents, organisms manage signage.
package common

import (
	"context"
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Theme tags published contents for the public portals
type Theme struct {
	shared.BaseAggregateRoot
	Label     string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Pictogram string `gorm:"type:varchar(512)"`
}

// TableName returns the database table name
func (Theme) TableName() string {
	return "common_themes"
}

// NewTheme creates a theme
func NewTheme(label, pictogram string) (*Theme, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "theme label is required")
	}
	return &Theme{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Label:             label,
		Pictogram:         pictogram,
	}, nil
}

// Update changes the theme's label and pictogram
func (t *Theme) Update(label, pictogram string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "theme label is required")
	}
	t.Label = label
	t.Pictogram = pictogram
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	return nil
}

// Organism is an external body managing or sealing field equipment
type Organism struct {
	shared.BaseAggregateRoot
	Name        string     `gorm:"type:varchar(128);not null"`
	StructureID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the database table name
func (Organism) TableName() string {
	return "common_organisms"
}

// NewOrganism creates an organism, optionally owned by a structure
func NewOrganism(name string, structureID *uuid.UUID) (*Organism, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "organism name is required")
	}
	return &Organism{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		StructureID:       structureID,
	}, nil
}

// Rename changes the organism name
func (o *Organism) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "organism name is required")
	}
	o.Name = name
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// ThemeRepository persists themes
type ThemeRepository interface {
	shared.Repository[Theme]
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Theme, error)
}

// OrganismRepository persists organisms
type OrganismRepository interface {
	shared.Repository[Organism]
	FindByName(ctx context.Context, name string) (*Organism, error)
}
