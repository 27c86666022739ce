package core

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
)

// Stake ranks the maintenance importance of a path
type Stake struct {
	shared.BaseAggregateRoot
	Label string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Rank  int    `gorm:"not null;uniqueIndex"`
}

// TableName returns the database table name
func (Stake) TableName() string {
	return "core_stakes"
}

// Network classifies paths by the network they belong to (GR, local loops)
type Network struct {
	shared.BaseAggregateRoot
	Label     string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Pictogram string `gorm:"type:varchar(512)"`
}

// TableName returns the database table name
func (Network) TableName() string {
	return "core_networks"
}

// Usage classifies how a path is used (hiking, biking, service road)
type Usage struct {
	shared.BaseAggregateRoot
	Label string `gorm:"type:varchar(128);not null;uniqueIndex"`
}

// TableName returns the database table name
func (Usage) TableName() string {
	return "core_usages"
}

// TrailCategory classifies trails
type TrailCategory struct {
	shared.BaseAggregateRoot
	Label string `gorm:"type:varchar(128);not null;uniqueIndex"`
}

// TableName returns the database table name
func (TrailCategory) TableName() string {
	return "core_trail_categories"
}

// NewStake creates a stake level
func NewStake(label string, rank int) (*Stake, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "stake label is required")
	}
	if rank < 0 {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "stake rank must not be negative")
	}
	return &Stake{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Label: label, Rank: rank}, nil
}

// NewNetwork creates a path network label
func NewNetwork(label, pictogram string) (*Network, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "network label is required")
	}
	return &Network{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Label: label, Pictogram: pictogram}, nil
}

// NewUsage creates a path usage label
func NewUsage(label string) (*Usage, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "usage label is required")
	}
	return &Usage{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Label: label}, nil
}

// NewTrailCategory creates a trail category
func NewTrailCategory(label string) (*TrailCategory, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "trail category label is required")
	}
	return &TrailCategory{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Label: label}, nil
}

// Rename changes a stake label
func (s *Stake) Rename(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "stake label is required")
	}
	s.Label = label
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}
