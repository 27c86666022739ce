// Package maintenance models field interventions on signage and
// infrastructure and their costs.
package maintenance

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TargetKind identifies what an intervention acts on
type TargetKind string

const (
	TargetSignage        TargetKind = "SIGNAGE"
	TargetBlade          TargetKind = "BLADE"
	TargetInfrastructure TargetKind = "INFRASTRUCTURE"
)

// Valid reports whether the target kind is known
func (k TargetKind) Valid() bool {
	switch k {
	case TargetSignage, TargetBlade, TargetInfrastructure:
		return true
	}
	return false
}

// Status is the lifecycle state of an intervention
type Status string

const (
	StatusPlanned Status = "PLANNED"
	StatusOngoing Status = "ONGOING"
	StatusDone    Status = "DONE"
)

// Intervention is a maintenance operation performed on a field object
type Intervention struct {
	shared.StructureAggregateRoot
	Name           string          `gorm:"type:varchar(128);not null"`
	TargetKind     TargetKind      `gorm:"type:varchar(32);not null;index:idx_intervention_target"`
	TargetID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_intervention_target"`
	Status         Status          `gorm:"type:varchar(32);not null;default:'PLANNED'"`
	Description    string          `gorm:"type:text"`
	Width          *float64        `gorm:"type:numeric(8,2)"`
	Height         *float64        `gorm:"type:numeric(8,2)"`
	MaterialCost   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	HeliportCost   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ContractorCost decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ManDays        decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	StartDate      *time.Time
	EndDate        *time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName returns the database table name
func (Intervention) TableName() string {
	return "maintenance_interventions"
}

// NewIntervention creates a planned intervention on a target object
func NewIntervention(structureID uuid.UUID, name string, kind TargetKind, targetID uuid.UUID) (*Intervention, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "intervention name is required")
	}
	if !kind.Valid() {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown intervention target kind")
	}
	if targetID == uuid.Nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "intervention target is required")
	}
	return &Intervention{
		StructureAggregateRoot: shared.NewStructureAggregateRoot(structureID),
		Name:                   name,
		TargetKind:             kind,
		TargetID:               targetID,
		Status:                 StatusPlanned,
	}, nil
}

// Update changes name and description
func (iv *Intervention) Update(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "intervention name is required")
	}
	iv.Name = name
	iv.Description = description
	iv.touch()
	return nil
}

// SetCosts records the intervention costs. All figures must be
// non-negative.
func (iv *Intervention) SetCosts(material, heliport, contractor, manDays decimal.Decimal) error {
	for _, d := range []decimal.Decimal{material, heliport, contractor, manDays} {
		if d.IsNegative() {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "costs must not be negative")
		}
	}
	iv.MaterialCost = material
	iv.HeliportCost = heliport
	iv.ContractorCost = contractor
	iv.ManDays = manDays
	iv.touch()
	return nil
}

// TotalCost sums the cost components
func (iv *Intervention) TotalCost() decimal.Decimal {
	return iv.MaterialCost.Add(iv.HeliportCost).Add(iv.ContractorCost)
}

// SetDimensions records the worked surface
func (iv *Intervention) SetDimensions(width, height *float64) error {
	if (width != nil && *width < 0) || (height != nil && *height < 0) {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "dimensions must not be negative")
	}
	iv.Width = width
	iv.Height = height
	iv.touch()
	return nil
}

// Area returns width*height when both are set
func (iv *Intervention) Area() *float64 {
	if iv.Width == nil || iv.Height == nil {
		return nil
	}
	area := *iv.Width * *iv.Height
	return &area
}

// Start moves the intervention to ONGOING
func (iv *Intervention) Start(date time.Time) error {
	if iv.Status != StatusPlanned {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "only planned interventions can start")
	}
	iv.Status = StatusOngoing
	iv.StartDate = &date
	iv.touch()
	return nil
}

// Finish moves the intervention to DONE
func (iv *Intervention) Finish(date time.Time) error {
	if iv.Status != StatusOngoing {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "only ongoing interventions can finish")
	}
	if iv.StartDate != nil && date.Before(*iv.StartDate) {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "end date before start date")
	}
	iv.Status = StatusDone
	iv.EndDate = &date
	iv.touch()
	return nil
}

func (iv *Intervention) touch() {
	iv.UpdatedAt = time.Now()
	iv.IncrementVersion()
}
