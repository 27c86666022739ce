package signage

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Blade is a directional panel mounted on a signpost. Blades are managed
// through their signage and inherit its structure.
type Blade struct {
	shared.StructureAggregateRoot
	SignageID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_blade_number,unique"`
	Number      string          `gorm:"type:varchar(250);not null;index:idx_blade_number,unique"`
	TypeID      *uuid.UUID      `gorm:"type:uuid;index"`
	Type        *BladeType      `gorm:"foreignKey:TypeID"`
	ColorID     *uuid.UUID      `gorm:"type:uuid;index"`
	Color       *BladeColor     `gorm:"foreignKey:ColorID"`
	DirectionID *uuid.UUID      `gorm:"type:uuid;index"`
	Direction   *BladeDirection `gorm:"foreignKey:DirectionID"`
	ConditionID *uuid.UUID      `gorm:"type:uuid;index"`
	Condition   *Condition      `gorm:"foreignKey:ConditionID"`
	Lines       []Line          `gorm:"foreignKey:BladeID"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the database table name
func (Blade) TableName() string {
	return "signage_blades"
}

// NewBlade creates a blade on a signpost
func NewBlade(signage *Signage, number string) (*Blade, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "blade number is required")
	}
	for _, existing := range signage.Blades {
		if existing.Number == number {
			return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "blade number already used on this signage")
		}
	}
	b := &Blade{
		StructureAggregateRoot: shared.NewStructureAggregateRoot(signage.StructureID),
		SignageID:              signage.ID,
		Number:                 number,
	}
	b.AddDomainEvent(NewBladeCreatedEvent(b))
	return b, nil
}

// Renumber changes the blade number
func (b *Blade) Renumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "blade number is required")
	}
	b.Number = number
	b.touch()
	return nil
}

// SetEquipment assigns type, color and direction
func (b *Blade) SetEquipment(typeID, colorID, directionID *uuid.UUID) {
	b.TypeID = typeID
	b.ColorID = colorID
	b.DirectionID = directionID
	b.touch()
}

// SetCondition records the observed condition
func (b *Blade) SetCondition(conditionID *uuid.UUID) {
	b.ConditionID = conditionID
	b.touch()
}

// ReplaceLines swaps the blade's line set after validating numbering
func (b *Blade) ReplaceLines(lines []Line) error {
	seen := make(map[int]struct{}, len(lines))
	for i := range lines {
		if lines[i].Number <= 0 {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "line numbers start at 1")
		}
		if _, dup := seen[lines[i].Number]; dup {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "duplicate line number on blade")
		}
		seen[lines[i].Number] = struct{}{}
		if lines[i].Distance != nil && lines[i].Distance.IsNegative() {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "line distance must not be negative")
		}
		lines[i].BladeID = b.ID
	}
	b.Lines = lines
	b.touch()
	return nil
}

func (b *Blade) touch() {
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// Line is a single row of text on a blade. Distance is in kilometers,
// Time in hours, both as printed on the panel.
type Line struct {
	shared.BaseEntity
	BladeID   uuid.UUID        `gorm:"type:uuid;not null;index:idx_line_number,unique"`
	Number    int              `gorm:"not null;index:idx_line_number,unique"`
	Text      string           `gorm:"type:varchar(1000);not null"`
	Distance  *decimal.Decimal `gorm:"type:numeric(8,3)"`
	Time      *decimal.Decimal `gorm:"type:numeric(8,2)"`
	Pictogram string           `gorm:"type:varchar(250)"`
}

// TableName returns the database table name
func (Line) TableName() string {
	return "signage_blade_lines"
}

// NewLine creates a blade line
func NewLine(number int, text string, distance, duration *decimal.Decimal) (Line, error) {
	if number <= 0 {
		return Line{}, shared.NewDomainError(shared.ErrInvalidInput.Code, "line numbers start at 1")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Line{}, shared.NewDomainError(shared.ErrInvalidInput.Code, "line text is required")
	}
	if distance != nil && distance.IsNegative() {
		return Line{}, shared.NewDomainError(shared.ErrInvalidInput.Code, "line distance must not be negative")
	}
	if duration != nil && duration.IsNegative() {
		return Line{}, shared.NewDomainError(shared.ErrInvalidInput.Code, "line time must not be negative")
	}
	return Line{
		BaseEntity: shared.NewBaseEntity(),
		Number:     number,
		Text:       text,
		Distance:   distance,
		Time:       duration,
	}, nil
}
