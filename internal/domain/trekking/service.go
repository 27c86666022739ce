package trekking

import (
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is an unnamed point record typed by its ServiceType (water
// point, picnic shelter). Its display name comes from the type.
type Service struct {
	shared.StructureAggregateRoot
	Geometry  shared.Geometry `gorm:"type:geometry(Point,2154);not null"`
	TypeID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type      *ServiceType    `gorm:"foreignKey:TypeID"`
	EID       string          `gorm:"type:varchar(1024);column:eid"`
	DeletedAt gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the database table name
func (Service) TableName() string {
	return "trekking_services"
}

// NewService creates a service point
func NewService(structureID, typeID uuid.UUID, geom shared.Geometry) (*Service, error) {
	if typeID == uuid.Nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "service type is required")
	}
	if err := validatePointGeometry(geom); err != nil {
		return nil, err
	}
	return &Service{
		StructureAggregateRoot: shared.NewStructureAggregateRoot(structureID),
		TypeID:                 typeID,
		Geometry:               geom,
	}, nil
}

// SetType changes the service type
func (s *Service) SetType(typeID uuid.UUID) error {
	if typeID == uuid.Nil {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "service type is required")
	}
	s.TypeID = typeID
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SetGeometry moves the service point
func (s *Service) SetGeometry(geom shared.Geometry) error {
	if err := validatePointGeometry(geom); err != nil {
		return err
	}
	s.Geometry = geom
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}
