package tourism

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InformationDesk is a staffed or physical information point
type InformationDesk struct {
	shared.BaseAggregateRoot
	Name          string               `gorm:"type:varchar(256);not null"`
	TypeID        uuid.UUID            `gorm:"type:uuid;not null;index"`
	Type          *InformationDeskType `gorm:"foreignKey:TypeID"`
	Description   string               `gorm:"type:text"`
	Phone         string               `gorm:"type:varchar(32)"`
	Email         string               `gorm:"type:varchar(254)"`
	Website       string               `gorm:"type:varchar(2048)"`
	Street        string               `gorm:"type:varchar(256)"`
	PostalCode    string               `gorm:"type:varchar(8)"`
	Municipality  string               `gorm:"type:varchar(256)"`
	AccessibilityNote string           `gorm:"type:text"`
	PhotoKey      string               `gorm:"type:varchar(512)"`
	Geometry      shared.Geometry      `gorm:"type:geometry(Point,2154)"`
	DeletedAt     gorm.DeletedAt       `gorm:"index"`
}

// TableName returns the database table name
func (InformationDesk) TableName() string {
	return "tourism_information_desks"
}

// NewInformationDesk creates an information desk
func NewInformationDesk(name string, typeID uuid.UUID, geom shared.Geometry) (*InformationDesk, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "desk name is required")
	}
	if typeID == uuid.Nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "desk type is required")
	}
	if !geom.IsZero() && geom.Type != shared.GeometryPoint {
		return nil, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "desk geometry must be a point")
	}
	return &InformationDesk{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		TypeID:            typeID,
		Geometry:          geom,
	}, nil
}

// Update changes contact and address fields
func (d *InformationDesk) Update(description, phone, email, website, street, postalCode, municipality string) {
	d.Description = description
	d.Phone = strings.TrimSpace(phone)
	d.Email = strings.TrimSpace(email)
	d.Website = strings.TrimSpace(website)
	d.Street = street
	d.PostalCode = postalCode
	d.Municipality = municipality
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
}

// SetPhoto records the stored photo object key
func (d *InformationDesk) SetPhoto(key string) {
	d.PhotoKey = key
	d.UpdatedAt = time.Now()
}

// InformationDeskType classifies information desks
type InformationDeskType struct {
	shared.BaseAggregateRoot
	Label     string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Pictogram string `gorm:"type:varchar(512)"`
}

// TableName returns the database table name
func (InformationDeskType) TableName() string {
	return "tourism_information_desk_types"
}
