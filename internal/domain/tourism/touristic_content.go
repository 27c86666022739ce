// Package tourism models touristic contents and information desks
// published alongside treks.
package tourism

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TouristicContent is a point record promoting a local service or sight
type TouristicContent struct {
	shared.StructureAggregateRoot
	Name            string                    `gorm:"type:varchar(128);not null"`
	Description     string                    `gorm:"type:text"`
	TeaserText      string                    `gorm:"type:text"`
	Geometry        shared.Geometry           `gorm:"type:geometry(Point,2154);not null"`
	CategoryID      uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Category        *TouristicContentCategory `gorm:"foreignKey:CategoryID"`
	Types1          []TouristicContentType    `gorm:"many2many:tourism_content_types1"`
	Types2          []TouristicContentType    `gorm:"many2many:tourism_content_types2"`
	Themes          []common.Theme            `gorm:"many2many:tourism_content_themes"`
	ContactInfo     string                    `gorm:"type:text;column:contact"`
	Email           string                    `gorm:"type:varchar(254)"`
	Website         string                    `gorm:"type:varchar(2048)"`
	Practical       string                    `gorm:"type:text;column:practical_info"`
	ReservationID   string                    `gorm:"type:varchar(1024)"`
	Approved        bool                      `gorm:"not null;default:false"`
	Published       bool                      `gorm:"not null;default:false;index"`
	ReviewRequested bool                      `gorm:"not null;default:false"`
	PublicationDate *time.Time
	EID             string         `gorm:"type:varchar(1024);column:eid"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName returns the database table name
func (TouristicContent) TableName() string {
	return "tourism_contents"
}

// NewTouristicContent creates a touristic content record
func NewTouristicContent(structureID uuid.UUID, name string, categoryID uuid.UUID, geom shared.Geometry) (*TouristicContent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "content name is required")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "content category is required")
	}
	if geom.IsZero() || geom.Type != shared.GeometryPoint {
		return nil, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "content geometry must be a point")
	}
	return &TouristicContent{
		StructureAggregateRoot: shared.NewStructureAggregateRoot(structureID),
		Name:                   name,
		CategoryID:             categoryID,
		Geometry:               geom,
	}, nil
}

// Update changes the descriptive fields
func (tc *TouristicContent) Update(name, teaser, description, practical string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "content name is required")
	}
	tc.Name = name
	tc.TeaserText = teaser
	tc.Description = description
	tc.Practical = practical
	tc.touch()
	return nil
}

// SetContact updates the contact block
func (tc *TouristicContent) SetContact(contact, email, website, reservationID string) {
	tc.ContactInfo = contact
	tc.Email = strings.TrimSpace(email)
	tc.Website = strings.TrimSpace(website)
	tc.ReservationID = reservationID
	tc.touch()
}

// SetGeometry moves the content point
func (tc *TouristicContent) SetGeometry(geom shared.Geometry) error {
	if geom.IsZero() || geom.Type != shared.GeometryPoint {
		return shared.NewDomainError(shared.ErrInvalidGeometry.Code, "content geometry must be a point")
	}
	tc.Geometry = geom
	tc.touch()
	return nil
}

// SetCategory reassigns the category; type lists are category-specific
// and must be replaced by the caller afterwards.
func (tc *TouristicContent) SetCategory(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "content category is required")
	}
	if categoryID != tc.CategoryID {
		tc.Types1 = nil
		tc.Types2 = nil
	}
	tc.CategoryID = categoryID
	tc.touch()
	return nil
}

// Approve marks the record as validated by its managing structure
func (tc *TouristicContent) Approve() {
	tc.Approved = true
	tc.touch()
}

// Publish makes the content visible on public portals
func (tc *TouristicContent) Publish() error {
	if tc.Published {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "content is already published")
	}
	now := time.Now()
	tc.Published = true
	tc.ReviewRequested = false
	tc.PublicationDate = &now
	tc.touch()
	return nil
}

// Unpublish removes the content from public portals
func (tc *TouristicContent) Unpublish() error {
	if !tc.Published {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "content is not published")
	}
	tc.Published = false
	tc.PublicationDate = nil
	tc.touch()
	return nil
}

func (tc *TouristicContent) touch() {
	tc.UpdatedAt = time.Now()
	tc.IncrementVersion()
}

// TouristicContentCategory groups contents and names its two type lists
type TouristicContentCategory struct {
	shared.BaseAggregateRoot
	Label      string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Pictogram  string `gorm:"type:varchar(512)"`
	TypeLabel1 string `gorm:"type:varchar(128)"`
	TypeLabel2 string `gorm:"type:varchar(128)"`
}

// TableName returns the database table name
func (TouristicContentCategory) TableName() string {
	return "tourism_content_categories"
}

// NewTouristicContentCategory creates a content category
func NewTouristicContentCategory(label, typeLabel1, typeLabel2 string) (*TouristicContentCategory, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "category label is required")
	}
	return &TouristicContentCategory{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Label:             label,
		TypeLabel1:        typeLabel1,
		TypeLabel2:        typeLabel2,
	}, nil
}

// TouristicContentType is a value of one of a category's two type lists
type TouristicContentType struct {
	shared.BaseAggregateRoot
	Label      string    `gorm:"type:varchar(128);not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	List       int       `gorm:"not null;default:1"`
}

// TableName returns the database table name
func (TouristicContentType) TableName() string {
	return "tourism_content_types"
}

// NewTouristicContentType creates a type value in list 1 or 2
func NewTouristicContentType(label string, categoryID uuid.UUID, list int) (*TouristicContentType, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "type label is required")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "type category is required")
	}
	if list != 1 && list != 2 {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "type list must be 1 or 2")
	}
	return &TouristicContentType{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Label:             label,
		CategoryID:        categoryID,
		List:              list,
	}, nil
}
