package trekking

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Practice is an outdoor activity a trek is designed for
type Practice struct {
	shared.BaseAggregateRoot
	Name      string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Pictogram string `gorm:"type:varchar(512)"`
	Rank      int    `gorm:"column:ordering;not null;default:0"`
}

// TableName returns the database table name
func (Practice) TableName() string {
	return "trekking_practices"
}

// NewPractice creates a practice
func NewPractice(name, pictogram string, rank int) (*Practice, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "practice name is required")
	}
	return &Practice{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Name: name, Pictogram: pictogram, Rank: rank}, nil
}

// Update changes the practice fields
func (p *Practice) Update(name, pictogram string, rank int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "practice name is required")
	}
	p.Name = name
	p.Pictogram = pictogram
	p.Rank = rank
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// DifficultyLevel ranks treks by effort. Rank drives display order and
// must stay unique.
type DifficultyLevel struct {
	shared.BaseAggregateRoot
	Name      string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Pictogram string `gorm:"type:varchar(512)"`
	Rank      int    `gorm:"not null;uniqueIndex"`
}

// TableName returns the database table name
func (DifficultyLevel) TableName() string {
	return "trekking_difficulty_levels"
}

// NewDifficultyLevel creates a difficulty level
func NewDifficultyLevel(name, pictogram string, rank int) (*DifficultyLevel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "difficulty name is required")
	}
	if rank < 0 {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "difficulty rank must not be negative")
	}
	return &DifficultyLevel{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Name: name, Pictogram: pictogram, Rank: rank}, nil
}

// Route describes the itinerary shape (loop, out-and-back, crossing)
type Route struct {
	shared.BaseAggregateRoot
	Name      string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Pictogram string `gorm:"type:varchar(512)"`
}

// TableName returns the database table name
func (Route) TableName() string {
	return "trekking_routes"
}

// NewRoute creates a route shape
func NewRoute(name, pictogram string) (*Route, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "route name is required")
	}
	return &Route{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Name: name, Pictogram: pictogram}, nil
}

// Accessibility describes which audiences a trek is accessible to
type Accessibility struct {
	shared.BaseAggregateRoot
	Name      string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Pictogram string `gorm:"type:varchar(512)"`
}

// TableName returns the database table name
func (Accessibility) TableName() string {
	return "trekking_accessibilities"
}

// NewAccessibility creates an accessibility label
func NewAccessibility(name, pictogram string) (*Accessibility, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "accessibility name is required")
	}
	return &Accessibility{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Name: name, Pictogram: pictogram}, nil
}

// TrekNetwork labels treks with the network they advertise
type TrekNetwork struct {
	shared.BaseAggregateRoot
	Name      string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Pictogram string `gorm:"type:varchar(512)"`
}

// TableName returns the database table name
func (TrekNetwork) TableName() string {
	return "trekking_trek_networks_ref"
}

// NewTrekNetwork creates a trek network label
func NewTrekNetwork(name, pictogram string) (*TrekNetwork, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "network name is required")
	}
	return &TrekNetwork{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Name: name, Pictogram: pictogram}, nil
}

// WebLinkCategory groups web links shown on trek pages
type WebLinkCategory struct {
	shared.BaseAggregateRoot
	Label     string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Pictogram string `gorm:"type:varchar(512)"`
}

// TableName returns the database table name
func (WebLinkCategory) TableName() string {
	return "trekking_weblink_categories"
}

// WebLink is an external link attached to treks
type WebLink struct {
	shared.BaseAggregateRoot
	Name       string           `gorm:"type:varchar(128);not null"`
	URL        string           `gorm:"type:varchar(2048);not null"`
	CategoryID *uuid.UUID       `gorm:"type:uuid;index"`
	Category   *WebLinkCategory `gorm:"foreignKey:CategoryID"`
}

// TableName returns the database table name
func (WebLink) TableName() string {
	return "trekking_weblinks"
}

// NewWebLink creates a web link
func NewWebLink(name, url string, categoryID *uuid.UUID) (*WebLink, error) {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "web link name is required")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "web link url must be absolute")
	}
	return &WebLink{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Name: name, URL: url, CategoryID: categoryID}, nil
}

// POIType classifies points of interest
type POIType struct {
	shared.BaseAggregateRoot
	Label     string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Pictogram string `gorm:"type:varchar(512)"`
}

// TableName returns the database table name
func (POIType) TableName() string {
	return "trekking_poi_types"
}

// NewPOIType creates a POI type
func NewPOIType(label, pictogram string) (*POIType, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "poi type label is required")
	}
	return &POIType{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Label: label, Pictogram: pictogram}, nil
}

// ServiceType classifies service points and carries their publication flag
type ServiceType struct {
	shared.BaseAggregateRoot
	Name      string     `gorm:"type:varchar(128);not null;uniqueIndex"`
	Pictogram string     `gorm:"type:varchar(512)"`
	Published bool       `gorm:"not null;default:false"`
	Practices []Practice `gorm:"many2many:trekking_service_type_practices"`
}

// TableName returns the database table name
func (ServiceType) TableName() string {
	return "trekking_service_types"
}

// NewServiceType creates a service type
func NewServiceType(name, pictogram string) (*ServiceType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "service type name is required")
	}
	return &ServiceType{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Name: name, Pictogram: pictogram}, nil
}
