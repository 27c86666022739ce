package signage

import (
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSignageInput carries the fields for planting a signpost
type CreateSignageInput struct {
	Name             string
	Code             string
	Description      string
	Geometry         shared.Geometry
	TypeID           *uuid.UUID
	ConditionID      *uuid.UUID
	SealingID        *uuid.UUID
	ManagerID        *uuid.UUID
	ImplantationYear *int
	PrintedElevation *int
	EID              string
}

// UpdateSignageInput carries the fields for updating a signpost
type UpdateSignageInput struct {
	Name             string
	Code             string
	Description      string
	Geometry         *shared.Geometry
	TypeID           *uuid.UUID
	ConditionID      *uuid.UUID
	SealingID        *uuid.UUID
	ManagerID        *uuid.UUID
	ImplantationYear *int
	PrintedElevation *int
}

// CreateBladeInput carries the fields for mounting a blade
type CreateBladeInput struct {
	Number      string
	TypeID      *uuid.UUID
	ColorID     *uuid.UUID
	DirectionID *uuid.UUID
	ConditionID *uuid.UUID
	Lines       []LineInput
}

// UpdateBladeInput carries the fields for updating a blade
type UpdateBladeInput struct {
	Number      string
	TypeID      *uuid.UUID
	ColorID     *uuid.UUID
	DirectionID *uuid.UUID
	ConditionID *uuid.UUID
}

// LineInput is one row of a blade
type LineInput struct {
	Number    int
	Text      string
	Distance  *decimal.Decimal
	Time      *decimal.Decimal
	Pictogram string
}

// ExportResult points at a generated export file
type ExportResult struct {
	StorageKey  string `json:"storage_key"`
	DownloadURL string `json:"download_url"`
	ContentType string `json:"content_type"`
	RowCount    int    `json:"row_count"`
}
