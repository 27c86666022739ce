package infrastructure

import (
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateInput carries the fields for recording an infrastructure
type CreateInput struct {
	Name                    string
	Description             string
	Geometry                shared.Geometry
	TypeID                  uuid.UUID
	ConditionID             *uuid.UUID
	MaintenanceDifficultyID *uuid.UUID
	UsageDifficultyID       *uuid.UUID
	ImplantationYear        *int
	AccessibilityNote       string
	EID                     string
}

// UpdateInput carries the fields for updating an infrastructure
type UpdateInput struct {
	Name                    string
	Description             string
	Geometry                *shared.Geometry
	TypeID                  uuid.UUID
	ConditionID             *uuid.UUID
	MaintenanceDifficultyID *uuid.UUID
	UsageDifficultyID       *uuid.UUID
	ImplantationYear        *int
	AccessibilityNote       string
}

// ExportResult points at a generated export file
type ExportResult struct {
	StorageKey  string `json:"storage_key"`
	DownloadURL string `json:"download_url"`
	ContentType string `json:"content_type"`
	RowCount    int    `json:"row_count"`
}
