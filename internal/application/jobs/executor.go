// Package jobs implements the executor for scheduled background work:
// nightly map captures, altimetry refreshes and touristic content syncs.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreapp "github.com/geotrail/backend/internal/application/core"
	"github.com/geotrail/backend/internal/domain/core"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/tourism"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/geotrail/backend/internal/infrastructure/capture"
	"github.com/geotrail/backend/internal/infrastructure/scheduler"
	"github.com/geotrail/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	mapCaptureWidth  = 800
	mapCaptureHeight = 600
)

// TrekStore is the slice of the trek repository the executor needs
type TrekStore interface {
	FindModifiedSince(ctx context.Context, since time.Time, structureID *uuid.UUID) ([]trekking.Trek, error)
	Save(ctx context.Context, trek *trekking.Trek) error
}

// PathStore is the slice of the path repository the executor needs
type PathStore interface {
	FindModifiedSince(ctx context.Context, since time.Time, structureID *uuid.UUID) ([]core.Path, error)
	Save(ctx context.Context, path *core.Path) error
}

// ContentStore is the slice of the content repository the executor needs
type ContentStore interface {
	FindByEID(ctx context.Context, eid string) (*tourism.TouristicContent, error)
	Save(ctx context.Context, content *tourism.TouristicContent) error
}

// TouristicRecord is one touristic content update pulled from an external
// provider, keyed by its external ID
type TouristicRecord struct {
	EID           string
	Name          string
	Teaser        string
	Description   string
	Practical     string
	Contact       string
	Email         string
	Website       string
	ReservationID string
	CategoryID    uuid.UUID
	StructureID   uuid.UUID
	Geometry      shared.Geometry
}

// TouristicSource pulls touristic content updates from an external provider
type TouristicSource interface {
	FetchUpdates(ctx context.Context, since time.Time, structureID *uuid.UUID) ([]TouristicRecord, error)
}

// Executor runs scheduled jobs against the domain repositories
type Executor struct {
	trekStore    TrekStore
	pathStore    PathStore
	contentStore ContentStore
	source       TouristicSource
	capturer     capture.MapCapturer
	store        storage.ObjectStorage
	sampler      coreapp.ElevationSampler
	mapBaseURL   string
	logger       *zap.Logger
}

var _ scheduler.JobExecutor = (*Executor)(nil)

// NewExecutor creates a job executor. mapBaseURL is the public map renderer
// the capturer navigates to, without a trailing slash.
func NewExecutor(
	trekStore TrekStore,
	pathStore PathStore,
	contentStore ContentStore,
	source TouristicSource,
	capturer capture.MapCapturer,
	store storage.ObjectStorage,
	sampler coreapp.ElevationSampler,
	mapBaseURL string,
	logger *zap.Logger,
) *Executor {
	return &Executor{
		trekStore:    trekStore,
		pathStore:    pathStore,
		contentStore: contentStore,
		source:       source,
		capturer:     capturer,
		store:        store,
		sampler:      sampler,
		mapBaseURL:   mapBaseURL,
		logger:       logger,
	}
}

// Execute dispatches a job to its handler
func (e *Executor) Execute(ctx context.Context, job *scheduler.Job) error {
	switch job.JobType {
	case scheduler.JobTypeMapCapture:
		return e.captureMaps(ctx, job)
	case scheduler.JobTypeAltimetryRefresh:
		return e.refreshAltimetry(ctx, job)
	case scheduler.JobTypeTouristicSync:
		return e.syncTouristicContents(ctx, job)
	default:
		return shared.NewDomainError(shared.ErrInvalidInput.Code,
			fmt.Sprintf("unknown job type %s", job.JobType))
	}
}

// captureMaps re-renders the static map image of every trek modified since
// the job's watermark and stores the PNG under maps/treks/<id>.png
func (e *Executor) captureMaps(ctx context.Context, job *scheduler.Job) error {
	if e.capturer == nil {
		e.logger.Info("Map capture skipped, no capturer configured")
		return nil
	}
	treks, err := e.trekStore.FindModifiedSince(ctx, job.Since, job.StructureID)
	if err != nil {
		return err
	}

	var failed int
	for i := range treks {
		trek := &treks[i]
		result, err := e.capturer.CaptureMap(ctx, &capture.CaptureRequest{
			URL:    fmt.Sprintf("%s/treks/%s", e.mapBaseURL, trek.ID),
			Width:  mapCaptureWidth,
			Height: mapCaptureHeight,
		})
		if err != nil {
			e.logger.Warn("Map capture failed",
				zap.String("trek_id", trek.ID.String()),
				zap.Error(err))
			failed++
			continue
		}

		key := fmt.Sprintf("maps/treks/%s.png", trek.ID)
		if err := e.store.Upload(ctx, key, result.PNGData, "image/png"); err != nil {
			e.logger.Warn("Map image upload failed",
				zap.String("trek_id", trek.ID.String()),
				zap.Error(err))
			failed++
			continue
		}

		// Published treks also get a printable A4 sheet
		if trek.Published {
			pdf, err := e.capturer.PrintPDF(ctx, &capture.CaptureRequest{
				URL: fmt.Sprintf("%s/treks/%s/print", e.mapBaseURL, trek.ID),
			})
			if err != nil {
				e.logger.Warn("Trek print rendering failed",
					zap.String("trek_id", trek.ID.String()),
					zap.Error(err))
				failed++
				continue
			}
			pdfKey := fmt.Sprintf("prints/treks/%s.pdf", trek.ID)
			if err := e.store.Upload(ctx, pdfKey, pdf, "application/pdf"); err != nil {
				e.logger.Warn("Trek print upload failed",
					zap.String("trek_id", trek.ID.String()),
					zap.Error(err))
				failed++
				continue
			}
		}

		trek.SetMapImage(key)
		if err := e.trekStore.Save(ctx, trek); err != nil {
			return err
		}
	}

	e.logger.Info("Map capture job finished",
		zap.Int("treks", len(treks)),
		zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("map capture failed for %d of %d treks", failed, len(treks))
	}
	return nil
}

// refreshAltimetry re-drapes modified paths and treks over the terrain
func (e *Executor) refreshAltimetry(ctx context.Context, job *scheduler.Job) error {
	paths, err := e.pathStore.FindModifiedSince(ctx, job.Since, job.StructureID)
	if err != nil {
		return err
	}
	for i := range paths {
		path := &paths[i]
		altimetry, err := coreapp.ComputeAltimetry(ctx, path.Geometry, e.sampler)
		if err != nil {
			return fmt.Errorf("altimetry refresh for path %s: %w", path.ID, err)
		}
		path.SetAltimetry(altimetry)
		if err := e.pathStore.Save(ctx, path); err != nil {
			return err
		}
	}

	treks, err := e.trekStore.FindModifiedSince(ctx, job.Since, job.StructureID)
	if err != nil {
		return err
	}
	for i := range treks {
		trek := &treks[i]
		altimetry, err := coreapp.ComputeAltimetry(ctx, trek.Geometry, e.sampler)
		if err != nil {
			return fmt.Errorf("altimetry refresh for trek %s: %w", trek.ID, err)
		}
		trek.SetAltimetry(trekking.TrekAltimetry{
			Geom3D:       altimetry.Geom3D,
			Length:       altimetry.Length,
			Ascent:       altimetry.Ascent,
			Descent:      altimetry.Descent,
			MinElevation: altimetry.MinElevation,
			MaxElevation: altimetry.MaxElevation,
			Slope:        altimetry.Slope,
		})
		if err := e.trekStore.Save(ctx, trek); err != nil {
			return err
		}
	}

	e.logger.Info("Altimetry refresh job finished",
		zap.Int("paths", len(paths)),
		zap.Int("treks", len(treks)))
	return nil
}

// syncTouristicContents upserts provider records by external ID. New records
// enter unapproved and unpublished.
func (e *Executor) syncTouristicContents(ctx context.Context, job *scheduler.Job) error {
	if e.source == nil {
		e.logger.Info("Touristic sync skipped, no provider configured")
		return nil
	}
	records, err := e.source.FetchUpdates(ctx, job.Since, job.StructureID)
	if err != nil {
		return err
	}

	var created, updated int
	for _, rec := range records {
		existing, err := e.contentStore.FindByEID(ctx, rec.EID)
		switch {
		case errors.Is(err, shared.ErrNotFound):
			content, err := tourism.NewTouristicContent(rec.StructureID, rec.Name, rec.CategoryID, rec.Geometry)
			if err != nil {
				e.logger.Warn("Skipping invalid touristic record",
					zap.String("eid", rec.EID),
					zap.Error(err))
				continue
			}
			content.EID = rec.EID
			if uerr := content.Update(rec.Name, rec.Teaser, rec.Description, rec.Practical); uerr != nil {
				e.logger.Warn("Skipping invalid touristic record",
					zap.String("eid", rec.EID),
					zap.Error(uerr))
				continue
			}
			content.SetContact(rec.Contact, rec.Email, rec.Website, rec.ReservationID)
			if err := e.contentStore.Save(ctx, content); err != nil {
				return err
			}
			created++
		case err != nil:
			return err
		default:
			if uerr := existing.Update(rec.Name, rec.Teaser, rec.Description, rec.Practical); uerr != nil {
				e.logger.Warn("Skipping invalid touristic record",
					zap.String("eid", rec.EID),
					zap.Error(uerr))
				continue
			}
			existing.SetContact(rec.Contact, rec.Email, rec.Website, rec.ReservationID)
			if !rec.Geometry.IsZero() {
				if gerr := existing.SetGeometry(rec.Geometry); gerr != nil {
					e.logger.Warn("Skipping invalid touristic geometry",
						zap.String("eid", rec.EID),
						zap.Error(gerr))
					continue
				}
			}
			if err := e.contentStore.Save(ctx, existing); err != nil {
				return err
			}
			updated++
		}
	}

	e.logger.Info("Touristic sync job finished",
		zap.Int("records", len(records)),
		zap.Int("created", created),
		zap.Int("updated", updated))
	return nil
}
