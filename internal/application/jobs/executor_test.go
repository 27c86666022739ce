package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/geotrail/backend/internal/domain/core"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/tourism"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/geotrail/backend/internal/infrastructure/capture"
	"github.com/geotrail/backend/internal/infrastructure/scheduler"
	"github.com/geotrail/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// rampSampler reports an elevation proportional to the easting so ascent
// figures are deterministic
type rampSampler struct{}

func (rampSampler) SampleElevation(_ context.Context, coord shared.Coordinate) (float64, error) {
	return coord.X / 1000, nil
}

type executorFixture struct {
	trekStore    *MockTrekStore
	pathStore    *MockPathStore
	contentStore *MockContentStore
	source       *MockTouristicSource
	capturer     *MockCapturer
	store        *storage.MemoryObjectStorage
	executor     *Executor
}

func newExecutorFixture() *executorFixture {
	f := &executorFixture{
		trekStore:    new(MockTrekStore),
		pathStore:    new(MockPathStore),
		contentStore: new(MockContentStore),
		source:       new(MockTouristicSource),
		capturer:     new(MockCapturer),
		store:        storage.NewMemoryObjectStorage(),
	}
	f.executor = NewExecutor(
		f.trekStore, f.pathStore, f.contentStore, f.source,
		f.capturer, f.store, rampSampler{},
		"https://rando.example.com", zap.NewNop(),
	)
	return f
}

func testLine(t *testing.T) shared.Geometry {
	t.Helper()
	geom, err := shared.NewLineString([]shared.Coordinate{
		{X: 930000, Y: 6500000},
		{X: 931000, Y: 6500000},
	}, shared.SRIDLambert93)
	require.NoError(t, err)
	return geom
}

func testJobTrek(t *testing.T) *trekking.Trek {
	t.Helper()
	trek, err := trekking.NewTrek(uuid.New(), "Tour du Queyras", testLine(t))
	require.NoError(t, err)
	return trek
}

func TestExecutor_Execute(t *testing.T) {
	t.Run("rejects unknown job type", func(t *testing.T) {
		f := newExecutorFixture()
		job := scheduler.NewJob(nil, scheduler.JobType("VACUUM"), time.Now(), 3)

		err := f.executor.Execute(context.Background(), job)

		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, shared.ErrInvalidInput.Code, domainErr.Code)
	})
}

func TestExecutor_MapCapture(t *testing.T) {
	since := time.Now().Add(-24 * time.Hour)

	t.Run("captures and stores trek map images", func(t *testing.T) {
		f := newExecutorFixture()
		trek := testJobTrek(t)
		treks := []trekking.Trek{*trek}
		png := []byte{0x89, 0x50, 0x4E, 0x47}

		f.trekStore.On("FindModifiedSince", mock.Anything, since, (*uuid.UUID)(nil)).Return(treks, nil)
		f.capturer.On("CaptureMap", mock.Anything, mock.MatchedBy(func(req *capture.CaptureRequest) bool {
			return req.URL == "https://rando.example.com/treks/"+trek.ID.String() &&
				req.Width == mapCaptureWidth && req.Height == mapCaptureHeight
		})).Return(&capture.CaptureResult{PNGData: png}, nil)
		f.trekStore.On("Save", mock.Anything, mock.Anything).Return(nil)

		err := f.executor.Execute(context.Background(), scheduler.NewJob(nil, scheduler.JobTypeMapCapture, since, 3))

		require.NoError(t, err)
		key := "maps/treks/" + trek.ID.String() + ".png"
		assert.Equal(t, key, treks[0].MapImageKey)
		stored, err := f.store.Download(context.Background(), key)
		require.NoError(t, err)
		assert.Equal(t, png, stored)
		f.trekStore.AssertExpectations(t)
	})

	t.Run("renders a print sheet for published treks", func(t *testing.T) {
		f := newExecutorFixture()
		trek := testJobTrek(t)
		require.NoError(t, trek.Publish())
		png := []byte{0x89, 0x50, 0x4E, 0x47}
		pdf := []byte("%PDF-1.7")

		f.trekStore.On("FindModifiedSince", mock.Anything, since, (*uuid.UUID)(nil)).Return([]trekking.Trek{*trek}, nil)
		f.capturer.On("CaptureMap", mock.Anything, mock.Anything).Return(&capture.CaptureResult{PNGData: png}, nil)
		f.capturer.On("PrintPDF", mock.Anything, mock.MatchedBy(func(req *capture.CaptureRequest) bool {
			return req.URL == "https://rando.example.com/treks/"+trek.ID.String()+"/print"
		})).Return(pdf, nil)
		f.trekStore.On("Save", mock.Anything, mock.Anything).Return(nil)

		err := f.executor.Execute(context.Background(), scheduler.NewJob(nil, scheduler.JobTypeMapCapture, since, 3))

		require.NoError(t, err)
		stored, err := f.store.Download(context.Background(), "prints/treks/"+trek.ID.String()+".pdf")
		require.NoError(t, err)
		assert.Equal(t, pdf, stored)
		f.capturer.AssertExpectations(t)
	})

	t.Run("scopes the lookup to the job's structure", func(t *testing.T) {
		f := newExecutorFixture()
		structureID := uuid.New()

		f.trekStore.On("FindModifiedSince", mock.Anything, since, &structureID).Return([]trekking.Trek{}, nil)

		err := f.executor.Execute(context.Background(), scheduler.NewJob(&structureID, scheduler.JobTypeMapCapture, since, 3))

		require.NoError(t, err)
		f.trekStore.AssertExpectations(t)
	})

	t.Run("reports capture failures without saving", func(t *testing.T) {
		f := newExecutorFixture()
		trek := testJobTrek(t)

		f.trekStore.On("FindModifiedSince", mock.Anything, since, (*uuid.UUID)(nil)).Return([]trekking.Trek{*trek}, nil)
		f.capturer.On("CaptureMap", mock.Anything, mock.Anything).Return(nil, &capture.CaptureError{
			Code:    "CAPTURE_TIMEOUT",
			Message: "navigation timed out",
		})

		err := f.executor.Execute(context.Background(), scheduler.NewJob(nil, scheduler.JobTypeMapCapture, since, 3))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "map capture failed for 1 of 1")
		f.trekStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestExecutor_AltimetryRefresh(t *testing.T) {
	since := time.Now().Add(-24 * time.Hour)

	t.Run("re-drapes modified paths and treks", func(t *testing.T) {
		f := newExecutorFixture()
		path, err := core.NewPath(uuid.New(), "Sentier des Astragales", testLine(t))
		require.NoError(t, err)
		trek := testJobTrek(t)
		paths := []core.Path{*path}
		treks := []trekking.Trek{*trek}

		f.pathStore.On("FindModifiedSince", mock.Anything, since, (*uuid.UUID)(nil)).Return(paths, nil)
		f.pathStore.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.trekStore.On("FindModifiedSince", mock.Anything, since, (*uuid.UUID)(nil)).Return(treks, nil)
		f.trekStore.On("Save", mock.Anything, mock.Anything).Return(nil)

		err = f.executor.Execute(context.Background(), scheduler.NewJob(nil, scheduler.JobTypeAltimetryRefresh, since, 3))

		require.NoError(t, err)
		assert.Equal(t, 930, paths[0].Altimetry.MinElevation)
		assert.Equal(t, 931, paths[0].Altimetry.MaxElevation)
		assert.Equal(t, 1, paths[0].Altimetry.Ascent)
		assert.InDelta(t, 1000.0, paths[0].Altimetry.Length, 0.1)
		assert.Equal(t, 931, treks[0].Altimetry.MaxElevation)
		assert.Equal(t, shared.GeometryLineString, treks[0].Altimetry.Geom3D.Type)
		f.pathStore.AssertExpectations(t)
		f.trekStore.AssertExpectations(t)
	})
}

func TestExecutor_TouristicSync(t *testing.T) {
	since := time.Now().Add(-24 * time.Hour)
	structureID := uuid.New()
	categoryID := uuid.New()
	point := shared.NewPoint(930500, 6500100, shared.SRIDLambert93)

	t.Run("creates new records and updates known ones", func(t *testing.T) {
		f := newExecutorFixture()
		existing, err := tourism.NewTouristicContent(structureID, "Auberge du Col", categoryID, point)
		require.NoError(t, err)
		existing.EID = "sitra-2"

		records := []TouristicRecord{
			{
				EID:         "sitra-1",
				Name:        "Refuge de Furfande",
				Teaser:      "Refuge de montagne",
				Email:       "contact@furfande.example.com",
				CategoryID:  categoryID,
				StructureID: structureID,
				Geometry:    point,
			},
			{
				EID:         "sitra-2",
				Name:        "Auberge du Col Agnel",
				Contact:     "05 00 00 00 00",
				CategoryID:  categoryID,
				StructureID: structureID,
				Geometry:    point,
			},
		}

		f.source.On("FetchUpdates", mock.Anything, since, (*uuid.UUID)(nil)).Return(records, nil)
		f.contentStore.On("FindByEID", mock.Anything, "sitra-1").Return(nil, shared.ErrNotFound)
		f.contentStore.On("FindByEID", mock.Anything, "sitra-2").Return(existing, nil)
		f.contentStore.On("Save", mock.Anything, mock.MatchedBy(func(c *tourism.TouristicContent) bool {
			return c.EID == "sitra-1" && c.Name == "Refuge de Furfande" && !c.Approved
		})).Return(nil)
		f.contentStore.On("Save", mock.Anything, existing).Return(nil)

		err = f.executor.Execute(context.Background(), scheduler.NewJob(nil, scheduler.JobTypeTouristicSync, since, 3))

		require.NoError(t, err)
		assert.Equal(t, "Auberge du Col Agnel", existing.Name)
		assert.Equal(t, "05 00 00 00 00", existing.ContactInfo)
		f.contentStore.AssertExpectations(t)
	})

	t.Run("skips records the domain rejects", func(t *testing.T) {
		f := newExecutorFixture()
		records := []TouristicRecord{
			{EID: "sitra-3", Name: "  ", CategoryID: categoryID, StructureID: structureID, Geometry: point},
		}

		f.source.On("FetchUpdates", mock.Anything, since, (*uuid.UUID)(nil)).Return(records, nil)
		f.contentStore.On("FindByEID", mock.Anything, "sitra-3").Return(nil, shared.ErrNotFound)

		err := f.executor.Execute(context.Background(), scheduler.NewJob(nil, scheduler.JobTypeTouristicSync, since, 3))

		require.NoError(t, err)
		f.contentStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
