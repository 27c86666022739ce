package trekking

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/geotrail/backend/internal/infrastructure/cache"
	"github.com/geotrail/backend/internal/infrastructure/scheduler"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testLine(t *testing.T) shared.Geometry {
	t.Helper()
	geom, err := shared.NewLineString([]shared.Coordinate{
		{X: 700000, Y: 6600000},
		{X: 702000, Y: 6601000},
	}, shared.SRIDLambert93)
	require.NoError(t, err)
	return geom
}

func testTrek(t *testing.T, structureID uuid.UUID) *trekking.Trek {
	t.Helper()
	trek, err := trekking.NewTrek(structureID, "Tour du lac", testLine(t))
	require.NoError(t, err)
	return trek
}

func testActor(structureID uuid.UUID, permissions ...string) authz.Actor {
	return authz.Actor{UserID: uuid.New(), StructureID: structureID, Permissions: permissions}
}

func newTrekService(trekRepo *MockTrekRepository, jobs JobScheduler) *TrekService {
	return NewTrekService(trekRepo, new(MockThemeRepository), new(MockTrekNetworkRepository),
		new(MockAccessibilityRepository), new(MockWebLinkRepository),
		cache.NewInMemoryLayerCache(), jobs, zap.NewNop())
}

func TestTrekService_Create(t *testing.T) {
	structureID := uuid.New()
	actor := testActor(structureID)

	t.Run("creates trek and enqueues map capture", func(t *testing.T) {
		trekRepo := new(MockTrekRepository)
		trekRepo.On("Save", mock.Anything, mock.AnythingOfType("*trekking.Trek")).Return(nil)
		jobs := new(MockJobScheduler)
		jobs.On("ScheduleJob", mock.Anything, scheduler.JobTypeMapCapture, mock.Anything).Return(nil)

		svc := newTrekService(trekRepo, jobs)

		trek, err := svc.Create(context.Background(), actor, CreateTrekInput{
			Name:     "Tour du lac",
			Geometry: testLine(t),
		})
		require.NoError(t, err)
		assert.Equal(t, structureID, trek.StructureID)
		assert.False(t, trek.Published)
		jobs.AssertExpectations(t)
	})

	t.Run("rejects missing geometry", func(t *testing.T) {
		svc := newTrekService(new(MockTrekRepository), nil)

		_, err := svc.Create(context.Background(), actor, CreateTrekInput{Name: "Tour du lac"})
		require.Error(t, err)

		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.ErrInvalidGeometry.Code, derr.Code)
	})

	t.Run("rejects negative duration", func(t *testing.T) {
		svc := newTrekService(new(MockTrekRepository), nil)

		hours := -2.0
		_, err := svc.Create(context.Background(), actor, CreateTrekInput{
			Name:          "Tour du lac",
			Geometry:      testLine(t),
			DurationHours: &hours,
		})
		require.Error(t, err)
	})
}

func TestTrekService_Publish(t *testing.T) {
	structureID := uuid.New()

	t.Run("requires the publish permission", func(t *testing.T) {
		svc := newTrekService(new(MockTrekRepository), nil)

		_, err := svc.Publish(context.Background(), testActor(structureID), uuid.New())
		require.Error(t, err)

		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.ErrForbidden.Code, derr.Code)
	})

	t.Run("publishes and invalidates the layer", func(t *testing.T) {
		trek := testTrek(t, structureID)
		trekRepo := new(MockTrekRepository)
		trekRepo.On("FindByID", mock.Anything, trek.ID).Return(trek, nil)
		trekRepo.On("Save", mock.Anything, trek).Return(nil)
		jobs := new(MockJobScheduler)
		jobs.On("ScheduleJob", mock.Anything, scheduler.JobTypeMapCapture, mock.Anything).Return(nil)

		svc := newTrekService(trekRepo, jobs)

		published, err := svc.Publish(context.Background(), testActor(structureID, "trek:publish"), trek.ID)
		require.NoError(t, err)
		assert.True(t, published.Published)
		require.NotNil(t, published.PublicationDate)
	})

	t.Run("double publish rejected", func(t *testing.T) {
		trek := testTrek(t, structureID)
		require.NoError(t, trek.Publish())
		trekRepo := new(MockTrekRepository)
		trekRepo.On("FindByID", mock.Anything, trek.ID).Return(trek, nil)

		svc := newTrekService(trekRepo, nil)

		_, err := svc.Publish(context.Background(), testActor(structureID, "trek:publish"), trek.ID)
		require.Error(t, err)

		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.ErrInvalidState.Code, derr.Code)
	})

	t.Run("cross-structure publish rejected", func(t *testing.T) {
		trek := testTrek(t, structureID)
		trekRepo := new(MockTrekRepository)
		trekRepo.On("FindByID", mock.Anything, trek.ID).Return(trek, nil)

		svc := newTrekService(trekRepo, nil)

		_, err := svc.Publish(context.Background(), testActor(uuid.New(), "trek:publish"), trek.ID)
		require.Error(t, err)

		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.ErrStructureMismatch.Code, derr.Code)
	})
}

func TestTrekService_ReorderChildren(t *testing.T) {
	structureID := uuid.New()
	parent := testTrek(t, structureID)
	child := testTrek(t, structureID)
	actor := testActor(structureID)

	t.Run("rejects self as child", func(t *testing.T) {
		trekRepo := new(MockTrekRepository)
		trekRepo.On("FindByID", mock.Anything, parent.ID).Return(parent, nil)

		svc := newTrekService(trekRepo, nil)

		err := svc.ReorderChildren(context.Background(), actor, parent.ID, []uuid.UUID{parent.ID})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "own child")
	})

	t.Run("rejects duplicate children", func(t *testing.T) {
		trekRepo := new(MockTrekRepository)
		trekRepo.On("FindByID", mock.Anything, parent.ID).Return(parent, nil)
		trekRepo.On("FindByID", mock.Anything, child.ID).Return(child, nil)

		svc := newTrekService(trekRepo, nil)

		err := svc.ReorderChildren(context.Background(), actor, parent.ID, []uuid.UUID{child.ID, child.ID})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("rejects cyclic parentage", func(t *testing.T) {
		// child is already an ancestor of parent
		trekRepo := new(MockTrekRepository)
		trekRepo.On("FindByID", mock.Anything, parent.ID).Return(parent, nil)
		trekRepo.On("FindByID", mock.Anything, child.ID).Return(child, nil)
		trekRepo.On("FindParents", mock.Anything, parent.ID).Return([]trekking.OrderedTrekChild{
			{ParentID: child.ID, ChildID: parent.ID},
		}, nil)

		svc := newTrekService(trekRepo, nil)

		err := svc.ReorderChildren(context.Background(), actor, parent.ID, []uuid.UUID{child.ID})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cycle")
	})

	t.Run("accepts a valid ordering", func(t *testing.T) {
		trekRepo := new(MockTrekRepository)
		trekRepo.On("FindByID", mock.Anything, parent.ID).Return(parent, nil)
		trekRepo.On("FindByID", mock.Anything, child.ID).Return(child, nil)
		trekRepo.On("FindParents", mock.Anything, parent.ID).Return([]trekking.OrderedTrekChild{}, nil)
		trekRepo.On("ReplaceChildren", mock.Anything, parent.ID, []uuid.UUID{child.ID}).Return(nil)

		svc := newTrekService(trekRepo, nil)

		require.NoError(t, svc.ReorderChildren(context.Background(), actor, parent.ID, []uuid.UUID{child.ID}))
		trekRepo.AssertExpectations(t)
	})
}

func TestTrekService_Relationships(t *testing.T) {
	structureID := uuid.New()
	actor := testActor(structureID)
	trekA := testTrek(t, structureID)
	trekB := testTrek(t, structureID)

	t.Run("creates a symmetric relationship", func(t *testing.T) {
		trekRepo := new(MockTrekRepository)
		trekRepo.On("FindByID", mock.Anything, trekA.ID).Return(trekA, nil)
		trekRepo.On("FindByID", mock.Anything, trekB.ID).Return(trekB, nil)
		trekRepo.On("SaveRelationship", mock.Anything, mock.AnythingOfType("*trekking.TrekRelationship")).Return(nil)

		svc := newTrekService(trekRepo, nil)

		rel, err := svc.Relate(context.Background(), actor, RelateTreksInput{
			TrekAID:       trekA.ID,
			TrekBID:       trekB.ID,
			HasCommonEdge: true,
		})
		require.NoError(t, err)
		assert.True(t, rel.HasCommonEdge)
		// Pair is normalized regardless of argument order
		assert.True(t, rel.TrekAID.String() < rel.TrekBID.String())
	})

	t.Run("rejects relating a trek to itself", func(t *testing.T) {
		trekRepo := new(MockTrekRepository)
		trekRepo.On("FindByID", mock.Anything, trekA.ID).Return(trekA, nil)

		svc := newTrekService(trekRepo, nil)

		_, err := svc.Relate(context.Background(), actor, RelateTreksInput{
			TrekAID: trekA.ID,
			TrekBID: trekA.ID,
		})
		require.Error(t, err)
	})
}

func TestTrekService_PublishedLayer(t *testing.T) {
	structureID := uuid.New()
	trek := testTrek(t, structureID)
	require.NoError(t, trek.Publish())

	trekRepo := new(MockTrekRepository)
	trekRepo.On("FindPublished", mock.Anything).Return([]trekking.Trek{*trek}, nil).Once()

	svc := newTrekService(trekRepo, nil)

	payload, err := svc.PublishedLayer(context.Background())
	require.NoError(t, err)

	var fc FeatureCollection
	require.NoError(t, json.Unmarshal(payload, &fc))
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Tour du lac", fc.Features[0].Properties["name"])

	// Second call is served from the cache, the repo is hit once
	_, err = svc.PublishedLayer(context.Background())
	require.NoError(t, err)
	trekRepo.AssertExpectations(t)
}

func TestExportTrekKML(t *testing.T) {
	structureID := uuid.New()
	trek := testTrek(t, structureID)
	trek.DescriptionTeaser = "Une boucle familiale"
	require.NoError(t, trek.SetParkingLocation(shared.NewPoint(700010, 6600010, shared.SRIDLambert93)))

	out, err := ExportTrekKML(trek)
	require.NoError(t, err)

	kml := string(out)
	assert.True(t, strings.HasPrefix(kml, xmlHeaderPrefix))
	assert.Contains(t, kml, `xmlns="http://www.opengis.net/kml/2.2"`)
	assert.Contains(t, kml, "<name>Tour du lac</name>")
	assert.Contains(t, kml, "<LineString>")
	assert.Contains(t, kml, "<name>Parking</name>")
}

const xmlHeaderPrefix = "<?xml"

func TestEncodeGeometry(t *testing.T) {
	t.Run("point", func(t *testing.T) {
		raw, err := EncodeGeometry(shared.NewPoint(6.5, 45.2, shared.SRIDWGS84))
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"Point","coordinates":[6.5,45.2]}`, string(raw))
	})

	t.Run("linestring", func(t *testing.T) {
		geom, err := shared.NewLineString([]shared.Coordinate{{X: 1, Y: 2}, {X: 3, Y: 4}}, shared.SRIDWGS84)
		require.NoError(t, err)
		raw, err := EncodeGeometry(geom)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"LineString","coordinates":[[1,2],[3,4]]}`, string(raw))
	})

	t.Run("projected geometry comes out in wgs84", func(t *testing.T) {
		raw, err := EncodeGeometry(shared.NewPoint(700000, 6600000, shared.SRIDLambert93))
		require.NoError(t, err)

		var geo struct {
			Coordinates []float64 `json:"coordinates"`
		}
		require.NoError(t, json.Unmarshal(raw, &geo))
		require.Len(t, geo.Coordinates, 2)
		assert.InDelta(t, 3.0, geo.Coordinates[0], 0.001)
		assert.InDelta(t, 46.5, geo.Coordinates[1], 0.001)
	})

	t.Run("zero geometry encodes null", func(t *testing.T) {
		raw, err := EncodeGeometry(shared.Geometry{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(raw))
	})
}
