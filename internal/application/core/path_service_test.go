package core

import (
	"context"
	"testing"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/core"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPathService(pathRepo *MockPathRepository, stakeRepo *MockStakeRepository) *PathService {
	return NewPathService(pathRepo, stakeRepo, new(MockNetworkRepository), new(MockUsageRepository), nil, nil, zap.NewNop())
}

func testActor(structureID uuid.UUID, permissions ...string) authz.Actor {
	return authz.Actor{
		UserID:      uuid.New(),
		StructureID: structureID,
		Permissions: permissions,
	}
}

func TestPathService_Create(t *testing.T) {
	structureID := uuid.New()
	actor := testActor(structureID, "path:create")

	t.Run("creates path with computed altimetry", func(t *testing.T) {
		pathRepo := new(MockPathRepository)
		pathRepo.On("Save", mock.Anything, mock.AnythingOfType("*core.Path")).Return(nil)

		svc := newPathService(pathRepo, new(MockStakeRepository))

		geom := testLine(t,
			shared.Coordinate{X: 700000, Y: 6600000},
			shared.Coordinate{X: 700500, Y: 6600000},
		)
		path, err := svc.Create(context.Background(), actor, CreatePathInput{
			Name:     "Sentier des crêtes",
			Geometry: geom,
		})
		require.NoError(t, err)
		assert.Equal(t, structureID, path.StructureID)
		assert.InDelta(t, 500, path.Length, 0.01)
		assert.False(t, path.Geom3D.IsZero())
		pathRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown stake", func(t *testing.T) {
		pathRepo := new(MockPathRepository)
		stakeRepo := new(MockStakeRepository)
		stakeID := uuid.New()
		stakeRepo.On("FindByID", mock.Anything, stakeID).Return(nil, shared.ErrNotFound)

		svc := newPathService(pathRepo, stakeRepo)

		geom := testLine(t,
			shared.Coordinate{X: 700000, Y: 6600000},
			shared.Coordinate{X: 700500, Y: 6600000},
		)
		_, err := svc.Create(context.Background(), actor, CreatePathInput{
			Name:     "Sentier",
			Geometry: geom,
			StakeID:  &stakeID,
		})
		require.Error(t, err)
		pathRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects point geometry", func(t *testing.T) {
		svc := newPathService(new(MockPathRepository), new(MockStakeRepository))

		_, err := svc.Create(context.Background(), actor, CreatePathInput{
			Name:     "Sentier",
			Geometry: shared.NewPoint(700000, 6600000, shared.SRIDLambert93),
		})
		require.Error(t, err)

		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.ErrInvalidGeometry.Code, derr.Code)
	})
}

func TestPathService_Update(t *testing.T) {
	structureID := uuid.New()
	geom := func(t *testing.T) shared.Geometry {
		return testLine(t,
			shared.Coordinate{X: 700000, Y: 6600000},
			shared.Coordinate{X: 700500, Y: 6600000},
		)
	}

	t.Run("same structure can edit", func(t *testing.T) {
		path, err := core.NewPath(structureID, "Sentier", geom(t))
		require.NoError(t, err)

		pathRepo := new(MockPathRepository)
		pathRepo.On("FindByID", mock.Anything, path.ID).Return(path, nil)
		pathRepo.On("Save", mock.Anything, path).Return(nil)

		svc := newPathService(pathRepo, new(MockStakeRepository))

		updated, err := svc.Update(context.Background(), testActor(structureID), path.ID, UpdatePathInput{
			Name:      "Sentier renommé",
			Departure: "Col de la Croix",
		})
		require.NoError(t, err)
		assert.Equal(t, "Sentier renommé", updated.Name)
		assert.Equal(t, "Col de la Croix", updated.Departure)
	})

	t.Run("other structure is rejected", func(t *testing.T) {
		path, err := core.NewPath(structureID, "Sentier", geom(t))
		require.NoError(t, err)

		pathRepo := new(MockPathRepository)
		pathRepo.On("FindByID", mock.Anything, path.ID).Return(path, nil)

		svc := newPathService(pathRepo, new(MockStakeRepository))

		_, err = svc.Update(context.Background(), testActor(uuid.New()), path.ID, UpdatePathInput{Name: "X"})
		require.Error(t, err)

		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.ErrStructureMismatch.Code, derr.Code)
		pathRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("bypass permission allows cross-structure edit", func(t *testing.T) {
		path, err := core.NewPath(structureID, "Sentier", geom(t))
		require.NoError(t, err)

		pathRepo := new(MockPathRepository)
		pathRepo.On("FindByID", mock.Anything, path.ID).Return(path, nil)
		pathRepo.On("Save", mock.Anything, path).Return(nil)

		svc := newPathService(pathRepo, new(MockStakeRepository))

		_, err = svc.Update(context.Background(), testActor(uuid.New(), "path:bypass_structure"), path.ID, UpdatePathInput{Name: "X"})
		require.NoError(t, err)
	})

	t.Run("geometry change recomputes altimetry", func(t *testing.T) {
		path, err := core.NewPath(structureID, "Sentier", geom(t))
		require.NoError(t, err)

		pathRepo := new(MockPathRepository)
		pathRepo.On("FindByID", mock.Anything, path.ID).Return(path, nil)
		pathRepo.On("Save", mock.Anything, path).Return(nil)

		svc := newPathService(pathRepo, new(MockStakeRepository))

		longer := testLine(t,
			shared.Coordinate{X: 700000, Y: 6600000},
			shared.Coordinate{X: 701000, Y: 6600000},
		)
		updated, err := svc.Update(context.Background(), testActor(structureID), path.ID, UpdatePathInput{
			Name:     "Sentier",
			Geometry: &longer,
		})
		require.NoError(t, err)
		assert.InDelta(t, 1000, updated.Length, 0.01)
	})
}

func TestPathService_ListNear(t *testing.T) {
	svc := newPathService(new(MockPathRepository), new(MockStakeRepository))

	t.Run("rejects missing geometry", func(t *testing.T) {
		_, err := svc.ListNear(context.Background(), shared.Geometry{}, 100)
		require.Error(t, err)
	})

	t.Run("rejects non-positive distance", func(t *testing.T) {
		_, err := svc.ListNear(context.Background(), shared.NewPoint(700000, 6600000, shared.SRIDLambert93), 0)
		require.Error(t, err)
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		pathRepo := new(MockPathRepository)
		point := shared.NewPoint(700000, 6600000, shared.SRIDLambert93)
		pathRepo.On("FindNear", mock.Anything, point, 250.0).Return([]core.Path{}, nil)

		svc := newPathService(pathRepo, new(MockStakeRepository))

		_, err := svc.ListNear(context.Background(), point, 250)
		require.NoError(t, err)
		pathRepo.AssertExpectations(t)
	})
}

func TestPathService_ElevationProfile(t *testing.T) {
	structureID := uuid.New()
	path, err := core.NewPath(structureID, "Sentier", testLine(t,
		shared.Coordinate{X: 700000, Y: 6600000},
		shared.Coordinate{X: 700500, Y: 6600000},
	))
	require.NoError(t, err)

	pathRepo := new(MockPathRepository)
	pathRepo.On("FindByID", mock.Anything, path.ID).Return(path, nil)

	svc := newPathService(pathRepo, new(MockStakeRepository))

	points, err := svc.ElevationProfile(context.Background(), path.ID)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 0.0, points[0].Distance)
	assert.InDelta(t, 500, points[1].Distance, 0.01)

	svg, err := svc.ElevationProfileSVG(context.Background(), path.ID)
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")
}

func TestPicklistService_Stakes(t *testing.T) {
	t.Run("duplicate rank rejected", func(t *testing.T) {
		stakeRepo := new(MockStakeRepository)
		stakeRepo.On("ExistsByRank", mock.Anything, 2).Return(true, nil)

		svc := NewPicklistService(stakeRepo, new(MockNetworkRepository), new(MockUsageRepository), new(MockTrailCategoryRepository), zap.NewNop())

		_, err := svc.CreateStake(context.Background(), "Important", 2)
		require.Error(t, err)

		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.ErrAlreadyExists.Code, derr.Code)
	})

	t.Run("stake in use cannot be deleted", func(t *testing.T) {
		stakeRepo := new(MockStakeRepository)
		id := uuid.New()
		stakeRepo.On("InUse", mock.Anything, id).Return(true, nil)

		svc := NewPicklistService(stakeRepo, new(MockNetworkRepository), new(MockUsageRepository), new(MockTrailCategoryRepository), zap.NewNop())

		err := svc.DeleteStake(context.Background(), id)
		require.Error(t, err)

		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.ErrReferenceInUse.Code, derr.Code)
	})

	t.Run("unused stake deleted", func(t *testing.T) {
		stakeRepo := new(MockStakeRepository)
		id := uuid.New()
		stakeRepo.On("InUse", mock.Anything, id).Return(false, nil)
		stakeRepo.On("Delete", mock.Anything, id).Return(nil)

		svc := NewPicklistService(stakeRepo, new(MockNetworkRepository), new(MockUsageRepository), new(MockTrailCategoryRepository), zap.NewNop())

		require.NoError(t, svc.DeleteStake(context.Background(), id))
		stakeRepo.AssertExpectations(t)
	})
}
