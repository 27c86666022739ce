package land

import (
	"context"
	"testing"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/land"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testActor(structureID uuid.UUID, perms ...string) authz.Actor {
	return authz.Actor{
		UserID:      uuid.New(),
		StructureID: structureID,
		Permissions: perms,
	}
}

func testLine(t *testing.T) shared.Geometry {
	t.Helper()
	geom, err := shared.NewLineString([]shared.Coordinate{{X: 700000, Y: 6600000}, {X: 700500, Y: 6600300}}, shared.SRIDLambert93)
	require.NoError(t, err)
	return geom
}

func newEdgeService(repo *MockRepository, phys *MockPhysicalTypeRepository, lt *MockLandTypeRepository, org *MockOrganismRepository) *EdgeService {
	return NewEdgeService(repo, phys, lt, org, zap.NewNop())
}

func TestEdgeService_Create(t *testing.T) {
	structureID := uuid.New()
	actor := testActor(structureID, "land:create")

	t.Run("creates a land edge", func(t *testing.T) {
		repo := new(MockRepository)
		ltRepo := new(MockLandTypeRepository)
		svc := newEdgeService(repo, new(MockPhysicalTypeRepository), ltRepo, new(MockOrganismRepository))

		typeID := uuid.New()
		ltRepo.On("FindByID", mock.Anything, typeID).Return(&land.LandType{}, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*land.Edge")).Return(nil)

		edge, err := svc.Create(context.Background(), actor, CreateInput{
			Kind:        land.EdgeLand,
			Geometry:    testLine(t),
			ReferenceID: typeID,
		})
		require.NoError(t, err)
		assert.Equal(t, structureID, edge.StructureID)
		require.NotNil(t, edge.LandTypeID)
		assert.Equal(t, typeID, *edge.LandTypeID)
	})

	t.Run("competence edge resolves its organism", func(t *testing.T) {
		repo := new(MockRepository)
		orgRepo := new(MockOrganismRepository)
		svc := newEdgeService(repo, new(MockPhysicalTypeRepository), new(MockLandTypeRepository), orgRepo)

		orgID := uuid.New()
		orgRepo.On("FindByID", mock.Anything, orgID).Return(&common.Organism{}, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*land.Edge")).Return(nil)

		edge, err := svc.Create(context.Background(), actor, CreateInput{
			Kind:        land.EdgeCompetence,
			Geometry:    testLine(t),
			ReferenceID: orgID,
		})
		require.NoError(t, err)
		require.NotNil(t, edge.OrganismID)
		assert.Equal(t, orgID, *edge.OrganismID)
	})

	t.Run("rejects unknown organism", func(t *testing.T) {
		orgRepo := new(MockOrganismRepository)
		svc := newEdgeService(new(MockRepository), new(MockPhysicalTypeRepository), new(MockLandTypeRepository), orgRepo)

		orgID := uuid.New()
		orgRepo.On("FindByID", mock.Anything, orgID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(context.Background(), actor, CreateInput{
			Kind:        land.EdgeWorkManagement,
			Geometry:    testLine(t),
			ReferenceID: orgID,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "organism")
	})

	t.Run("rejects unknown physical type", func(t *testing.T) {
		physRepo := new(MockPhysicalTypeRepository)
		svc := newEdgeService(new(MockRepository), physRepo, new(MockLandTypeRepository), new(MockOrganismRepository))

		typeID := uuid.New()
		physRepo.On("FindByID", mock.Anything, typeID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(context.Background(), actor, CreateInput{
			Kind:        land.EdgePhysical,
			Geometry:    testLine(t),
			ReferenceID: typeID,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "physical type")
	})
}

func TestEdgeService_Update(t *testing.T) {
	structureID := uuid.New()
	actor := testActor(structureID, "land:update")

	t.Run("updates within own structure", func(t *testing.T) {
		repo := new(MockRepository)
		ltRepo := new(MockLandTypeRepository)
		svc := newEdgeService(repo, new(MockPhysicalTypeRepository), ltRepo, new(MockOrganismRepository))

		edge, err := land.NewEdge(structureID, land.EdgeLand, testLine(t), uuid.New())
		require.NoError(t, err)
		newType := uuid.New()

		repo.On("FindByID", mock.Anything, edge.ID).Return(edge, nil)
		ltRepo.On("FindByID", mock.Anything, newType).Return(&land.LandType{}, nil)
		repo.On("Save", mock.Anything, edge).Return(nil)

		updated, err := svc.Update(context.Background(), actor, edge.ID, UpdateInput{
			ReferenceID: newType,
			Comment:     "renegotiated easement",
		})
		require.NoError(t, err)
		assert.Equal(t, newType, updated.ReferenceID())
		assert.Equal(t, "renegotiated easement", updated.Comment)
	})

	t.Run("cross-structure edit refused without bypass", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newEdgeService(repo, new(MockPhysicalTypeRepository), new(MockLandTypeRepository), new(MockOrganismRepository))

		edge, err := land.NewEdge(uuid.New(), land.EdgeLand, testLine(t), uuid.New())
		require.NoError(t, err)
		repo.On("FindByID", mock.Anything, edge.ID).Return(edge, nil)

		_, err = svc.Update(context.Background(), actor, edge.ID, UpdateInput{ReferenceID: *edge.LandTypeID})
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrStructureMismatch)
	})

	t.Run("bypass permission allows cross-structure edit", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newEdgeService(repo, new(MockPhysicalTypeRepository), new(MockLandTypeRepository), new(MockOrganismRepository))

		edge, err := land.NewEdge(uuid.New(), land.EdgeLand, testLine(t), uuid.New())
		require.NoError(t, err)
		repo.On("FindByID", mock.Anything, edge.ID).Return(edge, nil)
		repo.On("Save", mock.Anything, edge).Return(nil)

		bypasser := testActor(structureID, "land:update", "land:bypass_structure")
		_, err = svc.Update(context.Background(), bypasser, edge.ID, UpdateInput{ReferenceID: *edge.LandTypeID})
		require.NoError(t, err)
	})
}

func TestEdgeService_ListByKind(t *testing.T) {
	repo := new(MockRepository)
	svc := newEdgeService(repo, new(MockPhysicalTypeRepository), new(MockLandTypeRepository), new(MockOrganismRepository))

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := svc.ListByKind(context.Background(), land.EdgeKind("NOPE"), shared.DefaultFilter())
		require.Error(t, err)
	})

	t.Run("passes kind through", func(t *testing.T) {
		filter := shared.DefaultFilter()
		repo.On("FindByKind", mock.Anything, land.EdgeSignageManagement, filter).Return([]land.Edge{}, nil)
		edges, err := svc.ListByKind(context.Background(), land.EdgeSignageManagement, filter)
		require.NoError(t, err)
		assert.Empty(t, edges)
	})
}

func TestTypeService_DeleteInUse(t *testing.T) {
	t.Run("land type still referenced", func(t *testing.T) {
		repo := new(MockRepository)
		ltRepo := new(MockLandTypeRepository)
		svc := NewTypeService(new(MockPhysicalTypeRepository), ltRepo, repo, zap.NewNop())

		id := uuid.New()
		ltRepo.On("FindByID", mock.Anything, id).Return(&land.LandType{}, nil)
		repo.On("CountByLandType", mock.Anything, id).Return(int64(3), nil)

		err := svc.DeleteLandType(context.Background(), id)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "still assigned")
	})

	t.Run("unreferenced physical type deleted", func(t *testing.T) {
		repo := new(MockRepository)
		physRepo := new(MockPhysicalTypeRepository)
		svc := NewTypeService(physRepo, new(MockLandTypeRepository), repo, zap.NewNop())

		id := uuid.New()
		physRepo.On("FindByID", mock.Anything, id).Return(&land.PhysicalType{}, nil)
		repo.On("CountByPhysicalType", mock.Anything, id).Return(int64(0), nil)
		physRepo.On("Delete", mock.Anything, id).Return(nil)

		require.NoError(t, svc.DeletePhysicalType(context.Background(), id))
		physRepo.AssertCalled(t, "Delete", mock.Anything, id)
	})
}
