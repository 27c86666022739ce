package infrastructure

import (
	"context"
	"testing"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/infrastructure"
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

func testInfrastructure(t *testing.T, structureID uuid.UUID) *infrastructure.Infrastructure {
	t.Helper()
	infra, err := infrastructure.NewInfrastructure(
		structureID, "Passerelle du Goutal", uuid.New(),
		shared.NewPoint(930000, 6500000, shared.SRIDLambert93))
	require.NoError(t, err)
	return infra
}

func TestService_Create(t *testing.T) {
	structureID := uuid.New()
	actor := testActor(structureID, "infrastructure:create")

	t.Run("creates a built work", func(t *testing.T) {
		repo := new(MockRepository)
		typeRepo := new(MockTypeRepository)
		svc := NewService(repo, typeRepo, zap.NewNop())

		typeID := uuid.New()
		typeRepo.On("FindByID", mock.Anything, typeID).
			Return(&infrastructure.InfrastructureType{}, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*infrastructure.Infrastructure")).Return(nil)

		infra, err := svc.Create(context.Background(), actor, CreateInput{
			Name:     "Passerelle du Goutal",
			TypeID:   typeID,
			Geometry: shared.NewPoint(930000, 6500000, shared.SRIDLambert93),
		})
		require.NoError(t, err)
		assert.Equal(t, structureID, infra.StructureID)
		assert.Equal(t, typeID, infra.TypeID)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		repo := new(MockRepository)
		typeRepo := new(MockTypeRepository)
		svc := NewService(repo, typeRepo, zap.NewNop())

		typeID := uuid.New()
		typeRepo.On("FindByID", mock.Anything, typeID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(context.Background(), actor, CreateInput{
			Name:     "Orphan",
			TypeID:   typeID,
			Geometry: shared.NewPoint(0, 0, shared.SRIDLambert93),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "infrastructure type does not exist")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestService_ListByKind(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockTypeRepository), zap.NewNop())

	t.Run("rejects an unknown kind", func(t *testing.T) {
		_, err := svc.ListByKind(context.Background(), infrastructure.Kind("BRIDGE"), shared.DefaultFilter())
		require.Error(t, err)
	})

	t.Run("lists one family", func(t *testing.T) {
		filter := shared.DefaultFilter()
		repo.On("FindByKind", mock.Anything, infrastructure.KindBuilding, filter).
			Return([]infrastructure.Infrastructure{*testInfrastructure(t, uuid.New())}, nil)

		items, err := svc.ListByKind(context.Background(), infrastructure.KindBuilding, filter)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

func TestService_Update(t *testing.T) {
	structureID := uuid.New()

	t.Run("rejects edits from another structure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockTypeRepository), zap.NewNop())

		infra := testInfrastructure(t, structureID)
		repo.On("FindByID", mock.Anything, infra.ID).Return(infra, nil)

		outsider := testActor(uuid.New(), "infrastructure:update")
		_, err := svc.Update(context.Background(), outsider, infra.ID, UpdateInput{
			Name:   "Renamed",
			TypeID: infra.TypeID,
		})
		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, shared.ErrStructureMismatch.Code, domainErr.Code)
	})

	t.Run("updates conditions and year", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockTypeRepository), zap.NewNop())

		infra := testInfrastructure(t, structureID)
		repo.On("FindByID", mock.Anything, infra.ID).Return(infra, nil)
		repo.On("Save", mock.Anything, infra).Return(nil)

		conditionID := uuid.New()
		year := 2005
		actor := testActor(structureID, "infrastructure:update")
		updated, err := svc.Update(context.Background(), actor, infra.ID, UpdateInput{
			Name:             "Passerelle du Goutal",
			TypeID:           infra.TypeID,
			ConditionID:      &conditionID,
			ImplantationYear: &year,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.ConditionID)
		assert.Equal(t, conditionID, *updated.ConditionID)
		require.NotNil(t, updated.ImplantationYear)
		assert.Equal(t, 2005, *updated.ImplantationYear)
	})

	t.Run("rejects implausible years", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockTypeRepository), zap.NewNop())

		infra := testInfrastructure(t, structureID)
		repo.On("FindByID", mock.Anything, infra.ID).Return(infra, nil)

		year := 1492
		actor := testActor(structureID, "infrastructure:update")
		_, err := svc.Update(context.Background(), actor, infra.ID, UpdateInput{
			Name:             "Passerelle du Goutal",
			TypeID:           infra.TypeID,
			ImplantationYear: &year,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "implausible implantation year")
	})
}

func TestService_Publish(t *testing.T) {
	structureID := uuid.New()

	t.Run("requires the publish permission", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockTypeRepository), zap.NewNop())

		actor := testActor(structureID, "infrastructure:update")
		_, err := svc.Publish(context.Background(), actor, uuid.New())
		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, shared.ErrForbidden.Code, domainErr.Code)
	})

	t.Run("publishes once", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockTypeRepository), zap.NewNop())

		infra := testInfrastructure(t, structureID)
		repo.On("FindByID", mock.Anything, infra.ID).Return(infra, nil)
		repo.On("Save", mock.Anything, infra).Return(nil)

		actor := testActor(structureID, "infrastructure:publish")
		published, err := svc.Publish(context.Background(), actor, infra.ID)
		require.NoError(t, err)
		assert.True(t, published.Published)

		_, err = svc.Publish(context.Background(), actor, infra.ID)
		require.Error(t, err)
	})
}

func TestTypeService(t *testing.T) {
	t.Run("delete refuses while referenced", func(t *testing.T) {
		repo := new(MockRepository)
		typeRepo := new(MockTypeRepository)
		svc := NewTypeService(typeRepo, new(MockDifficultyLevelRepository), repo, zap.NewNop())

		typ, err := infrastructure.NewInfrastructureType("Bridge", infrastructure.KindFacility, nil)
		require.NoError(t, err)
		typeRepo.On("FindByID", mock.Anything, typ.ID).Return(typ, nil)
		repo.On("CountByType", mock.Anything, typ.ID).Return(int64(4), nil)

		err = svc.DeleteType(context.Background(), typ.ID)
		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, shared.ErrReferenceInUse.Code, domainErr.Code)
		typeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("create rejects an unknown kind", func(t *testing.T) {
		svc := NewTypeService(new(MockTypeRepository), new(MockDifficultyLevelRepository), new(MockRepository), zap.NewNop())

		_, err := svc.CreateType(context.Background(), "Bridge", infrastructure.Kind("SPAN"), nil)
		require.Error(t, err)
	})
}
