package signage

import (
	"context"
	"testing"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/signage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBladeService_Create(t *testing.T) {
	structureID := uuid.New()
	actor := testActor(structureID, "blade:create")

	t.Run("mounts a blade with lines", func(t *testing.T) {
		bladeRepo := new(MockBladeRepository)
		signageRepo := new(MockSignageRepository)
		svc := NewBladeService(bladeRepo, signageRepo, zap.NewNop())

		sign := testSignage(t, structureID)
		signageRepo.On("FindByIDWithBlades", mock.Anything, sign.ID).Return(sign, nil)
		bladeRepo.On("ExistsByNumber", mock.Anything, sign.ID, "A").Return(false, nil)
		bladeRepo.On("Save", mock.Anything, mock.AnythingOfType("*signage.Blade")).Return(nil)

		distance := decimal.NewFromFloat(4.5)
		blade, err := svc.Create(context.Background(), actor, sign.ID, CreateBladeInput{
			Number: "A",
			Lines: []LineInput{
				{Number: 1, Text: "Lac Blanc", Distance: &distance},
				{Number: 2, Text: "Refuge du Plan"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "A", blade.Number)
		assert.Equal(t, sign.StructureID, blade.StructureID)
		require.Len(t, blade.Lines, 2)
		assert.Equal(t, blade.ID, blade.Lines[0].BladeID)
	})

	t.Run("defaults the number to the next free slot", func(t *testing.T) {
		bladeRepo := new(MockBladeRepository)
		signageRepo := new(MockSignageRepository)
		svc := NewBladeService(bladeRepo, signageRepo, zap.NewNop())

		sign := testSignage(t, structureID)
		sign.Blades = []signage.Blade{{Number: "1"}, {Number: "2"}}
		signageRepo.On("FindByIDWithBlades", mock.Anything, sign.ID).Return(sign, nil)
		bladeRepo.On("ExistsByNumber", mock.Anything, sign.ID, "3").Return(false, nil)
		bladeRepo.On("Save", mock.Anything, mock.AnythingOfType("*signage.Blade")).Return(nil)

		blade, err := svc.Create(context.Background(), actor, sign.ID, CreateBladeInput{})
		require.NoError(t, err)
		assert.Equal(t, "3", blade.Number)
	})

	t.Run("rejects a duplicate number", func(t *testing.T) {
		bladeRepo := new(MockBladeRepository)
		signageRepo := new(MockSignageRepository)
		svc := NewBladeService(bladeRepo, signageRepo, zap.NewNop())

		sign := testSignage(t, structureID)
		signageRepo.On("FindByIDWithBlades", mock.Anything, sign.ID).Return(sign, nil)
		bladeRepo.On("ExistsByNumber", mock.Anything, sign.ID, "1").Return(true, nil)

		_, err := svc.Create(context.Background(), actor, sign.ID, CreateBladeInput{Number: "1"})
		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, shared.ErrAlreadyExists.Code, domainErr.Code)
		bladeRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("structure check runs against the signage", func(t *testing.T) {
		bladeRepo := new(MockBladeRepository)
		signageRepo := new(MockSignageRepository)
		svc := NewBladeService(bladeRepo, signageRepo, zap.NewNop())

		sign := testSignage(t, uuid.New())
		signageRepo.On("FindByIDWithBlades", mock.Anything, sign.ID).Return(sign, nil)

		_, err := svc.Create(context.Background(), actor, sign.ID, CreateBladeInput{Number: "1"})
		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, shared.ErrStructureMismatch.Code, domainErr.Code)
	})
}

func TestBladeService_ReplaceLines(t *testing.T) {
	structureID := uuid.New()
	actor := testActor(structureID, "blade:update")

	newBlade := func(t *testing.T) *signage.Blade {
		t.Helper()
		sign := testSignage(t, structureID)
		blade, err := signage.NewBlade(sign, "1")
		require.NoError(t, err)
		return blade
	}

	t.Run("swaps the full line set", func(t *testing.T) {
		bladeRepo := new(MockBladeRepository)
		svc := NewBladeService(bladeRepo, new(MockSignageRepository), zap.NewNop())

		blade := newBlade(t)
		old, err := signage.NewLine(1, "Old destination", nil, nil)
		require.NoError(t, err)
		require.NoError(t, blade.ReplaceLines([]signage.Line{old}))

		bladeRepo.On("FindByIDWithLines", mock.Anything, blade.ID).Return(blade, nil)
		bladeRepo.On("ReplaceLines", mock.Anything, blade).Return(nil)

		updated, err := svc.ReplaceLines(context.Background(), actor, blade.ID, []LineInput{
			{Number: 1, Text: "Lac Blanc"},
			{Number: 2, Text: "Col des Montets", Pictogram: "media/picto/gr.png"},
		})
		require.NoError(t, err)
		require.Len(t, updated.Lines, 2)
		assert.Equal(t, "Lac Blanc", updated.Lines[0].Text)
		assert.Equal(t, "media/picto/gr.png", updated.Lines[1].Pictogram)
	})

	t.Run("rejects duplicate line numbers", func(t *testing.T) {
		bladeRepo := new(MockBladeRepository)
		svc := NewBladeService(bladeRepo, new(MockSignageRepository), zap.NewNop())

		blade := newBlade(t)
		bladeRepo.On("FindByIDWithLines", mock.Anything, blade.ID).Return(blade, nil)

		_, err := svc.ReplaceLines(context.Background(), actor, blade.ID, []LineInput{
			{Number: 1, Text: "Lac Blanc"},
			{Number: 1, Text: "Col des Montets"},
		})
		require.Error(t, err)
		bladeRepo.AssertNotCalled(t, "ReplaceLines", mock.Anything, mock.Anything)
	})

	t.Run("rejects negative distances", func(t *testing.T) {
		bladeRepo := new(MockBladeRepository)
		svc := NewBladeService(bladeRepo, new(MockSignageRepository), zap.NewNop())

		blade := newBlade(t)
		bladeRepo.On("FindByIDWithLines", mock.Anything, blade.ID).Return(blade, nil)

		negative := decimal.NewFromFloat(-1)
		_, err := svc.ReplaceLines(context.Background(), actor, blade.ID, []LineInput{
			{Number: 1, Text: "Lac Blanc", Distance: &negative},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "distance must not be negative")
	})
}

func TestBladeService_Update(t *testing.T) {
	structureID := uuid.New()
	actor := testActor(structureID, "blade:update")

	t.Run("renumber checks uniqueness on the signage", func(t *testing.T) {
		bladeRepo := new(MockBladeRepository)
		svc := NewBladeService(bladeRepo, new(MockSignageRepository), zap.NewNop())

		sign := testSignage(t, structureID)
		blade, err := signage.NewBlade(sign, "1")
		require.NoError(t, err)

		bladeRepo.On("FindByID", mock.Anything, blade.ID).Return(blade, nil)
		bladeRepo.On("ExistsByNumber", mock.Anything, sign.ID, "2").Return(true, nil)

		_, err = svc.Update(context.Background(), actor, blade.ID, UpdateBladeInput{Number: "2"})
		require.Error(t, err)
		domainErr, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, shared.ErrAlreadyExists.Code, domainErr.Code)
	})
}
