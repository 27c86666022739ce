package signage

import (
	"context"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/signage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSignageRepository struct {
	mock.Mock
}

func (m *MockSignageRepository) FindByID(ctx context.Context, id uuid.UUID) (*signage.Signage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]signage.Signage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) Save(ctx context.Context, entity *signage.Signage) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockSignageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSignageRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSignageRepository) FindByIDForStructure(ctx context.Context, structureID, id uuid.UUID) (*signage.Signage, error) {
	args := m.Called(ctx, structureID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]signage.Signage, error) {
	args := m.Called(ctx, structureID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) FindByIDWithBlades(ctx context.Context, id uuid.UUID) (*signage.Signage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) FindByCode(ctx context.Context, code string) (*signage.Signage, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]signage.Signage, error) {
	args := m.Called(ctx, geom, distance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) DeleteWithBlades(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBladeRepository struct {
	mock.Mock
}

func (m *MockBladeRepository) FindByID(ctx context.Context, id uuid.UUID) (*signage.Blade, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signage.Blade), args.Error(1)
}

func (m *MockBladeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]signage.Blade, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]signage.Blade), args.Error(1)
}

func (m *MockBladeRepository) Save(ctx context.Context, entity *signage.Blade) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockBladeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBladeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBladeRepository) FindBySignage(ctx context.Context, signageID uuid.UUID) ([]signage.Blade, error) {
	args := m.Called(ctx, signageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]signage.Blade), args.Error(1)
}

func (m *MockBladeRepository) FindByIDWithLines(ctx context.Context, id uuid.UUID) (*signage.Blade, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signage.Blade), args.Error(1)
}

func (m *MockBladeRepository) ExistsByNumber(ctx context.Context, signageID uuid.UUID, number string) (bool, error) {
	args := m.Called(ctx, signageID, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockBladeRepository) ReplaceLines(ctx context.Context, blade *signage.Blade) error {
	args := m.Called(ctx, blade)
	return args.Error(0)
}

type MockSignageTypeRepository struct {
	mock.Mock
}

func (m *MockSignageTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*signage.SignageType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signage.SignageType), args.Error(1)
}

func (m *MockSignageTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]signage.SignageType, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]signage.SignageType), args.Error(1)
}

func (m *MockSignageTypeRepository) Save(ctx context.Context, entity *signage.SignageType) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockSignageTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSignageTypeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSignageTypeRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *MockObjectStorage) Download(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockObjectStorage) ObjectExists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockObjectStorage) GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, key, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
