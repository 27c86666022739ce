package jobs

import (
	"context"
	"time"

	"github.com/geotrail/backend/internal/domain/core"
	"github.com/geotrail/backend/internal/domain/tourism"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/geotrail/backend/internal/infrastructure/capture"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTrekStore struct {
	mock.Mock
}

func (m *MockTrekStore) FindModifiedSince(ctx context.Context, since time.Time, structureID *uuid.UUID) ([]trekking.Trek, error) {
	args := m.Called(ctx, since, structureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.Trek), args.Error(1)
}

func (m *MockTrekStore) Save(ctx context.Context, trek *trekking.Trek) error {
	args := m.Called(ctx, trek)
	return args.Error(0)
}

type MockPathStore struct {
	mock.Mock
}

func (m *MockPathStore) FindModifiedSince(ctx context.Context, since time.Time, structureID *uuid.UUID) ([]core.Path, error) {
	args := m.Called(ctx, since, structureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.Path), args.Error(1)
}

func (m *MockPathStore) Save(ctx context.Context, path *core.Path) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

type MockContentStore struct {
	mock.Mock
}

func (m *MockContentStore) FindByEID(ctx context.Context, eid string) (*tourism.TouristicContent, error) {
	args := m.Called(ctx, eid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tourism.TouristicContent), args.Error(1)
}

func (m *MockContentStore) Save(ctx context.Context, content *tourism.TouristicContent) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

type MockTouristicSource struct {
	mock.Mock
}

func (m *MockTouristicSource) FetchUpdates(ctx context.Context, since time.Time, structureID *uuid.UUID) ([]TouristicRecord, error) {
	args := m.Called(ctx, since, structureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TouristicRecord), args.Error(1)
}

type MockCapturer struct {
	mock.Mock
}

func (m *MockCapturer) CaptureMap(ctx context.Context, req *capture.CaptureRequest) (*capture.CaptureResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*capture.CaptureResult), args.Error(1)
}

func (m *MockCapturer) RenderSVG(ctx context.Context, svg []byte, width, height int) ([]byte, error) {
	args := m.Called(ctx, svg, width, height)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCapturer) PrintPDF(ctx context.Context, req *capture.CaptureRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCapturer) Close() error {
	args := m.Called()
	return args.Error(0)
}
