package signage

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/signage"
	"github.com/geotrail/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestExportService_SignagesCSV(t *testing.T) {
	signageRepo := new(MockSignageRepository)
	store := storage.NewMemoryObjectStorage()
	svc := NewExportService(signageRepo, new(MockBladeRepository), store, zap.NewNop())

	first := testSignage(t, uuid.New())
	first.Code = "CDX-01"
	second := testSignage(t, uuid.New())
	second.Code = "CDX-02"
	signageRepo.On("FindAll", mock.Anything, mock.Anything).
		Return([]signage.Signage{*first, *second}, nil)

	result, err := svc.ExportSignagesCSV(context.Background(), shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, 2, result.RowCount)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Contains(t, result.DownloadURL, result.StorageKey)

	data, err := store.Download(context.Background(), result.StorageKey)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Code", records[0][0])
	assert.Equal(t, "CDX-01", records[1][0])
	assert.Equal(t, "CDX-02", records[2][0])
}

func TestExportService_SignagesXLSX(t *testing.T) {
	signageRepo := new(MockSignageRepository)
	store := storage.NewMemoryObjectStorage()
	svc := NewExportService(signageRepo, new(MockBladeRepository), store, zap.NewNop())

	sign := testSignage(t, uuid.New())
	sign.Code = "CDX-01"
	signageRepo.On("FindAll", mock.Anything, mock.Anything).
		Return([]signage.Signage{*sign}, nil)

	result, err := svc.ExportSignagesXLSX(context.Background(), shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowCount)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		result.ContentType)

	data, err := store.Download(context.Background(), result.StorageKey)
	require.NoError(t, err)
	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	header, err := book.GetCellValue("Signages", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Code", header)
	code, err := book.GetCellValue("Signages", "A2")
	require.NoError(t, err)
	assert.Equal(t, "CDX-01", code)
	name, err := book.GetCellValue("Signages", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Col de la Croix", name)
}

func TestExportService_BladesCSV(t *testing.T) {
	bladeRepo := new(MockBladeRepository)
	store := storage.NewMemoryObjectStorage()
	svc := NewExportService(new(MockSignageRepository), bladeRepo, store, zap.NewNop())

	sign := testSignage(t, uuid.New())
	blade, err := signage.NewBlade(sign, "1")
	require.NoError(t, err)
	line, err := signage.NewLine(1, "Lac Blanc", nil, nil)
	require.NoError(t, err)
	require.NoError(t, blade.ReplaceLines([]signage.Line{line}))

	bladeRepo.On("FindAll", mock.Anything, mock.Anything).
		Return([]signage.Blade{*blade}, nil)

	result, err := svc.ExportBladesCSV(context.Background(), shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowCount)

	data, err := store.Download(context.Background(), result.StorageKey)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, sign.ID.String(), records[1][0])
	assert.Equal(t, "1", records[1][1])
	assert.Equal(t, "1", records[1][2])
}
