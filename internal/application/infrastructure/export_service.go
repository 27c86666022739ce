package infrastructure

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/geotrail/backend/internal/domain/infrastructure"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/infrastructure/storage"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	exportURLExpiry = 15 * time.Minute
)

var exportHeader = []string{
	"Name", "Description", "Implantation year", "Published", "X", "Y",
}

// ExportService renders infrastructure lists as CSV or XLSX files
// and uploads them to object storage.
type ExportService struct {
	repo   infrastructure.Repository
	store  storage.ObjectStorage
	logger *zap.Logger
}

// NewExportService creates a new export service
func NewExportService(repo infrastructure.Repository, store storage.ObjectStorage, logger *zap.Logger) *ExportService {
	return &ExportService{repo: repo, store: store, logger: logger}
}

// ExportCSV exports the infrastructure list as CSV
func (s *ExportService) ExportCSV(ctx context.Context, filter shared.Filter) (*ExportResult, error) {
	items, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, infra := range items {
		if err := w.Write(exportRow(infra)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	key := exportKey("csv")
	return s.upload(ctx, key, buf.Bytes(), csvContentType, len(items))
}

// ExportXLSX exports the infrastructure list as an Excel workbook
func (s *ExportService) ExportXLSX(ctx context.Context, filter shared.Filter) (*ExportResult, error) {
	items, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	const sheet = "Infrastructures"
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}
	for r, infra := range items {
		for c, value := range exportRow(infra) {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	key := exportKey("xlsx")
	return s.upload(ctx, key, buf.Bytes(), xlsxContentType, len(items))
}

func (s *ExportService) upload(ctx context.Context, key string, data []byte, contentType string, rows int) (*ExportResult, error) {
	if err := s.store.Upload(ctx, key, data, contentType); err != nil {
		s.logger.Error("Failed to upload export", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	url, _, err := s.store.GenerateDownloadURL(ctx, key, exportURLExpiry)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Export generated", zap.String("key", key), zap.Int("rows", rows))
	return &ExportResult{
		StorageKey:  key,
		DownloadURL: url,
		ContentType: contentType,
		RowCount:    rows,
	}, nil
}

func exportRow(infra infrastructure.Infrastructure) []string {
	year := ""
	if infra.ImplantationYear != nil {
		year = strconv.Itoa(*infra.ImplantationYear)
	}
	point := infra.Geometry.Point()
	return []string{
		infra.Name,
		infra.Description,
		year,
		strconv.FormatBool(infra.Published),
		strconv.FormatFloat(point.X, 'f', 1, 64),
		strconv.FormatFloat(point.Y, 'f', 1, 64),
	}
}

func exportKey(ext string) string {
	return fmt.Sprintf("exports/infrastructures-%s.%s", time.Now().UTC().Format("20060102-150405"), ext)
}
