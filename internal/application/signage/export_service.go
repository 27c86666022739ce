package signage

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/signage"
	"github.com/geotrail/backend/internal/infrastructure/storage"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	exportURLExpiry = 15 * time.Minute
)

var signageExportHeader = []string{
	"Code", "Name", "Description", "Implantation year", "Printed elevation",
	"Published", "X", "Y", "Blades",
}

var bladeExportHeader = []string{
	"Signage", "Number", "Lines", "Condition",
}

// ExportService renders signage and blade lists as CSV or XLSX files
// and uploads them to object storage.
type ExportService struct {
	signageRepo signage.SignageRepository
	bladeRepo   signage.BladeRepository
	store       storage.ObjectStorage
	logger      *zap.Logger
}

// NewExportService creates a new export service
func NewExportService(
	signageRepo signage.SignageRepository,
	bladeRepo signage.BladeRepository,
	store storage.ObjectStorage,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{signageRepo: signageRepo, bladeRepo: bladeRepo, store: store, logger: logger}
}

// ExportSignagesCSV exports the signage list as CSV
func (s *ExportService) ExportSignagesCSV(ctx context.Context, filter shared.Filter) (*ExportResult, error) {
	signs, err := s.signageRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(signageExportHeader); err != nil {
		return nil, err
	}
	for _, sign := range signs {
		if err := w.Write(signageRow(sign)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	key := exportKey("signages", "csv")
	return s.upload(ctx, key, buf.Bytes(), csvContentType, len(signs))
}

// ExportSignagesXLSX exports the signage list as an Excel workbook
func (s *ExportService) ExportSignagesXLSX(ctx context.Context, filter shared.Filter) (*ExportResult, error) {
	signs, err := s.signageRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(signs))
	for _, sign := range signs {
		rows = append(rows, signageRow(sign))
	}
	data, err := buildWorkbook("Signages", signageExportHeader, rows)
	if err != nil {
		return nil, err
	}

	key := exportKey("signages", "xlsx")
	return s.upload(ctx, key, data, xlsxContentType, len(signs))
}

// ExportBladesCSV exports the blade list as CSV
func (s *ExportService) ExportBladesCSV(ctx context.Context, filter shared.Filter) (*ExportResult, error) {
	blades, err := s.bladeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(bladeExportHeader); err != nil {
		return nil, err
	}
	for _, blade := range blades {
		if err := w.Write(bladeRow(blade)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	key := exportKey("blades", "csv")
	return s.upload(ctx, key, buf.Bytes(), csvContentType, len(blades))
}

// ExportBladesXLSX exports the blade list as an Excel workbook
func (s *ExportService) ExportBladesXLSX(ctx context.Context, filter shared.Filter) (*ExportResult, error) {
	blades, err := s.bladeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(blades))
	for _, blade := range blades {
		rows = append(rows, bladeRow(blade))
	}
	data, err := buildWorkbook("Blades", bladeExportHeader, rows)
	if err != nil {
		return nil, err
	}

	key := exportKey("blades", "xlsx")
	return s.upload(ctx, key, data, xlsxContentType, len(blades))
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

func signageRow(sign signage.Signage) []string {
	point := sign.Geometry.Point()
	return []string{
		sign.Code,
		sign.Name,
		sign.Description,
		intOrEmpty(sign.ImplantationYear),
		intOrEmpty(sign.PrintedElevation),
		strconv.FormatBool(sign.Published),
		strconv.FormatFloat(point.X, 'f', 1, 64),
		strconv.FormatFloat(point.Y, 'f', 1, 64),
		strconv.Itoa(len(sign.Blades)),
	}
}

func bladeRow(blade signage.Blade) []string {
	condition := ""
	if blade.ConditionID != nil {
		condition = blade.ConditionID.String()
	}
	return []string{
		blade.SignageID.String(),
		blade.Number,
		strconv.Itoa(len(blade.Lines)),
		condition,
	}
}

// buildWorkbook renders a single-sheet XLSX file with a bold header row
func buildWorkbook(sheet string, header []string, rows [][]string) ([]byte, error) {
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

	for col, title := range header {
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

	for r, row := range rows {
		for c, value := range row {
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
	return buf.Bytes(), nil
}

func exportKey(name, ext string) string {
	return fmt.Sprintf("exports/%s-%s.%s", name, time.Now().UTC().Format("20060102-150405"), ext)
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
