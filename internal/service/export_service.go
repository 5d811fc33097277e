package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/etec-portal-api/pkg/errors"
	"github.com/noah-isme/etec-portal-api/pkg/export"
)

// Export formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

var marksHeaders = []string{"Date", "Exam", "Subject", "Result"}

// ExportService renders a student's marks report as a downloadable file.
type ExportService struct {
	views  *ViewService
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService constructs an ExportService instance.
func NewExportService(views *ViewService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		views:  views,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// MarksDataset assembles the tabular report data for a registration number.
func (s *ExportService) MarksDataset(ctx context.Context, regNo string) (export.Dataset, error) {
	rows, err := s.views.MarksFor(ctx, regNo)
	if err != nil {
		return export.Dataset{}, err
	}

	data := export.Dataset{Headers: marksHeaders, Rows: make([]map[string]string, 0, len(rows))}
	for _, row := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"Date":    row.Date,
			"Exam":    row.Exam,
			"Subject": row.Subject,
			"Result":  row.Result,
		})
	}
	return data, nil
}

// MarksReport renders the report in the requested format and returns the
// bytes plus the response content type.
func (s *ExportService) MarksReport(ctx context.Context, regNo, format string) ([]byte, string, error) {
	data, err := s.MarksDataset(ctx, regNo)
	if err != nil {
		return nil, "", err
	}

	switch strings.ToLower(format) {
	case FormatCSV, "":
		raw, err := s.csv.Render(data)
		if err != nil {
			return nil, "", fmt.Errorf("render marks csv: %w", err)
		}
		return raw, "text/csv", nil
	case FormatPDF:
		raw, err := s.pdf.Render(data, fmt.Sprintf("Marks Report %s", regNo))
		if err != nil {
			return nil, "", fmt.Errorf("render marks pdf: %w", err)
		}
		return raw, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
