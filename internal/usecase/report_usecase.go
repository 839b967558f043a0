package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"go-application-tracker/internal/domain"
	"go-application-tracker/pkg/apperror"
	"go-application-tracker/pkg/audit"
	"go-application-tracker/pkg/logger"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

type reportUsecase struct {
	audit *audit.Logger
	log   *slog.Logger
	now   func() time.Time
}

// NewReportUsecase creates the report generator
func NewReportUsecase(auditLog *audit.Logger, log *slog.Logger) domain.ReportUsecase {
	return &reportUsecase{
		audit: auditOrNop(auditLog),
		log:   logger.OrDiscard(log),
		now:   time.Now,
	}
}

// Generate counts apps in total, per canonical status and per job id.
// Non-canonical labels go to the Other bucket; no application is dropped.
func (uc *reportUsecase) Generate(ctx context.Context, apps []*domain.Application) *domain.Report {
	report := &domain.Report{
		Total:        len(apps),
		StatusCount:  make(map[string]int, len(domain.CanonicalStatuses)),
		PerJob:       make(map[string]int),
		OtherByLabel: make(map[string]int),
		GeneratedAt:  uc.now(),
	}
	for _, status := range domain.CanonicalStatuses {
		report.StatusCount[status] = 0
	}

	for _, app := range apps {
		if domain.IsCanonicalStatus(app.Status) {
			report.StatusCount[app.Status]++
		} else {
			if _, seen := report.OtherByLabel[app.Status]; !seen {
				report.OtherOrder = append(report.OtherOrder, app.Status)
			}
			report.OtherByLabel[app.Status]++
			report.Other++
		}

		if _, seen := report.PerJob[app.JobID]; !seen {
			report.JobOrder = append(report.JobOrder, app.JobID)
		}
		report.PerJob[app.JobID]++
	}

	if report.Other > 0 {
		uc.log.Warn("Report includes non-canonical statuses", "other", report.Other, "labels", report.OtherOrder)
	}
	uc.audit.Record(ctx, audit.EventReportGenerated, audit.Subject{}, map[string]interface{}{"total": report.Total})
	return report
}

// Export renders the report and the application rows as xlsx, csv or yaml
func (uc *reportUsecase) Export(ctx context.Context, apps []*domain.Application, format string) (*domain.ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = domain.ExportFormatXLSX
	}

	report := uc.Generate(ctx, apps)

	var (
		file *domain.ExportFile
		err  error
	)
	switch format {
	case domain.ExportFormatXLSX:
		file, err = uc.exportExcel(report, apps)
	case domain.ExportFormatCSV:
		file, err = uc.exportCSV(report, apps)
	case domain.ExportFormatYAML:
		file, err = uc.exportYAML(report, apps)
	default:
		return nil, apperror.New(apperror.CodeBadRequest,
			fmt.Sprintf("Unsupported export format: %s", format), domain.ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	uc.audit.Record(ctx, audit.EventReportExported, audit.Subject{}, map[string]interface{}{
		"format":   format,
		"filename": file.Filename,
		"rows":     len(apps),
	})
	uc.log.Info("Report exported", "format", format, "filename", file.Filename, "bytes", len(file.Data))
	return file, nil
}

var applicationColumns = []string{"ID", "NAME", "JOB ID", "RESUME LINK", "STATUS", "SUBMITTED AT"}

func applicationRow(app *domain.Application) []string {
	return []string{
		app.ID,
		app.Name,
		app.JobID,
		app.ResumeLink,
		app.Status,
		app.SubmittedAt.Format(time.RFC3339),
	}
}

func (uc *reportUsecase) filename(report *domain.Report, ext string) string {
	return fmt.Sprintf("application_report_%s.%s", report.GeneratedAt.Format("20060102_150405"), ext)
}

// exportExcel writes a Summary sheet and an Applications sheet
func (uc *reportUsecase) exportExcel(report *domain.Report, apps []*domain.Application) (*domain.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	const appsSheet = "Applications"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if _, err := f.NewSheet(appsSheet); err != nil {
		return nil, fmt.Errorf("failed to create applications sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	// Summary: section | key | count
	summary := [][]interface{}{{"SECTION", "KEY", "COUNT"}, {"total", "", report.Total}}
	for _, status := range domain.CanonicalStatuses {
		summary = append(summary, []interface{}{"status", status, report.StatusCount[status]})
	}
	for _, label := range report.OtherOrder {
		summary = append(summary, []interface{}{"other", label, report.OtherByLabel[label]})
	}
	for _, jobID := range report.JobOrder {
		summary = append(summary, []interface{}{"job", jobID, report.PerJob[jobID]})
	}
	for rowIdx, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	_ = f.SetCellStyle(summarySheet, "A1", "C1", headerStyle)
	_ = f.SetColWidth(summarySheet, "A", "C", 20)

	// Applications
	for i, header := range applicationColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(appsSheet, cell, header)
	}
	endCell, _ := excelize.CoordinatesToCellName(len(applicationColumns), 1)
	_ = f.SetCellStyle(appsSheet, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		for colIdx, value := range applicationRow(app) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(appsSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write application row: %w", err)
			}
		}
	}
	for i := range applicationColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(appsSheet, colName, colName, 24)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return &domain.ExportFile{
		Filename:    uc.filename(report, domain.ExportFormatXLSX),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

// exportCSV writes one row per application
func (uc *reportUsecase) exportCSV(report *domain.Report, apps []*domain.Application) (*domain.ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(applicationColumns))
	for i, col := range applicationColumns {
		header[i] = strings.ToLower(strings.ReplaceAll(col, " ", "_"))
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, app := range apps {
		if err := w.Write(applicationRow(app)); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return &domain.ExportFile{
		Filename:    uc.filename(report, domain.ExportFormatCSV),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

type yamlExport struct {
	Report       *domain.Report        `yaml:"report"`
	Applications []*domain.Application `yaml:"applications"`
}

func (uc *reportUsecase) exportYAML(report *domain.Report, apps []*domain.Application) (*domain.ExportFile, error) {
	data, err := yaml.Marshal(yamlExport{Report: report, Applications: apps})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}

	return &domain.ExportFile{
		Filename:    uc.filename(report, domain.ExportFormatYAML),
		ContentType: "application/yaml",
		Data:        data,
	}, nil
}
