package domain

import (
	"context"
	"time"
)

// Report export formats
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"
	ExportFormatYAML = "yaml"
)

// ExportFormats lists the supported export formats.
var ExportFormats = []string{ExportFormatXLSX, ExportFormatCSV, ExportFormatYAML}

// Report summarizes a collection of applications.
//
// StatusCount always holds exactly the canonical statuses, zero-filled.
// Applications carrying any other label (set by stage tracking) are counted in
// Other and broken down in OtherByLabel, so sum(StatusCount)+Other == Total.
type Report struct {
	Total        int            `json:"total" yaml:"total"`
	StatusCount  map[string]int `json:"status_count" yaml:"status_count"`
	PerJob       map[string]int `json:"per_job" yaml:"per_job"`
	JobOrder     []string       `json:"-" yaml:"-"` // job ids in first-seen order
	Other        int            `json:"other" yaml:"other"`
	OtherByLabel map[string]int `json:"other_by_label,omitempty" yaml:"other_by_label,omitempty"`
	OtherOrder   []string       `json:"-" yaml:"-"`
	GeneratedAt  time.Time      `json:"generated_at" yaml:"generated_at"`
}

// ExportFile is a rendered report ready to be written out.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportUsecase aggregates applications into reports
type ReportUsecase interface {
	Generate(ctx context.Context, apps []*Application) *Report
	Export(ctx context.Context, apps []*Application, format string) (*ExportFile, error)
}
