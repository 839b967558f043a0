package cli

import (
	"fmt"
	"go-application-tracker/internal/delivery/cli/response"
	"go-application-tracker/internal/domain"
	"go-application-tracker/pkg/apperror"
	"go-application-tracker/pkg/audit"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type renderer struct {
	out       *outputWriter
	exportDir string

	title   lipgloss.Style
	ok      lipgloss.Style
	failed  lipgloss.Style
	muted   lipgloss.Style
	heading lipgloss.Style
}

func newRenderer(out io.Writer, exportDir string) *renderer {
	r := lipgloss.NewRenderer(out)
	return &renderer{
		out:       &outputWriter{w: out},
		exportDir: exportDir,
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#54A0FF")),
		ok:        r.NewStyle().Foreground(lipgloss.Color("#73F59F")),
		failed:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8787")),
		muted:     r.NewStyle().Foreground(lipgloss.Color("#BBBBBB")),
		heading:   r.NewStyle().Bold(true),
	}
}

func (r *renderer) menu(title string, items []string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.title.Render("--- "+title+" ---"))
	for _, item := range items {
		fmt.Fprintln(r.out, item)
	}
}

// result renders res. Only a failure to write the output is returned.
func (r *renderer) result(res response.Result) error {
	r.show(res)
	if r.out.err != nil {
		return fmt.Errorf("cli: write output: %w", r.out.err)
	}
	return nil
}

func (r *renderer) show(res response.Result) {
	if !res.Success {
		r.failure(res.Code, res.Message)
		if details, ok := res.Error.([]string); ok {
			for _, d := range details {
				fmt.Fprintln(r.out, "  - "+d)
			}
		}
		if report, ok := res.Data.(audit.IntegrityReport); ok {
			r.integrity(report)
		}
		return
	}

	switch data := res.Data.(type) {
	case *domain.Report:
		r.report(data)
		return
	case []domain.StageEntry:
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, r.heading.Render("--- "+res.Message+" ---"))
		for _, e := range data {
			fmt.Fprintf(r.out, "%s: %s\n", e.Name, e.Status)
		}
		return
	}

	fmt.Fprintln(r.out, r.ok.Render(res.Message))

	switch data := res.Data.(type) {
	case []*domain.Application:
		for _, app := range data {
			r.application(app)
		}
	case []domain.Decision:
		for i, d := range data {
			fmt.Fprintf(r.out, "%d. %s (Job ID: %s) -> %s %s\n", i+1, d.Application.Name, d.Application.JobID, d.Label,
				r.muted.Render("[now "+d.Application.Status+"]"))
		}
	case *domain.ExportFile:
		if err := r.writeExport(data); err != nil {
			r.failure(apperror.CodeInternal, err.Error())
		}
	case audit.IntegrityReport:
		r.integrity(data)
	}
}

func (r *renderer) failure(code apperror.Code, message string) {
	prefix := "Error"
	if code != "" {
		prefix += " [" + string(code) + "]"
	}
	fmt.Fprintln(r.out, r.failed.Render(prefix+": ")+message)
}

func (r *renderer) application(app *domain.Application) {
	fmt.Fprintf(r.out, "%s | Job ID: %s | Status: %s | Resume: %s %s\n",
		app.Name, app.JobID, app.Status, app.ResumeLink, r.muted.Render(app.ID))
}

func (r *renderer) report(rep *domain.Report) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.heading.Render("--- Report ---"))
	fmt.Fprintf(r.out, "Total Applications: %d\n", rep.Total)

	statuses := make([]string, 0, len(domain.CanonicalStatuses))
	for _, s := range domain.CanonicalStatuses {
		statuses = append(statuses, fmt.Sprintf("%s: %d", s, rep.StatusCount[s]))
	}
	fmt.Fprintf(r.out, "Status Count: %s\n", strings.Join(statuses, ", "))

	if rep.Other > 0 {
		others := make([]string, 0, len(rep.OtherOrder))
		for _, label := range rep.OtherOrder {
			others = append(others, fmt.Sprintf("%s: %d", label, rep.OtherByLabel[label]))
		}
		fmt.Fprintf(r.out, "Other Stages: %d (%s)\n", rep.Other, strings.Join(others, ", "))
	}

	jobs := make([]string, 0, len(rep.JobOrder))
	for _, jobID := range rep.JobOrder {
		jobs = append(jobs, fmt.Sprintf("%s: %d", jobID, rep.PerJob[jobID]))
	}
	fmt.Fprintf(r.out, "Applications per Job: %s\n", strings.Join(jobs, ", "))
}

func (r *renderer) integrity(rep audit.IntegrityReport) {
	for _, d := range rep.Details {
		fmt.Fprintln(r.out, "  - "+d)
	}
}

func (r *renderer) writeExport(file *domain.ExportFile) error {
	if err := os.MkdirAll(r.exportDir, 0o755); err != nil {
		return fmt.Errorf("cli: ensure export dir: %w", err)
	}
	path := filepath.Join(r.exportDir, file.Filename)
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return fmt.Errorf("cli: write export: %w", err)
	}
	fmt.Fprintf(r.out, "Report written to %s\n", path)
	return nil
}

// outputWriter remembers the first write error so rendering can stay linear.
type outputWriter struct {
	w   io.Writer
	err error
}

func (o *outputWriter) Write(p []byte) (int, error) {
	if o.err != nil {
		return 0, o.err
	}
	n, err := o.w.Write(p)
	if err != nil {
		o.err = err
	}
	return n, err
}
