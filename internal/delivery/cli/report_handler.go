package cli

import (
	"context"
	"fmt"
	"go-application-tracker/internal/delivery/cli/response"
	"go-application-tracker/pkg/audit"
	"strings"
)

func (d *Dispatcher) report(ctx context.Context) (response.Result, error) {
	report := d.deps.ReportUC.Generate(ctx, d.deps.ApplicationUC.All())
	return response.Success(ctx, "Report", report), nil
}

// export renders the report only; writing the file is left to the caller.
func (d *Dispatcher) export(ctx context.Context, c ExportCommand) (response.Result, error) {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if res, err := d.validate(c); err != nil {
		return res, err
	}

	file, err := d.deps.ReportUC.Export(ctx, d.deps.ApplicationUC.All(), c.Format)
	if err != nil {
		return response.Result{}, err
	}
	return response.Success(ctx, fmt.Sprintf("Report rendered as %s", file.Filename), file), nil
}

func (d *Dispatcher) verifyAudit(ctx context.Context) (response.Result, error) {
	report := d.deps.Audit.Verify()
	msg := fmt.Sprintf("Audit trail %s: %d/%d event(s) verified", report.Status, report.VerifiedEvents, report.TotalEvents)
	res := response.Success(ctx, msg, report)
	res.Success = report.Status == audit.IntegrityIntact
	return res, nil
}
