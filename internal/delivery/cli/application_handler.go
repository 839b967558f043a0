package cli

import (
	"context"
	"errors"
	"fmt"
	"go-application-tracker/internal/delivery/cli/response"
	"go-application-tracker/internal/domain"
	"go-application-tracker/pkg/apperror"
)

func (d *Dispatcher) submit(ctx context.Context, c SubmitCommand) (response.Result, error) {
	app := d.deps.ApplicationUC.Submit(ctx, c.Name, c.JobID, c.ResumeLink)
	return response.Success(ctx, fmt.Sprintf("Application submitted for %s (Job ID: %s)", app.Name, app.JobID), app), nil
}

func (d *Dispatcher) list(ctx context.Context) (response.Result, error) {
	return response.Success(ctx, fmt.Sprintf("%d application(s)", d.deps.ApplicationUC.Count()), d.deps.ApplicationUC.All()), nil
}

// lookup resolves the first application named name
func (d *Dispatcher) lookup(name string) (*domain.Application, error) {
	app, err := d.deps.ApplicationUC.FindByName(name)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return nil, apperror.NotFound("Application not found.")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}
