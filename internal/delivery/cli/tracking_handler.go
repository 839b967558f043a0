package cli

import (
	"context"
	"fmt"
	"go-application-tracker/internal/delivery/cli/response"
)

func (d *Dispatcher) stage(ctx context.Context, c StageCommand) (response.Result, error) {
	app, err := d.lookup(c.Name)
	if err != nil {
		return response.Result{}, err
	}

	d.deps.TrackingUC.AddStage(ctx, app, c.Label)
	return response.Success(ctx, fmt.Sprintf("Application %s moved to stage: %s", app.Name, c.Label), app), nil
}

func (d *Dispatcher) track(ctx context.Context) (response.Result, error) {
	entries := d.deps.TrackingUC.TrackAll(ctx)
	return response.Success(ctx, "Application Tracking", entries), nil
}
