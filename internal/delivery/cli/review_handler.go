package cli

import (
	"context"
	"fmt"
	"go-application-tracker/internal/delivery/cli/response"
)

func (d *Dispatcher) enqueueAll(ctx context.Context) (response.Result, error) {
	n := d.deps.ReviewUC.EnqueueAll(ctx)
	queued := d.deps.ReviewUC.Queued()
	return response.Success(ctx, fmt.Sprintf("%d application(s) added to review queue, %d pending", n, len(queued)), queued), nil
}

func (d *Dispatcher) enqueue(ctx context.Context, c EnqueueCommand) (response.Result, error) {
	app, err := d.lookup(c.Name)
	if err != nil {
		return response.Result{}, err
	}

	d.deps.ReviewUC.Enqueue(ctx, app)
	return response.Success(ctx, fmt.Sprintf("Application added to review queue: %s (Job ID: %s)", app.Name, app.JobID), app), nil
}

// processNext reports an empty queue as a successful result with no data.
func (d *Dispatcher) processNext(ctx context.Context) (response.Result, error) {
	app, ok := d.deps.ReviewUC.Dequeue(ctx)
	if !ok {
		return response.Success(ctx, "No applications in the review queue.", nil), nil
	}
	return response.Success(ctx, fmt.Sprintf("Processing application: %s (Job ID: %s)", app.Name, app.JobID), app), nil
}
