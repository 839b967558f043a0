package cli

import (
	"context"
	"fmt"
	"go-application-tracker/internal/delivery/cli/response"
	"go-application-tracker/internal/domain"
	"sort"
	"strings"
)

func (d *Dispatcher) decide(ctx context.Context, c DecideCommand) (response.Result, error) {
	if res, err := d.validate(c); err != nil {
		return res, err
	}

	app, err := d.deps.DecisionUC.Decide(ctx, c.Name, c.Action)
	if err != nil {
		return response.Result{}, err
	}

	verb := "shortlisted"
	if app.Status == domain.ApplicationStatusRejected {
		verb = "rejected"
	}
	return response.Success(ctx, fmt.Sprintf("Application %s: %s (Job ID: %s)", verb, app.Name, app.JobID), app), nil
}

func (d *Dispatcher) filter(ctx context.Context, c FilterCommand) (response.Result, error) {
	apps := d.deps.DecisionUC.Filter(d.deps.ApplicationUC.All(), c.Criteria)
	return response.Success(ctx, matchMessage(len(apps), describeCriteria(c.Criteria)), apps), nil
}

func (d *Dispatcher) history(ctx context.Context) (response.Result, error) {
	decisions := d.deps.DecisionUC.History()
	last, ok := d.deps.DecisionUC.Last()
	if !ok {
		return response.Success(ctx, "No decisions recorded yet.", decisions), nil
	}
	msg := fmt.Sprintf("%d decision(s), most recent: %s (Job ID: %s) -> %s",
		len(decisions), last.Application.Name, last.Application.JobID, last.Label)
	return response.Success(ctx, msg, decisions), nil
}

func describeCriteria(criteria map[string]string) string {
	if len(criteria) == 0 {
		return "no criteria"
	}
	keys := make([]string, 0, len(criteria))
	for k := range criteria {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s = %s", k, criteria[k])
	}
	return strings.Join(parts, ", ")
}

func matchMessage(n int, what string) string {
	if n == 0 {
		return fmt.Sprintf("No applications found matching %s", what)
	}
	return fmt.Sprintf("Found %d application(s) matching %s", n, what)
}
