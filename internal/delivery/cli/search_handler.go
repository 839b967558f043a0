package cli

import (
	"context"
	"fmt"
	"go-application-tracker/internal/delivery/cli/response"
)

// search never fails: an unknown key simply matches nothing.
func (d *Dispatcher) search(ctx context.Context, c SearchCommand) (response.Result, error) {
	apps := d.deps.SearchUC.Search(d.deps.ApplicationUC.All(), c.Key, c.Value)
	return response.Success(ctx, matchMessage(len(apps), fmt.Sprintf("%s = %s", c.Key, c.Value)), apps), nil
}
