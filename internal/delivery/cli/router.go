package cli

import (
	"context"
	"fmt"
	"go-application-tracker/internal/delivery/cli/middleware"
	"go-application-tracker/internal/delivery/cli/response"
	"go-application-tracker/internal/domain"
	"go-application-tracker/pkg/apperror"
	"go-application-tracker/pkg/audit"
	"go-application-tracker/pkg/logger"
	"go-application-tracker/pkg/validation"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

type DispatcherDeps struct {
	ApplicationUC domain.ApplicationUsecase
	ReviewUC      domain.ReviewUsecase
	DecisionUC    domain.DecisionUsecase
	SearchUC      domain.SearchUsecase
	TrackingUC    domain.TrackingUsecase
	ReportUC      domain.ReportUsecase
	Audit         *audit.Logger
	Validate      *validator.Validate
	Logger        *slog.Logger
}

// Dispatcher routes structured commands to the usecases. It performs no I/O.
type Dispatcher struct {
	deps    DispatcherDeps
	handler middleware.HandlerFunc
}

func NewDispatcher(deps DispatcherDeps) *Dispatcher {
	if deps.Validate == nil {
		deps.Validate = validation.New()
	}
	if deps.Audit == nil {
		deps.Audit = audit.NewNop()
	}
	deps.Logger = logger.OrDiscard(deps.Logger)

	d := &Dispatcher{deps: deps}
	d.handler = middleware.Chain(d.route,
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.ErrorHandler(deps.Logger),
	)
	return d
}

// Dispatch runs cmd and always returns a result; failures are reported in it.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd middleware.Command) response.Result {
	res, err := d.handler(ctx, cmd)
	if err != nil {
		// ErrorHandler absorbs errors; reaching here means the chain was altered.
		return response.Error(ctx, apperror.CodeInternal, err.Error(), nil)
	}
	return res
}

func (d *Dispatcher) route(ctx context.Context, cmd middleware.Command) (response.Result, error) {
	switch c := cmd.(type) {
	case SubmitCommand:
		return d.submit(ctx, c)
	case ListCommand:
		return d.list(ctx)
	case EnqueueAllCommand:
		return d.enqueueAll(ctx)
	case EnqueueCommand:
		return d.enqueue(ctx, c)
	case ProcessNextCommand:
		return d.processNext(ctx)
	case DecideCommand:
		return d.decide(ctx, c)
	case FilterCommand:
		return d.filter(ctx, c)
	case SearchCommand:
		return d.search(ctx, c)
	case StageCommand:
		return d.stage(ctx, c)
	case TrackCommand:
		return d.track(ctx)
	case ReportCommand:
		return d.report(ctx)
	case ExportCommand:
		return d.export(ctx, c)
	case HistoryCommand:
		return d.history(ctx)
	case VerifyAuditCommand:
		return d.verifyAudit(ctx)
	case ExitCommand:
		res := response.Success(ctx, "Exiting the program. Goodbye!", nil)
		res.Exit = true
		return res, nil
	default:
		return response.Result{}, apperror.InvalidAction(fmt.Sprintf("Unknown command: %s", cmd.Op()))
	}
}

// validate runs struct validation; failures become BAD_REQUEST, or
// INVALID_ACTION when the decision action itself is out of domain.
func (d *Dispatcher) validate(cmd interface{}) (response.Result, error) {
	err := d.deps.Validate.Struct(cmd)
	if err == nil {
		return response.Result{}, nil
	}

	messages := validation.FormatValidationErrors(err)
	res := response.Result{Error: messages}
	if validation.HasTag(err, "decision_action") {
		return res, apperror.New(apperror.CodeInvalidAction, "Invalid action.", err)
	}
	return res, apperror.New(apperror.CodeBadRequest, "Invalid input: "+messages[0], err)
}
