package usecase

import (
	"context"
	"errors"
	"fmt"
	"go-application-tracker/internal/domain"
	"go-application-tracker/pkg/apperror"
	"go-application-tracker/pkg/audit"
	"go-application-tracker/pkg/logger"
	"log/slog"
	"strings"
	"time"
)

// DecisionOptions tunes the decision usecase
type DecisionOptions struct {
	// Strict refuses to re-decide an application that is already
	// Shortlisted or Rejected.
	Strict bool
}

type decisionUsecase struct {
	decisions       domain.DecisionRepository
	applicationRepo domain.ApplicationRepository
	opts            DecisionOptions
	audit           *audit.Logger
	log             *slog.Logger
	now             func() time.Time
}

// NewDecisionUsecase creates a new decision usecase
func NewDecisionUsecase(
	decisions domain.DecisionRepository,
	appRepo domain.ApplicationRepository,
	opts DecisionOptions,
	auditLog *audit.Logger,
	log *slog.Logger,
) domain.DecisionUsecase {
	return &decisionUsecase{
		decisions:       decisions,
		applicationRepo: appRepo,
		opts:            opts,
		audit:           auditOrNop(auditLog),
		log:             logger.OrDiscard(log),
		now:             time.Now,
	}
}

// Shortlist sets the status to Shortlisted and logs the decision
func (uc *decisionUsecase) Shortlist(ctx context.Context, app *domain.Application) error {
	return uc.decide(ctx, app, domain.DecisionShortlisted, audit.EventShortlisted)
}

// Reject sets the status to Rejected and logs the decision
func (uc *decisionUsecase) Reject(ctx context.Context, app *domain.Application) error {
	return uc.decide(ctx, app, domain.DecisionRejected, audit.EventRejected)
}

func (uc *decisionUsecase) decide(ctx context.Context, app *domain.Application, label string, event audit.EventType) error {
	previous := app.Status
	if uc.opts.Strict && (previous == domain.ApplicationStatusShortlisted || previous == domain.ApplicationStatusRejected) {
		return apperror.New(apperror.CodeConflict,
			fmt.Sprintf("Application for %s (Job ID: %s) is already %s", app.Name, app.JobID, previous),
			domain.ErrAlreadyDecided)
	}

	app.Status = label
	uc.decisions.Append(domain.Decision{
		Application: app,
		Label:       label,
		DecidedAt:   uc.now(),
	})

	uc.audit.Record(ctx, event, subjectOf(app), map[string]interface{}{"previous_status": previous})
	uc.log.Info("Application decided", "id", app.ID, "name", app.Name, "job_id", app.JobID, "decision", label)
	return nil
}

// Decide looks up the first application named name and applies action.
// The name is resolved before the action is checked.
func (uc *decisionUsecase) Decide(ctx context.Context, name, action string) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return nil, apperror.NotFound("Application not found.")
		}
		return nil, apperror.Internal(err)
	}

	switch strings.ToLower(strings.TrimSpace(action)) {
	case domain.ActionShortlist:
		err = uc.Shortlist(ctx, app)
	case domain.ActionReject:
		err = uc.Reject(ctx, app)
	default:
		return nil, apperror.New(apperror.CodeInvalidAction, "Invalid action. Must be: shortlist or reject", domain.ErrInvalidAction)
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

// Filter returns the applications matching every criteria field, in input order
func (uc *decisionUsecase) Filter(apps []*domain.Application, criteria map[string]string) []*domain.Application {
	filtered := make([]*domain.Application, 0, len(apps))
	for _, app := range apps {
		if app.Matches(criteria) {
			filtered = append(filtered, app)
		}
	}
	return filtered
}

// History returns the decision log, most recent last
func (uc *decisionUsecase) History() []domain.Decision {
	return uc.decisions.List()
}

// Last returns the most recent decision, if any
func (uc *decisionUsecase) Last() (domain.Decision, bool) {
	return uc.decisions.Last()
}
