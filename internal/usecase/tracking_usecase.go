package usecase

import (
	"context"
	"go-application-tracker/internal/domain"
	"go-application-tracker/pkg/audit"
	"go-application-tracker/pkg/logger"
	"log/slog"
)

type trackingUsecase struct {
	stages          domain.StageRepository
	applicationRepo domain.ApplicationRepository
	audit           *audit.Logger
	log             *slog.Logger
}

// NewTrackingUsecase creates a new stage tracking usecase
func NewTrackingUsecase(stages domain.StageRepository, appRepo domain.ApplicationRepository, auditLog *audit.Logger, log *slog.Logger) domain.TrackingUsecase {
	return &trackingUsecase{
		stages:          stages,
		applicationRepo: appRepo,
		audit:           auditOrNop(auditLog),
		log:             logger.OrDiscard(log),
	}
}

// AddStage sets app's status to label and appends it to the tracker.
// Any label may follow any other.
func (uc *trackingUsecase) AddStage(ctx context.Context, app *domain.Application, label string) {
	previous := app.Status
	app.Status = label
	uc.stages.Append(app)

	uc.audit.Record(ctx, audit.EventStageChanged, subjectOf(app), map[string]interface{}{
		"previous_status": previous,
		"stage":           label,
	})
	uc.log.Info("Application moved to stage", "id", app.ID, "name", app.Name, "stage", label)
}

// Display pairs each tracked record's name with its status as of now
func (uc *trackingUsecase) Display() []domain.StageEntry {
	nodes := uc.stages.Nodes()
	entries := make([]domain.StageEntry, 0, len(nodes))
	for _, app := range nodes {
		entries = append(entries, domain.StageEntry{Name: app.Name, Status: app.Status})
	}
	return entries
}

// TrackAll records every stored application at its current status, then
// returns the full display.
func (uc *trackingUsecase) TrackAll(ctx context.Context) []domain.StageEntry {
	for _, app := range uc.applicationRepo.GetAll() {
		uc.AddStage(ctx, app, app.Status)
	}
	return uc.Display()
}
