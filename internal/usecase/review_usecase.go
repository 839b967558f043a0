package usecase

import (
	"context"
	"go-application-tracker/internal/domain"
	"go-application-tracker/pkg/audit"
	"go-application-tracker/pkg/logger"
	"log/slog"
)

type reviewUsecase struct {
	queue           domain.ReviewQueueRepository
	applicationRepo domain.ApplicationRepository
	audit           *audit.Logger
	log             *slog.Logger
}

// NewReviewUsecase creates a new review queue usecase
func NewReviewUsecase(queue domain.ReviewQueueRepository, appRepo domain.ApplicationRepository, auditLog *audit.Logger, log *slog.Logger) domain.ReviewUsecase {
	return &reviewUsecase{
		queue:           queue,
		applicationRepo: appRepo,
		audit:           auditOrNop(auditLog),
		log:             logger.OrDiscard(log),
	}
}

// Enqueue puts app at the tail of the review queue. Status is left untouched.
func (uc *reviewUsecase) Enqueue(ctx context.Context, app *domain.Application) {
	uc.queue.Enqueue(app)
	uc.audit.Record(ctx, audit.EventEnqueued, subjectOf(app), map[string]interface{}{"pending": uc.queue.Len()})
	uc.log.Debug("Application added to review queue", "id", app.ID, "name", app.Name, "job_id", app.JobID)
}

// EnqueueAll queues every stored application in submission order and
// returns how many were queued.
func (uc *reviewUsecase) EnqueueAll(ctx context.Context) int {
	apps := uc.applicationRepo.GetAll()
	for _, app := range apps {
		uc.Enqueue(ctx, app)
	}
	return len(apps)
}

// Dequeue takes the next application for review; false means the queue is empty
func (uc *reviewUsecase) Dequeue(ctx context.Context) (*domain.Application, bool) {
	app, ok := uc.queue.Dequeue()
	if !ok {
		uc.log.Debug("Review queue is empty")
		return nil, false
	}

	uc.audit.Record(ctx, audit.EventDequeued, subjectOf(app), map[string]interface{}{"pending": uc.queue.Len()})
	uc.log.Debug("Processing application", "id", app.ID, "name", app.Name, "job_id", app.JobID)
	return app, true
}

func (uc *reviewUsecase) Pending() int {
	return uc.queue.Len()
}

// Queued lists the pending applications from head to tail
func (uc *reviewUsecase) Queued() []*domain.Application {
	return uc.queue.Snapshot()
}
