package usecase

import (
	"context"
	"go-application-tracker/internal/domain"
	"go-application-tracker/pkg/audit"
	"go-application-tracker/pkg/logger"
	"log/slog"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	audit           *audit.Logger
	log             *slog.Logger
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository, auditLog *audit.Logger, log *slog.Logger) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		audit:           auditOrNop(auditLog),
		log:             logger.OrDiscard(log),
	}
}

// Submit records a new application with status Submitted.
// Names and job ids are not required to be unique and nothing is validated.
func (uc *applicationUsecase) Submit(ctx context.Context, name, jobID, resumeLink string) *domain.Application {
	app := &domain.Application{
		Name:       name,
		JobID:      jobID,
		ResumeLink: resumeLink,
		Status:     domain.ApplicationStatusSubmitted,
	}
	uc.applicationRepo.Create(app)

	uc.audit.Record(ctx, audit.EventSubmitted, subjectOf(app), nil)
	uc.log.Info("Application submitted", "id", app.ID, "name", app.Name, "job_id", app.JobID, "total", uc.applicationRepo.Count())
	return app
}

// All returns every application in submission order
func (uc *applicationUsecase) All() []*domain.Application {
	return uc.applicationRepo.GetAll()
}

// FindByName returns the first application submitted under name
func (uc *applicationUsecase) FindByName(name string) (*domain.Application, error) {
	return uc.applicationRepo.GetByName(name)
}

// Count returns how many applications have been submitted
func (uc *applicationUsecase) Count() int {
	return uc.applicationRepo.Count()
}
