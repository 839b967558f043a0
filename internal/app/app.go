// Package app wires the repositories, usecases and dispatcher into one
// explicitly constructed application state.
package app

import (
	"go-application-tracker/config"
	"go-application-tracker/internal/delivery/cli"
	"go-application-tracker/internal/domain"
	"go-application-tracker/internal/repository/memory"
	"go-application-tracker/internal/usecase"
	"go-application-tracker/pkg/audit"
	"go-application-tracker/pkg/logger"
	"go-application-tracker/pkg/validation"
	"log/slog"
)

// App holds every component for one process. There is no package-level state;
// build one with New and pass it around.
type App struct {
	Applications domain.ApplicationRepository
	Queue        domain.ReviewQueueRepository
	Decisions    domain.DecisionRepository
	Stages       domain.StageRepository

	ApplicationUC domain.ApplicationUsecase
	ReviewUC      domain.ReviewUsecase
	DecisionUC    domain.DecisionUsecase
	SearchUC      domain.SearchUsecase
	TrackingUC    domain.TrackingUsecase
	ReportUC      domain.ReportUsecase

	Audit      *audit.Logger
	Dispatcher *cli.Dispatcher
}

// New builds the application state. auditLog and log may be nil.
func New(cfg *config.Config, auditLog *audit.Logger, log *slog.Logger) *App {
	log = logger.OrDiscard(log)
	if auditLog == nil {
		auditLog = audit.NewNop()
	}

	a := &App{
		Applications: memory.NewApplicationRepository(),
		Queue:        memory.NewReviewQueue(),
		Decisions:    memory.NewDecisionRepository(),
		Stages:       memory.NewStageRepository(),
		Audit:        auditLog,
	}

	a.ApplicationUC = usecase.NewApplicationUsecase(a.Applications, auditLog, log)
	a.ReviewUC = usecase.NewReviewUsecase(a.Queue, a.Applications, auditLog, log)
	a.DecisionUC = usecase.NewDecisionUsecase(a.Decisions, a.Applications,
		usecase.DecisionOptions{Strict: cfg.StrictDecisions}, auditLog, log)
	a.SearchUC = usecase.NewSearchUsecase()
	a.TrackingUC = usecase.NewTrackingUsecase(a.Stages, a.Applications, auditLog, log)
	a.ReportUC = usecase.NewReportUsecase(auditLog, log)

	a.Dispatcher = cli.NewDispatcher(cli.DispatcherDeps{
		ApplicationUC: a.ApplicationUC,
		ReviewUC:      a.ReviewUC,
		DecisionUC:    a.DecisionUC,
		SearchUC:      a.SearchUC,
		TrackingUC:    a.TrackingUC,
		ReportUC:      a.ReportUC,
		Audit:         auditLog,
		Validate:      validation.New(),
		Logger:        log,
	})
	return a
}
