package usecase

import (
	"go-application-tracker/internal/domain"
	"go-application-tracker/pkg/audit"
)

func subjectOf(app *domain.Application) audit.Subject {
	return audit.Subject{
		ApplicationID: app.ID,
		Name:          app.Name,
		JobID:         app.JobID,
	}
}

func auditOrNop(a *audit.Logger) *audit.Logger {
	if a != nil {
		return a
	}
	return audit.NewNop()
}
