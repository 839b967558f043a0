// Package memory holds the in-process repositories. They keep pointers to the
// shared Application records and never copy them.
package memory

import (
	"go-application-tracker/internal/domain"
	"time"

	"github.com/google/uuid"
)

type applicationRepo struct {
	apps []*domain.Application
	now  func() time.Time
}

// NewApplicationRepository creates an empty application store
func NewApplicationRepository() domain.ApplicationRepository {
	return &applicationRepo{now: time.Now}
}

// Create appends app, filling in ID, SubmittedAt and Status when unset
func (r *applicationRepo) Create(app *domain.Application) {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if app.SubmittedAt.IsZero() {
		app.SubmittedAt = r.now()
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusSubmitted
	}

	r.apps = append(r.apps, app)
}

// GetAll returns every application in submission order.
// The slice is fresh; the records are shared.
func (r *applicationRepo) GetAll() []*domain.Application {
	out := make([]*domain.Application, len(r.apps))
	copy(out, r.apps)
	return out
}

// GetByName returns the first application submitted under name
func (r *applicationRepo) GetByName(name string) (*domain.Application, error) {
	for _, app := range r.apps {
		if app.Name == name {
			return app, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *applicationRepo) Count() int {
	return len(r.apps)
}
