package domain

import (
	"context"
	"time"
)

// Application status constants. Stage tracking may overwrite Status with any
// other label; only these three are reported as their own buckets.
const (
	ApplicationStatusSubmitted   = "Submitted"
	ApplicationStatusShortlisted = "Shortlisted"
	ApplicationStatusRejected    = "Rejected"
)

// CanonicalStatuses lists the report buckets in display order.
var CanonicalStatuses = []string{
	ApplicationStatusSubmitted,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
}

// IsCanonicalStatus reports whether status is one of CanonicalStatuses.
func IsCanonicalStatus(status string) bool {
	for _, s := range CanonicalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Searchable field keys
const (
	FieldID         = "id"
	FieldName       = "name"
	FieldJobID      = "job_id"
	FieldResumeLink = "resume_link"
	FieldStatus     = "status"
)

// Application is one applicant's submission. It is always handled through a
// pointer: the store, the review queue, the decision log and the stage tracker
// all hold the same instance, so a status change is seen by every holder.
type Application struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	JobID       string    `json:"job_id" yaml:"job_id"`
	ResumeLink  string    `json:"resume_link" yaml:"resume_link"`
	Status      string    `json:"status" yaml:"status"` // canonical status or any stage label
	SubmittedAt time.Time `json:"submitted_at" yaml:"submitted_at"`
}

// Field returns the value of the field named key. Unknown keys report false.
func (a *Application) Field(key string) (string, bool) {
	switch key {
	case FieldID:
		return a.ID, true
	case FieldName:
		return a.Name, true
	case FieldJobID:
		return a.JobID, true
	case FieldResumeLink:
		return a.ResumeLink, true
	case FieldStatus:
		return a.Status, true
	default:
		return "", false
	}
}

// Matches reports whether every criteria field equals the application's value.
// An empty criteria matches everything; an unknown field matches nothing.
func (a *Application) Matches(criteria map[string]string) bool {
	for key, want := range criteria {
		got, ok := a.Field(key)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// ApplicationRepository owns the insertion-ordered collection of applications.
// No deletion exists.
type ApplicationRepository interface {
	Create(app *Application)
	GetAll() []*Application
	GetByName(name string) (*Application, error)
	Count() int
}

// ApplicationUsecase defines submission and enumeration
type ApplicationUsecase interface {
	Submit(ctx context.Context, name, jobID, resumeLink string) *Application
	All() []*Application
	FindByName(name string) (*Application, error)
	Count() int
}
