package domain

import (
	"context"
	"time"
)

// Decision labels recorded in the decision log
const (
	DecisionShortlisted = ApplicationStatusShortlisted
	DecisionRejected    = ApplicationStatusRejected
)

// Decision actions accepted from callers
const (
	ActionShortlist = "shortlist"
	ActionReject    = "reject"
)

// Decision is one entry of the decision log. Application is the shared record,
// so its Status may have moved on since the decision was made.
type Decision struct {
	Application *Application `json:"application"`
	Label       string       `json:"label"`
	DecidedAt   time.Time    `json:"decided_at"`
}

// StageEntry is one line of the stage tracking display.
type StageEntry struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ReviewQueueRepository is a FIFO of application references.
type ReviewQueueRepository interface {
	Enqueue(app *Application)
	// Dequeue returns false when the queue is empty.
	Dequeue() (*Application, bool)
	Len() int
	Snapshot() []*Application
}

// DecisionRepository is the append-only decision history, most recent last.
type DecisionRepository interface {
	Append(d Decision)
	List() []Decision
	Last() (Decision, bool)
	Len() int
}

// StageRepository is the append-only tracking sequence.
type StageRepository interface {
	Append(app *Application)
	Nodes() []*Application
	Len() int
}

// ReviewUsecase orders applications for review
type ReviewUsecase interface {
	Enqueue(ctx context.Context, app *Application)
	EnqueueAll(ctx context.Context) int
	Dequeue(ctx context.Context) (*Application, bool)
	Pending() int
	Queued() []*Application
}

// DecisionUsecase shortlists, rejects and filters applications
type DecisionUsecase interface {
	Shortlist(ctx context.Context, app *Application) error
	Reject(ctx context.Context, app *Application) error
	Decide(ctx context.Context, name, action string) (*Application, error)
	Filter(apps []*Application, criteria map[string]string) []*Application
	History() []Decision
	Last() (Decision, bool)
}

// SearchUsecase looks applications up by a single field
type SearchUsecase interface {
	Search(apps []*Application, key, value string) []*Application
}

// TrackingUsecase records stage transitions
type TrackingUsecase interface {
	AddStage(ctx context.Context, app *Application, label string)
	Display() []StageEntry
	TrackAll(ctx context.Context) []StageEntry
}
