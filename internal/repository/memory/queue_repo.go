package memory

import "go-application-tracker/internal/domain"

type reviewQueue struct {
	items []*domain.Application
	head  int
}

// NewReviewQueue creates an empty FIFO review queue
func NewReviewQueue() domain.ReviewQueueRepository {
	return &reviewQueue{}
}

// Enqueue appends app at the tail. The same record may be queued more than once.
func (q *reviewQueue) Enqueue(app *domain.Application) {
	q.items = append(q.items, app)
}

// Dequeue removes and returns the head, or false on an empty queue
func (q *reviewQueue) Dequeue() (*domain.Application, bool) {
	if q.head == len(q.items) {
		return nil, false
	}

	app := q.items[q.head]
	q.items[q.head] = nil
	q.head++

	// Compact once the consumed prefix dominates the backing array.
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append([]*domain.Application(nil), q.items[q.head:]...)
		q.head = 0
	}
	return app, true
}

func (q *reviewQueue) Len() int {
	return len(q.items) - q.head
}

// Snapshot lists the queued applications from head to tail
func (q *reviewQueue) Snapshot() []*domain.Application {
	out := make([]*domain.Application, q.Len())
	copy(out, q.items[q.head:])
	return out
}
