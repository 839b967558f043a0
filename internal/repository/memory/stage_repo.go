package memory

import "go-application-tracker/internal/domain"

// stageRepo keeps tracked applications as an append-only slice of handles.
// Iterating it front to back gives the order stages were recorded in.
type stageRepo struct {
	nodes []*domain.Application
}

// NewStageRepository creates an empty stage tracker
func NewStageRepository() domain.StageRepository {
	return &stageRepo{}
}

func (r *stageRepo) Append(app *domain.Application) {
	r.nodes = append(r.nodes, app)
}

// Nodes returns the tracked records head to tail
func (r *stageRepo) Nodes() []*domain.Application {
	out := make([]*domain.Application, len(r.nodes))
	copy(out, r.nodes)
	return out
}

func (r *stageRepo) Len() int {
	return len(r.nodes)
}
