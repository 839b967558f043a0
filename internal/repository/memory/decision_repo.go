package memory

import "go-application-tracker/internal/domain"

type decisionRepo struct {
	entries []domain.Decision
}

// NewDecisionRepository creates an empty decision log
func NewDecisionRepository() domain.DecisionRepository {
	return &decisionRepo{}
}

func (r *decisionRepo) Append(d domain.Decision) {
	r.entries = append(r.entries, d)
}

// List returns the decisions oldest first, most recent last
func (r *decisionRepo) List() []domain.Decision {
	out := make([]domain.Decision, len(r.entries))
	copy(out, r.entries)
	return out
}

// Last returns the most recent decision
func (r *decisionRepo) Last() (domain.Decision, bool) {
	if len(r.entries) == 0 {
		return domain.Decision{}, false
	}
	return r.entries[len(r.entries)-1], true
}

func (r *decisionRepo) Len() int {
	return len(r.entries)
}
