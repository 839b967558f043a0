package usecase

import "go-application-tracker/internal/domain"

type searchUsecase struct{}

// NewSearchUsecase creates the stateless query engine
func NewSearchUsecase() domain.SearchUsecase {
	return searchUsecase{}
}

// Search returns every application whose key field equals value.
// An unknown key yields an empty result.
func (searchUsecase) Search(apps []*domain.Application, key, value string) []*domain.Application {
	results := make([]*domain.Application, 0)
	for _, app := range apps {
		if got, ok := app.Field(key); ok && got == value {
			results = append(results, app)
		}
	}
	return results
}
