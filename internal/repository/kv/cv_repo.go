package kv

import (
	"context"

	"jobify-backend/internal/domain"
	"jobify-backend/pkg/kvstore"
)

type cvRepo struct {
	*Collection[domain.CV]
}

func NewCVRepository(store kvstore.Store) domain.CVRepository {
	return &cvRepo{Collection: NewCollection[domain.CV](store, CVsKey)}
}

// SetActive flags id as the active CV and clears the flag everywhere else,
// in one load/save round trip.
func (r *cvRepo) SetActive(ctx context.Context, id string) ([]domain.CV, error) {
	return r.Mutate(ctx, func(cvs []domain.CV) []domain.CV {
		for i := range cvs {
			cvs[i].IsActive = cvs[i].ID == id
		}
		return cvs
	})
}

func (r *cvRepo) GetActive(ctx context.Context) (domain.CV, bool) {
	for _, cv := range r.Load(ctx) {
		if cv.IsActive {
			return cv, true
		}
	}
	return domain.CV{}, false
}
