package kv

import (
	"jobify-backend/internal/domain"
	"jobify-backend/pkg/kvstore"
)

type jobRepo struct {
	*Collection[domain.Job]
}

func NewJobRepository(store kvstore.Store) domain.JobRepository {
	return &jobRepo{Collection: NewCollection[domain.Job](store, JobsKey)}
}
