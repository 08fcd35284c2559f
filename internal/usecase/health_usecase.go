package usecase

import (
	"context"
	"time"
)

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}

type healthUsecase struct {
	now func() time.Time
}

func NewHealthUsecase() HealthUsecase {
	return &healthUsecase{now: time.Now}
}

func (u *healthUsecase) Check(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "Server is running",
		Timestamp: u.now().UTC(),
	}
}
