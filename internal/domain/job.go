package domain

import (
	"context"
	"time"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusInterview JobStatus = "interview"
	JobStatusDeclined  JobStatus = "declined"
	JobStatusAccepted  JobStatus = "accepted"
)

// DateLayout is the calendar-date format used for dateApplied and interviewDate.
const DateLayout = "2006-01-02"

// Job is one tracked application.
type Job struct {
	ID            string    `json:"id" validate:"required"`
	Company       string    `json:"company" validate:"required"`
	Position      string    `json:"position" validate:"required"`
	Location      string    `json:"location" validate:"required"`
	JobType       JobType   `json:"jobType" validate:"required,oneof=full-time part-time contract internship"`
	JobStatus     JobStatus `json:"jobStatus" validate:"required,oneof=pending interview declined accepted"`
	DateApplied   string    `json:"dateApplied" validate:"required,iso_date"`
	InterviewDate string    `json:"interviewDate,omitempty" validate:"omitempty,iso_date"`
	Salary        string    `json:"salary,omitempty"`
	Description   string    `json:"description,omitempty"`
}

func (j Job) GetID() string { return j.ID }

// JobInput carries the user-editable fields of a Job.
type JobInput struct {
	Company       string    `json:"company" binding:"required"`
	Position      string    `json:"position" binding:"required"`
	Location      string    `json:"location" binding:"required"`
	JobType       JobType   `json:"jobType" binding:"required"`
	JobStatus     JobStatus `json:"jobStatus" binding:"required"`
	InterviewDate string    `json:"interviewDate"`
	Salary        string    `json:"salary"`
	Description   string    `json:"description"`
}

// JobFilters describes a view over the job collection. Empty JobType or
// JobStatus behave like "all".
type JobFilters struct {
	Search    string `json:"search" form:"search"`
	JobType   string `json:"jobType" form:"jobType"`
	JobStatus string `json:"jobStatus" form:"jobStatus"`
	SortBy    string `json:"sortBy" form:"sortBy"`
	SortOrder string `json:"sortOrder" form:"sortOrder"`
}

const FilterAll = "all"

const (
	SortByCompany     = "company"
	SortByPosition    = "position"
	SortByDateApplied = "dateApplied"

	SortAsc  = "asc"
	SortDesc = "desc"
)

type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type DashboardStats struct {
	PendingJobs      int `json:"pendingJobs"`
	InterviewSets    int `json:"interviewSets"`
	JobsDeclined     int `json:"jobsDeclined"`
	TotalJobs        int `json:"totalJobs"`
	DeclinedThisYear int `json:"declinedThisYear"`
}

// InterviewEvent is a calendar entry derived from a job in interview status.
type InterviewEvent struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Job   Job       `json:"resource"`
}

// JobRepository is the record store for jobs. Mutations return the new
// collection together with the persistence error, if any.
type JobRepository interface {
	Load(ctx context.Context) []Job
	Save(ctx context.Context, jobs []Job) error
	Add(ctx context.Context, job Job) ([]Job, error)
	Update(ctx context.Context, job Job) ([]Job, error)
	Delete(ctx context.Context, id string) ([]Job, error)
	GetByID(ctx context.Context, id string) (Job, bool)
	Seed(ctx context.Context, jobs []Job) ([]Job, error)
	Clear(ctx context.Context) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, input JobInput) (*Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	UpdateJob(ctx context.Context, id string, input JobInput) (*Job, error)
	DeleteJob(ctx context.Context, id string) error
	ListJobs(ctx context.Context, filters JobFilters, page, perPage int) ([]Job, Pagination, error)
	Stats(ctx context.Context) DashboardStats
	Interviews(ctx context.Context, now time.Time) (all []InterviewEvent, upcoming []InterviewEvent)
	ExportJobs(ctx context.Context, filters JobFilters) ([]byte, string, error)
	SeedJobs(ctx context.Context, jobs []Job) ([]Job, error)
}
