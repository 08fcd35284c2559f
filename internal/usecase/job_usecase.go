package usecase

import (
	"context"
	"strings"
	"time"

	"jobify-backend/internal/domain"
	"jobify-backend/internal/jobquery"
	"jobify-backend/pkg/apperror"
	"jobify-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	if validate == nil {
		validate = validation.New()
	}
	return &jobUsecase{
		jobRepo:  jobRepo,
		validate: validate,
		now:      time.Now,
	}
}

// CreateJob assigns the id and today's dateApplied, then prepends the job.
func (u *jobUsecase) CreateJob(ctx context.Context, input domain.JobInput) (*domain.Job, error) {
	job := applyJobInput(domain.Job{
		ID:          uuid.NewString(),
		DateApplied: u.now().Format(domain.DateLayout),
	}, input)

	if err := u.validate.Struct(job); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	if _, err := u.jobRepo.Add(ctx, job); err != nil {
		return nil, apperror.InternalMsg("Failed to save job", err)
	}
	return &job, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, ok := u.jobRepo.GetByID(ctx, id)
	if !ok {
		return nil, apperror.NotFound("Job not found")
	}
	return &job, nil
}

// UpdateJob replaces every editable field. id and dateApplied never change.
func (u *jobUsecase) UpdateJob(ctx context.Context, id string, input domain.JobInput) (*domain.Job, error) {
	existing, ok := u.jobRepo.GetByID(ctx, id)
	if !ok {
		return nil, apperror.NotFound("Job not found")
	}

	job := applyJobInput(domain.Job{ID: existing.ID, DateApplied: existing.DateApplied}, input)
	if err := u.validate.Struct(job); err != nil {
		return nil, apperror.BadRequest(validation.Message(err))
	}

	if _, err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, apperror.InternalMsg("Failed to save job", err)
	}
	return &job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	if _, ok := u.jobRepo.GetByID(ctx, id); !ok {
		return apperror.NotFound("Job not found")
	}
	if _, err := u.jobRepo.Delete(ctx, id); err != nil {
		return apperror.InternalMsg("Failed to delete job", err)
	}
	return nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, filters domain.JobFilters, page, perPage int) ([]domain.Job, domain.Pagination, error) {
	if page < 0 || perPage < 0 {
		return nil, domain.Pagination{}, apperror.BadRequest("page and perPage must not be negative")
	}
	view := jobquery.Apply(u.jobRepo.Load(ctx), normalizeFilters(filters))
	items, meta := jobquery.Paginate(view, page, perPage)
	return items, meta, nil
}

func (u *jobUsecase) Stats(ctx context.Context) domain.DashboardStats {
	jobs := u.jobRepo.Load(ctx)
	stats := jobquery.Stats(jobs)
	stats.DeclinedThisYear = jobquery.DeclinedByYear(jobs, u.now().Year())
	return stats
}

func (u *jobUsecase) Interviews(ctx context.Context, now time.Time) ([]domain.InterviewEvent, []domain.InterviewEvent) {
	all := jobquery.InterviewEvents(u.jobRepo.Load(ctx))
	return all, jobquery.Upcoming(all, now, jobquery.UpcomingWindow)
}

func (u *jobUsecase) ExportJobs(ctx context.Context, filters domain.JobFilters) ([]byte, string, error) {
	view := jobquery.Apply(u.jobRepo.Load(ctx), normalizeFilters(filters))
	return exportJobsExcel(view, u.now())
}

// SeedJobs stores jobs only when the collection is empty.
func (u *jobUsecase) SeedJobs(ctx context.Context, jobs []domain.Job) ([]domain.Job, error) {
	if jobs == nil {
		jobs = DemoJobs()
	}
	seeded, err := u.jobRepo.Seed(ctx, jobs)
	if err != nil {
		return seeded, apperror.InternalMsg("Failed to seed jobs", err)
	}
	return seeded, nil
}

func applyJobInput(job domain.Job, input domain.JobInput) domain.Job {
	job.Company = strings.TrimSpace(input.Company)
	job.Position = strings.TrimSpace(input.Position)
	job.Location = strings.TrimSpace(input.Location)
	job.JobType = input.JobType
	job.JobStatus = input.JobStatus
	job.InterviewDate = input.InterviewDate
	job.Salary = input.Salary
	job.Description = input.Description
	return job
}

// normalizeFilters fills blank fields from the default view.
func normalizeFilters(f domain.JobFilters) domain.JobFilters {
	def := jobquery.DefaultFilters()
	if f.JobType == "" {
		f.JobType = def.JobType
	}
	if f.JobStatus == "" {
		f.JobStatus = def.JobStatus
	}
	if f.SortBy == "" {
		f.SortBy = def.SortBy
	}
	if f.SortOrder == "" {
		f.SortOrder = def.SortOrder
	}
	return f
}
