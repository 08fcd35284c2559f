package jobquery

import (
	"sort"
	"time"

	"jobify-backend/internal/domain"
)

const (
	DefaultPerPage     = 6
	DefaultRecentCount = 5
	InterviewDuration  = time.Hour
	UpcomingWindow     = 7 * 24 * time.Hour
)

// Paginate slices one page out of jobs. Pages are 1-based; a page past the
// end is empty.
func Paginate(jobs []domain.Job, page, perPage int) ([]domain.Job, domain.Pagination) {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}

	total := len(jobs)
	meta := domain.Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	}

	start := (page - 1) * perPage
	if start >= total {
		return []domain.Job{}, meta
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return jobs[start:end], meta
}

func Stats(jobs []domain.Job) domain.DashboardStats {
	stats := domain.DashboardStats{TotalJobs: len(jobs)}
	for _, job := range jobs {
		switch job.JobStatus {
		case domain.JobStatusPending:
			stats.PendingJobs++
		case domain.JobStatusInterview:
			stats.InterviewSets++
		case domain.JobStatusDeclined:
			stats.JobsDeclined++
		}
	}
	return stats
}

// DeclinedByYear counts declined applications submitted in year.
func DeclinedByYear(jobs []domain.Job, year int) int {
	n := 0
	for _, job := range jobs {
		if job.JobStatus == domain.JobStatusDeclined && ParseDate(job.DateApplied).Year() == year {
			n++
		}
	}
	return n
}

// Recent returns the n most recently applied jobs.
func Recent(jobs []domain.Job, n int) []domain.Job {
	sorted := Apply(jobs, domain.JobFilters{SortBy: domain.SortByDateApplied, SortOrder: domain.SortDesc})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// InterviewEvents turns every job in interview status with a parseable
// interview date into a one-hour calendar event.
func InterviewEvents(jobs []domain.Job) []domain.InterviewEvent {
	events := make([]domain.InterviewEvent, 0)
	for _, job := range jobs {
		if job.JobStatus != domain.JobStatusInterview || job.InterviewDate == "" {
			continue
		}
		start := ParseDate(job.InterviewDate)
		if start.IsZero() {
			continue
		}
		events = append(events, domain.InterviewEvent{
			ID:    job.ID,
			Title: job.Position + " - " + job.Company,
			Start: start,
			End:   start.Add(InterviewDuration),
			Job:   job,
		})
	}
	return events
}

// Upcoming keeps the events starting within [now, now+window], earliest first.
func Upcoming(events []domain.InterviewEvent, now time.Time, window time.Duration) []domain.InterviewEvent {
	if window <= 0 {
		window = UpcomingWindow
	}
	limit := now.Add(window)

	upcoming := make([]domain.InterviewEvent, 0)
	for _, ev := range events {
		if !ev.Start.Before(now) && !ev.Start.After(limit) {
			upcoming = append(upcoming, ev)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Start.Before(upcoming[j].Start)
	})
	return upcoming
}
