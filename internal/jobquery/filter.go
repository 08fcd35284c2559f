// Package jobquery computes derived views of the job collection: filtered and
// sorted lists, pages, dashboard counters and interview calendars. Everything
// here is pure; nothing touches storage.
package jobquery

import (
	"sort"
	"strings"
	"time"

	"jobify-backend/internal/domain"
)

// DefaultFilters is the view a fresh jobs page starts from.
func DefaultFilters() domain.JobFilters {
	return domain.JobFilters{
		Search:    "",
		JobType:   domain.FilterAll,
		JobStatus: domain.FilterAll,
		SortBy:    domain.SortByDateApplied,
		SortOrder: domain.SortDesc,
	}
}

// Apply returns the jobs matching f, ordered by f.SortBy and f.SortOrder.
// Equal keys keep their input order. The input slice is not modified.
func Apply(jobs []domain.Job, f domain.JobFilters) []domain.Job {
	search := strings.ToLower(f.Search)

	filtered := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if matches(job, f, search) {
			filtered = append(filtered, job)
		}
	}

	less := comparator(f.SortBy)
	desc := f.SortOrder == domain.SortDesc
	sort.SliceStable(filtered, func(i, j int) bool {
		if desc {
			return less(filtered[j], filtered[i])
		}
		return less(filtered[i], filtered[j])
	})

	return filtered
}

func matches(job domain.Job, f domain.JobFilters, search string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(job.Company), search) &&
		!strings.Contains(strings.ToLower(job.Position), search) &&
		!strings.Contains(strings.ToLower(job.Location), search) {
		return false
	}
	if f.JobType != "" && f.JobType != domain.FilterAll && string(job.JobType) != f.JobType {
		return false
	}
	if f.JobStatus != "" && f.JobStatus != domain.FilterAll && string(job.JobStatus) != f.JobStatus {
		return false
	}
	return true
}

// comparator returns a strict less-than on the sortBy field. Unknown fields
// sort by company.
func comparator(sortBy string) func(a, b domain.Job) bool {
	switch sortBy {
	case domain.SortByPosition:
		return func(a, b domain.Job) bool {
			return strings.ToLower(a.Position) < strings.ToLower(b.Position)
		}
	case domain.SortByDateApplied:
		return func(a, b domain.Job) bool {
			return ParseDate(a.DateApplied).Before(ParseDate(b.DateApplied))
		}
	default:
		return func(a, b domain.Job) bool {
			return strings.ToLower(a.Company) < strings.ToLower(b.Company)
		}
	}
}

// ParseDate reads a YYYY-MM-DD or RFC 3339 date. Unparsable input yields the zero time.
func ParseDate(s string) time.Time {
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
