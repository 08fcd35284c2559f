// Package cvquery searches the CV collection.
package cvquery

import (
	"strings"

	"jobify-backend/internal/domain"
)

// Search returns the CVs whose name, file name, description or any tag
// contains term, ignoring case. An empty term returns every CV.
func Search(cvs []domain.CV, term string) []domain.CV {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]domain.CV, len(cvs))
		copy(out, cvs)
		return out
	}

	out := make([]domain.CV, 0, len(cvs))
	for _, cv := range cvs {
		if matches(cv, term) {
			out = append(out, cv)
		}
	}
	return out
}

func matches(cv domain.CV, term string) bool {
	if strings.Contains(strings.ToLower(cv.Name), term) ||
		strings.Contains(strings.ToLower(cv.FileName), term) ||
		strings.Contains(strings.ToLower(cv.Description), term) {
		return true
	}
	for _, tag := range cv.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
