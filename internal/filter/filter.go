// Package filter implements the listing search: a pure substring match over
// a job's searchable text, safe to apply to any snapshot of the catalog.
package filter

import (
	"strings"

	"github.com/garnizeh/jobfinder/pkg/models"
)

// Jobs returns the subsequence of jobs whose title, company, or skills
// contain query, case-insensitively. An empty query returns jobs unchanged.
func Jobs(jobs []models.Job, query string) []models.Job {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return jobs
	}

	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if Matches(j, q) {
			out = append(out, j)
		}
	}

	return out
}

// Matches reports whether the job's searchable text contains the
// already-lowercased query.
func Matches(j models.Job, query string) bool {
	text := strings.ToLower(j.Title + " " + j.Company + " " + strings.Join(j.Skills, " "))
	return strings.Contains(text, query)
}
