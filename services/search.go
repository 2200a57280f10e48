package services

import (
	"strings"

	"hustlehapa-server/models"
)

// JobFilter narrows a job listing. Empty fields match everything; the
// type "all" is treated the same as empty.
type JobFilter struct {
	Text     string
	Type     string
	Location string
}

// SearchJobs returns the jobs matching every set filter field. The
// input slice is not modified.
func SearchJobs(jobs []models.Job, f JobFilter) []models.Job {
	out := make([]models.Job, 0)
	for _, job := range jobs {
		if !matchesFilter(job, f) {
			continue
		}
		out = append(out, job)
	}
	return out
}

func matchesFilter(job models.Job, f JobFilter) bool {
	if f.Text != "" && !matchesText(job, f.Text) {
		return false
	}
	if f.Type != "" && f.Type != "all" && string(job.Type) != f.Type {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location)) {
		return false
	}
	return true
}

// matchesText does a case-insensitive substring match over the job's
// title, description, employer name and required skills.
func matchesText(job models.Job, text string) bool {
	needle := strings.ToLower(text)
	if strings.Contains(strings.ToLower(job.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(job.Description), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(job.Employer), needle) {
		return true
	}
	for _, skill := range job.RequiredSkills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}
