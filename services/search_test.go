package services_test

import (
	"testing"

	"github.com/lib/pq"

	"hustlehapa-server/models"
	"hustlehapa-server/services"
)

func searchFixture() []models.Job {
	return []models.Job{
		{
			ID:             "s-1",
			Title:          "Gardener Wanted",
			Employer:       "Green Thumb Estates",
			Location:       "Nairobi, Karen",
			Type:           models.TypeGardening,
			Description:    "Maintain a residential garden twice a week.",
			RequiredSkills: pq.StringArray{"Plant care", "Pruning"},
		},
		{
			ID:             "s-2",
			Title:          "Mjengo Helper",
			Employer:       "Construction Co.",
			Location:       "Nairobi, Westlands",
			Type:           models.TypeMjengo,
			Description:    "General site work on a three storey build.",
			RequiredSkills: pq.StringArray{"Physical strength"},
		},
	}
}

func TestSearchJobs(t *testing.T) {
	tests := []struct {
		name   string
		filter services.JobFilter
		want   []string
	}{
		// ── text ──
		{name: "text matches title", filter: services.JobFilter{Text: "helper"}, want: []string{"s-2"}},
		{name: "text matches description", filter: services.JobFilter{Text: "residential"}, want: []string{"s-1"}},
		{name: "text matches employer", filter: services.JobFilter{Text: "construction"}, want: []string{"s-2"}},
		{name: "text matches skill", filter: services.JobFilter{Text: "pruning"}, want: []string{"s-1"}},
		{name: "text is case insensitive", filter: services.JobFilter{Text: "GARDENER"}, want: []string{"s-1"}},
		{name: "text matches nothing", filter: services.JobFilter{Text: "plumbing"}, want: []string{}},

		// ── type ──
		{name: "type exact", filter: services.JobFilter{Type: "mjengo"}, want: []string{"s-2"}},
		{name: "type all matches everything", filter: services.JobFilter{Type: "all"}, want: []string{"s-1", "s-2"}},
		{name: "type empty matches everything", filter: services.JobFilter{}, want: []string{"s-1", "s-2"}},

		// ── location ──
		{name: "location substring", filter: services.JobFilter{Location: "karen"}, want: []string{"s-1"}},
		{name: "location city wide", filter: services.JobFilter{Location: "nairobi"}, want: []string{"s-1", "s-2"}},

		// ── conjunction ──
		{name: "text and type together", filter: services.JobFilter{Text: "helper", Type: "all"}, want: []string{"s-2"}},
		{name: "all fields must match", filter: services.JobFilter{Text: "helper", Type: "gardening"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.SearchJobs(searchFixture(), tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("SearchJobs() returned %d jobs, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("result[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestSearchJobsDoesNotMutateInput(t *testing.T) {
	jobs := searchFixture()
	_ = services.SearchJobs(jobs, services.JobFilter{Text: "helper"})

	if jobs[0].ID != "s-1" || jobs[1].ID != "s-2" {
		t.Error("input slice reordered by SearchJobs")
	}
}
