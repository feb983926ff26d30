package engine

import (
	"testing"
	"time"

	"youthbridge/internal/domain/candidate"
	"youthbridge/internal/domain/job"
	"youthbridge/internal/engine/filter"
	"youthbridge/internal/engine/rank"

	"github.com/google/uuid"
)

var pipeNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestJobs_FilterSortPaginate(t *testing.T) {
	postings := []job.Posting{
		{ID: uuid.New(), Title: "React Developer", EmploymentType: "Full-time",
			PostedAt: pipeNow.Add(-72 * time.Hour), Deadline: pipeNow.Add(5 * 24 * time.Hour)},
		{ID: uuid.New(), Title: "React Intern", EmploymentType: "Full-time",
			PostedAt: pipeNow.Add(-24 * time.Hour), Deadline: pipeNow.Add(5 * 24 * time.Hour)},
		{ID: uuid.New(), Title: "Plumber", EmploymentType: "Full-time",
			PostedAt: pipeNow.Add(-12 * time.Hour), Deadline: pipeNow.Add(5 * 24 * time.Hour)},
	}

	res := Jobs(postings, JobQuery{
		Criteria: filter.Criteria{SearchQuery: "react"},
		SortKey:  rank.KeyMostRecent,
		Page:     1,
		PageSize: 10,
	}, pipeNow)

	if res.Meta.TotalCount != 2 {
		t.Fatalf("expected 2 matching jobs, got %d", res.Meta.TotalCount)
	}
	if res.Items[0].Title != "React Intern" || res.Items[1].Title != "React Developer" {
		t.Fatalf("unexpected order: %q, %q", res.Items[0].Title, res.Items[1].Title)
	}
}

func TestJobs_InputNeverMutated(t *testing.T) {
	postings := []job.Posting{
		{Title: "old", PostedAt: pipeNow.Add(-72 * time.Hour)},
		{Title: "new", PostedAt: pipeNow.Add(-1 * time.Hour)},
	}
	_ = Jobs(postings, JobQuery{SortKey: rank.KeyMostRecent, Page: 1, PageSize: 10}, pipeNow)
	if postings[0].Title != "old" || postings[1].Title != "new" {
		t.Fatalf("pipeline reordered caller's slice")
	}
}

func TestCandidates_RankedMatchMode(t *testing.T) {
	target := job.Posting{ID: uuid.New(), RequiredSkills: []string{"React", "Redux"}}
	profiles := []candidate.Profile{
		{ID: uuid.New(), Name: "partial", Skills: []candidate.Skill{{Name: "React"}}},
		{ID: uuid.New(), Name: "none", Skills: []candidate.Skill{{Name: "Welding"}}},
		{ID: uuid.New(), Name: "full", Skills: []candidate.Skill{{Name: "React"}, {Name: "Redux"}}},
	}

	res := Candidates(profiles, CandidateQuery{
		SortKey:     rank.KeyBestMatch,
		Page:        1,
		PageSize:    10,
		TargetJob:   &target,
		MatchesOnly: true,
	})

	if res.Meta.TotalCount != 2 {
		t.Fatalf("expected 2 matches, got %d", res.Meta.TotalCount)
	}
	if res.Items[0].Profile.Name != "full" || res.Items[0].Result.Score != 100 {
		t.Fatalf("best match first, got %q score %d", res.Items[0].Profile.Name, res.Items[0].Result.Score)
	}
	if res.Items[1].Profile.Name != "partial" || res.Items[1].Result.Score != 50 {
		t.Fatalf("partial match second, got %q score %d", res.Items[1].Profile.Name, res.Items[1].Result.Score)
	}
}

func TestCandidates_PlainListWithoutTarget(t *testing.T) {
	profiles := []candidate.Profile{
		{Name: "slow", Availability: candidate.AvailabilityOneMonthPlus},
		{Name: "fast", Availability: candidate.AvailabilityImmediate},
	}

	res := Candidates(profiles, CandidateQuery{SortKey: rank.KeyAvailability, Page: 1, PageSize: 10})
	if res.Meta.TotalCount != 2 {
		t.Fatalf("expected both profiles, got %d", res.Meta.TotalCount)
	}
	if res.Items[0].Profile.Name != "fast" {
		t.Fatalf("availability order broken: %q first", res.Items[0].Profile.Name)
	}
	if res.Items[0].Result.Score != 0 || res.Items[0].Result.IsMatch {
		t.Fatalf("plain list must carry zero match results")
	}
}

func TestCandidates_Pagination(t *testing.T) {
	profiles := make([]candidate.Profile, 7)
	for i := range profiles {
		profiles[i] = candidate.Profile{ID: uuid.New(), Name: string(rune('a' + i))}
	}

	res := Candidates(profiles, CandidateQuery{Page: 3, PageSize: 3})
	if res.Meta.TotalPages != 3 || len(res.Items) != 1 {
		t.Fatalf("expected final page of 1, got pages=%d len=%d", res.Meta.TotalPages, len(res.Items))
	}
	if res.Items[0].Profile.Name != "g" {
		t.Fatalf("unexpected final-page item %q", res.Items[0].Profile.Name)
	}
}
