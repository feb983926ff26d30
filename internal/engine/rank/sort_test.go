package rank

import (
	"testing"
	"time"

	"youthbridge/internal/domain/candidate"
	"youthbridge/internal/domain/job"
	"youthbridge/internal/engine/match"
)

func TestParseYears(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"5+ years", 5},
		{"10 years", 10},
		{"Senior", 0},
		{"", 0},
		{"about 3 years", 3},
		{"1 year", 1},
	}
	for _, c := range cases {
		if got := ParseYears(c.in); got != c.want {
			t.Fatalf("ParseYears(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestJobs_MostRecent(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	jobs := []job.Posting{
		{Title: "old", PostedAt: base},
		{Title: "new", PostedAt: base.Add(48 * time.Hour)},
		{Title: "mid", PostedAt: base.Add(24 * time.Hour)},
	}

	got := Jobs(jobs, KeyMostRecent)
	want := []string{"new", "mid", "old"}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Title, title)
		}
	}
	if jobs[0].Title != "old" {
		t.Fatalf("input slice was reordered")
	}
}

func TestJobs_UnknownKeyKeepsOrder(t *testing.T) {
	jobs := []job.Posting{{Title: "b"}, {Title: "a"}}
	got := Jobs(jobs, "nonsense")
	if got[0].Title != "b" || got[1].Title != "a" {
		t.Fatalf("unknown key must keep input order")
	}
}

func TestCandidates_AvailabilityTierOrder(t *testing.T) {
	profiles := []candidate.Profile{
		{Name: "month", Availability: candidate.AvailabilityOneMonthPlus},
		{Name: "now", Availability: candidate.AvailabilityImmediate},
		{Name: "weeks", Availability: candidate.AvailabilityOneToTwoWeeks},
	}
	got := Candidates(profiles, KeyAvailability)
	want := []string{"now", "weeks", "month"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestCandidates_ExperienceDescending(t *testing.T) {
	profiles := []candidate.Profile{
		{Name: "junior", Experience: "1 year"},
		{Name: "senior", Experience: "8+ years"},
		{Name: "unparsable", Experience: "Senior"},
	}
	got := Candidates(profiles, KeyExperience)
	if got[0].Name != "senior" || got[1].Name != "junior" || got[2].Name != "unparsable" {
		t.Fatalf("unexpected order: %s, %s, %s", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestCandidateMatches_BestMatchIdempotent(t *testing.T) {
	items := []match.CandidateMatch{
		{Profile: candidate.Profile{Name: "b"}, Result: match.Result{Score: 40}},
		{Profile: candidate.Profile{Name: "a"}, Result: match.Result{Score: 90}},
		{Profile: candidate.Profile{Name: "tie1"}, Result: match.Result{Score: 40}},
		{Profile: candidate.Profile{Name: "tie2"}, Result: match.Result{Score: 40}},
	}

	once := CandidateMatches(items, KeyBestMatch)
	twice := CandidateMatches(once, KeyBestMatch)

	if once[0].Profile.Name != "a" {
		t.Fatalf("highest score must come first, got %q", once[0].Profile.Name)
	}
	// Stability: equal scores keep prior relative order.
	if once[1].Profile.Name != "b" || once[2].Profile.Name != "tie1" || once[3].Profile.Name != "tie2" {
		t.Fatalf("ties reordered: %v", []string{once[1].Profile.Name, once[2].Profile.Name, once[3].Profile.Name})
	}
	for i := range once {
		if once[i].Profile.Name != twice[i].Profile.Name {
			t.Fatalf("sort not idempotent at %d", i)
		}
	}
}
