package usecase

import (
	"context"
	"errors"
	"testing"

	"youthbridge/internal/domain/candidate"
	"youthbridge/internal/domain/job"
	"youthbridge/internal/engine/rank"

	"github.com/google/uuid"
)

func TestCandidateMatch_UnknownJob(t *testing.T) {
	uc := NewCandidateMatchUsecase(mockJobRepo{}, mockCandidateRepo{})
	_, err := uc.FindMatches(context.Background(), uuid.New(), CandidateMatchParams{})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestCandidateMatch_RankedBestFirst(t *testing.T) {
	jobID := uuid.New()
	uc := NewCandidateMatchUsecase(
		mockJobRepo{items: []job.Posting{{
			ID:             jobID,
			RequiredSkills: []string{"React", "Redux"},
		}}},
		mockCandidateRepo{items: []candidate.Profile{
			{ID: uuid.New(), Name: "partial", Skills: []candidate.Skill{{Name: "React"}}},
			{ID: uuid.New(), Name: "none", Skills: []candidate.Skill{{Name: "Welding"}}},
			{ID: uuid.New(), Name: "full", Skills: []candidate.Skill{{Name: "React"}, {Name: "Redux"}}},
		}},
	)

	res, err := uc.FindMatches(context.Background(), jobID, CandidateMatchParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Meta.TotalCount != 2 {
		t.Fatalf("expected 2 matches, got %d", res.Meta.TotalCount)
	}
	if res.Items[0].Profile.Name != "full" || res.Items[0].Score != 100 {
		t.Fatalf("expected full match first, got %q score=%d", res.Items[0].Profile.Name, res.Items[0].Score)
	}
	if res.Items[1].Score != 50 || len(res.Items[1].MatchedSkills) != 1 {
		t.Fatalf("unexpected partial match: %+v", res.Items[1])
	}
}

func TestCandidateSearch_AvailabilityOrder(t *testing.T) {
	uc := NewCandidateSearchUsecase(mockJobRepo{}, mockCandidateRepo{items: []candidate.Profile{
		{ID: uuid.New(), Name: "later", Availability: candidate.AvailabilityOneMonthPlus},
		{ID: uuid.New(), Name: "now", Availability: candidate.AvailabilityImmediate},
	}})

	res, err := uc.SearchCandidates(context.Background(), CandidateSearchParams{SortBy: rank.KeyAvailability})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Items[0].Profile.Name != "now" {
		t.Fatalf("expected immediate availability first, got %q", res.Items[0].Profile.Name)
	}
}

func TestCandidateSearch_TargetJobEnablesBestMatch(t *testing.T) {
	jobID := uuid.New()
	uc := NewCandidateSearchUsecase(
		mockJobRepo{items: []job.Posting{{ID: jobID, RequiredSkills: []string{"Excel"}}}},
		mockCandidateRepo{items: []candidate.Profile{
			{ID: uuid.New(), Name: "miss", Skills: []candidate.Skill{{Name: "Carpentry"}}},
			{ID: uuid.New(), Name: "hit", Skills: []candidate.Skill{{Name: "Excel"}}},
		}},
	)

	res, err := uc.SearchCandidates(context.Background(), CandidateSearchParams{
		SortBy:      rank.KeyBestMatch,
		TargetJobID: jobID,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Search mode keeps non-matches; they just rank last.
	if res.Meta.TotalCount != 2 {
		t.Fatalf("expected both candidates kept, got %d", res.Meta.TotalCount)
	}
	if res.Items[0].Profile.Name != "hit" || res.Items[0].Score != 100 {
		t.Fatalf("expected scored candidate first, got %q", res.Items[0].Profile.Name)
	}
}
