package usecase

import (
	"context"
	"errors"

	"youthbridge/internal/domain/candidate"
	"youthbridge/internal/engine"
	"youthbridge/internal/engine/page"
	"youthbridge/internal/engine/rank"
	"youthbridge/internal/repository"

	"github.com/google/uuid"
)

type CandidateMatchParams struct {
	SortBy   string
	Page     int
	PageSize int
}

type CandidateMatchItem struct {
	Profile       candidate.Profile
	Score         int
	MatchedSkills []string
}

type CandidateMatchResult struct {
	Items []CandidateMatchItem
	Meta  page.Meta
}

type CandidateMatchUsecase interface {
	FindMatches(ctx context.Context, jobID uuid.UUID, params CandidateMatchParams) (CandidateMatchResult, error)
}

type CandidateMatch struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
}

func NewCandidateMatchUsecase(jobs repository.JobRepository, candidates repository.CandidateRepository) *CandidateMatch {
	return &CandidateMatch{jobs: jobs, candidates: candidates}
}

// FindMatches scores every candidate against one posting and returns the
// matching ones ranked, best first by default. A candidate matches when at
// least one required skill hits or their education field does.
func (u *CandidateMatch) FindMatches(ctx context.Context, jobID uuid.UUID, params CandidateMatchParams) (CandidateMatchResult, error) {
	if jobID == uuid.Nil {
		return CandidateMatchResult{}, ErrJobNotFound
	}
	if params.PageSize == 0 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize < 0 || params.PageSize > maxPageSize {
		return CandidateMatchResult{}, ErrInvalidInput
	}
	if params.SortBy == "" {
		params.SortBy = rank.KeyBestMatch
	}

	target, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return CandidateMatchResult{}, ErrJobNotFound
		}
		return CandidateMatchResult{}, ErrInternal
	}

	profiles, err := u.candidates.ListProfiles(ctx, workingSetLimit)
	if err != nil {
		return CandidateMatchResult{}, ErrInternal
	}

	res := engine.Candidates(profiles, engine.CandidateQuery{
		SortKey:     params.SortBy,
		Page:        params.Page,
		PageSize:    params.PageSize,
		TargetJob:   &target,
		MatchesOnly: true,
	})

	out := CandidateMatchResult{
		Items: make([]CandidateMatchItem, 0, len(res.Items)),
		Meta:  res.Meta,
	}
	for _, cm := range res.Items {
		out.Items = append(out.Items, CandidateMatchItem{
			Profile:       cm.Profile,
			Score:         cm.Result.Score,
			MatchedSkills: cm.Result.MatchedSkills,
		})
	}
	return out, nil
}
