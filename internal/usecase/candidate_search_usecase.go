package usecase

import (
	"context"
	"errors"

	"youthbridge/internal/domain/candidate"
	"youthbridge/internal/engine"
	"youthbridge/internal/engine/filter"
	"youthbridge/internal/engine/page"
	"youthbridge/internal/repository"

	"github.com/google/uuid"
)

type CandidateSearchParams struct {
	Search   string
	Location string
	SortBy   string
	Page     int
	PageSize int

	// TargetJobID makes bestMatch sorting meaningful: candidates are scored
	// against that posting but none are dropped.
	TargetJobID uuid.UUID
}

type CandidateSearchItem struct {
	Profile       candidate.Profile
	Score         int
	MatchedSkills []string
}

type CandidateSearchResult struct {
	Items []CandidateSearchItem
	Meta  page.Meta
}

type CandidateSearchUsecase interface {
	SearchCandidates(ctx context.Context, params CandidateSearchParams) (CandidateSearchResult, error)
}

type CandidateSearch struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
}

func NewCandidateSearchUsecase(jobs repository.JobRepository, candidates repository.CandidateRepository) *CandidateSearch {
	return &CandidateSearch{jobs: jobs, candidates: candidates}
}

// SearchCandidates backs the admin search-and-match screen: text/location
// filtering plus availability, experience or best-match ordering.
func (u *CandidateSearch) SearchCandidates(ctx context.Context, params CandidateSearchParams) (CandidateSearchResult, error) {
	if params.PageSize == 0 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize < 0 || params.PageSize > maxPageSize {
		return CandidateSearchResult{}, ErrInvalidInput
	}

	q := engine.CandidateQuery{
		Criteria: filter.Criteria{
			SearchQuery: params.Search,
			Location:    params.Location,
		},
		SortKey:  params.SortBy,
		Page:     params.Page,
		PageSize: params.PageSize,
	}

	if params.TargetJobID != uuid.Nil {
		target, err := u.jobs.GetByID(ctx, params.TargetJobID)
		if err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return CandidateSearchResult{}, ErrJobNotFound
			}
			return CandidateSearchResult{}, ErrInternal
		}
		q.TargetJob = &target
	}

	profiles, err := u.candidates.ListProfiles(ctx, workingSetLimit)
	if err != nil {
		return CandidateSearchResult{}, ErrInternal
	}

	res := engine.Candidates(profiles, q)

	out := CandidateSearchResult{
		Items: make([]CandidateSearchItem, 0, len(res.Items)),
		Meta:  res.Meta,
	}
	for _, cm := range res.Items {
		out.Items = append(out.Items, CandidateSearchItem{
			Profile:       cm.Profile,
			Score:         cm.Result.Score,
			MatchedSkills: cm.Result.MatchedSkills,
		})
	}
	return out, nil
}
