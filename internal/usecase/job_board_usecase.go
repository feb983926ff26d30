package usecase

import (
	"context"
	"log"
	"time"

	"youthbridge/internal/domain/job"
	"youthbridge/internal/engine"
	"youthbridge/internal/engine/filter"
	"youthbridge/internal/engine/page"
	"youthbridge/internal/engine/urgency"
	"youthbridge/internal/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
	workingSetLimit = 500
)

type JobBoardParams struct {
	Search           string
	Location         string
	JobTypes         []string
	ExperienceLevels []string
	SalaryMin        int
	SalaryMax        int
	RemoteOnly       bool
	Category         string
	IncludeExpired   bool
	SortBy           string
	Page             int
	PageSize         int
}

type JobBoardItem struct {
	Posting       job.Posting
	UrgencyState  string
	DeadlineLabel string
	DaysLeft      int
	Selectable    bool
}

type JobBoardResult struct {
	Items []JobBoardItem
	Meta  page.Meta
}

type JobBoardUsecase interface {
	ListJobs(ctx context.Context, params JobBoardParams) (JobBoardResult, error)
}

type JobBoard struct {
	jobs     repository.JobRepository
	cache    BoardCache
	logger   *log.Logger
	cacheTTL time.Duration
	now      func() time.Time
}

func NewJobBoardUsecase(jobs repository.JobRepository, cache BoardCache, logger *log.Logger, cacheTTL time.Duration) *JobBoard {
	return &JobBoard{
		jobs:     jobs,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// ListJobs runs the board pipeline over the current postings and annotates
// every item with its deadline urgency. Results are cached per normalized
// query; the TTL is bounded by the refresh interval so urgency labels stay
// at most one tick behind the clock.
func (u *JobBoard) ListJobs(ctx context.Context, params JobBoardParams) (JobBoardResult, error) {
	if params.PageSize == 0 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize < 0 || params.PageSize > maxPageSize {
		return JobBoardResult{}, ErrInvalidInput
	}
	if params.Page < 1 {
		params.Page = 1
	}

	cacheKey := BoardCacheKey(params)
	lockKey := BoardLockKey(cacheKey)

	if u.cache != nil {
		var cached JobBoardResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Board] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Board] Cache MISS: %s", cacheKey)
		}
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			// Another request is computing the same page; give it a moment
			// and re-check the cache before recomputing.
			time.Sleep(200 * time.Millisecond)
			var cached JobBoardResult
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				return cached, nil
			}
		}
	}

	postings, err := u.jobs.ListPostings(ctx, workingSetLimit)
	if err != nil {
		return JobBoardResult{}, ErrInternal
	}

	now := u.now()
	res := engine.Jobs(postings, engine.JobQuery{
		Criteria: boardCriteria(params),
		SortKey:  params.SortBy,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, now)

	out := JobBoardResult{
		Items: make([]JobBoardItem, 0, len(res.Items)),
		Meta:  res.Meta,
	}
	for _, p := range res.Items {
		c := urgency.Classify(now, p.Deadline)
		out.Items = append(out.Items, JobBoardItem{
			Posting:       p,
			UrgencyState:  c.State.String(),
			DeadlineLabel: c.Label,
			DaysLeft:      c.DaysLeft,
			Selectable:    c.State != urgency.Expired,
		})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, u.cacheTTL)
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return out, nil
}

func boardCriteria(params JobBoardParams) filter.Criteria {
	return filter.Criteria{
		SearchQuery:      params.Search,
		Location:         params.Location,
		JobTypes:         params.JobTypes,
		ExperienceLevels: params.ExperienceLevels,
		SalaryMin:        params.SalaryMin,
		SalaryMax:        params.SalaryMax,
		RemoteOnly:       params.RemoteOnly,
		Category:         params.Category,
		SelectableOnly:   !params.IncludeExpired,
	}
}
