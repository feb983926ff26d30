// Package engine composes the filter, match, rank and page steps into the
// query pipeline the delivery layer re-runs on every criteria change or
// timer tick. Every call is a pure function of (records, query, now); no
// state survives between calls.
package engine

import (
	"time"

	"youthbridge/internal/domain/candidate"
	"youthbridge/internal/domain/job"
	"youthbridge/internal/engine/filter"
	"youthbridge/internal/engine/match"
	"youthbridge/internal/engine/page"
	"youthbridge/internal/engine/rank"
)

type JobQuery struct {
	Criteria filter.Criteria
	SortKey  string
	Page     int
	PageSize int
}

type JobResult struct {
	Items []job.Posting
	Meta  page.Meta
}

// Jobs runs evaluate -> sort -> paginate over a board's postings.
func Jobs(postings []job.Posting, q JobQuery, now time.Time) JobResult {
	kept := filter.Jobs(postings, q.Criteria, now)
	ordered := rank.Jobs(kept, q.SortKey)
	items, meta := page.Paginate(ordered, q.Page, q.PageSize)
	return JobResult{Items: items, Meta: meta}
}

type CandidateQuery struct {
	Criteria filter.Criteria
	SortKey  string
	Page     int
	PageSize int

	// TargetJob switches the pipeline into ranked-match mode: candidates
	// are scored against it, and MatchesOnly additionally drops non-matches.
	TargetJob   *job.Posting
	MatchesOnly bool
}

type CandidateResult struct {
	Items []match.CandidateMatch
	Meta  page.Meta
}

// Candidates runs evaluate -> score -> sort -> paginate over profiles.
// Without a target job the match results stay zero and bestMatch sorting
// degrades to input order, which is what the plain admin list wants.
func Candidates(profiles []candidate.Profile, q CandidateQuery) CandidateResult {
	kept := filter.Candidates(profiles, q.Criteria)

	var scored []match.CandidateMatch
	if q.TargetJob != nil {
		if q.MatchesOnly {
			scored = match.Matches(kept, *q.TargetJob)
		} else {
			scored = match.ScoreAll(kept, *q.TargetJob)
		}
	} else {
		scored = make([]match.CandidateMatch, 0, len(kept))
		for _, p := range kept {
			scored = append(scored, match.CandidateMatch{Profile: p})
		}
	}

	ordered := rank.CandidateMatches(scored, q.SortKey)
	items, meta := page.Paginate(ordered, q.Page, q.PageSize)
	return CandidateResult{Items: items, Meta: meta}
}
