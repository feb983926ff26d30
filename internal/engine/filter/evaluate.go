package filter

import (
	"time"

	"youthbridge/internal/domain/candidate"
	"youthbridge/internal/domain/job"
)

// Jobs returns the postings passing every active predicate, in input order.
// Ordering is the sorter's job; the evaluator never reorders.
func Jobs(postings []job.Posting, c Criteria, now time.Time) []job.Posting {
	preds := buildJobPredicates(c, now)
	if len(preds) == 0 {
		return postings
	}

	out := make([]job.Posting, 0, len(postings))
	for _, p := range postings {
		if jobPasses(p, preds) {
			out = append(out, p)
		}
	}
	return out
}

// Candidates filters profiles the same way, in input order.
func Candidates(profiles []candidate.Profile, c Criteria) []candidate.Profile {
	preds := buildCandidatePredicates(c)
	if len(preds) == 0 {
		return profiles
	}

	out := make([]candidate.Profile, 0, len(profiles))
	for _, p := range profiles {
		if candidatePasses(p, preds) {
			out = append(out, p)
		}
	}
	return out
}

func jobPasses(p job.Posting, preds []JobPredicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

func candidatePasses(p candidate.Profile, preds []CandidatePredicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}
