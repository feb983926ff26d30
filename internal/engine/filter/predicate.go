package filter

import (
	"strings"
	"time"

	"youthbridge/internal/domain/candidate"
	"youthbridge/internal/domain/job"
	"youthbridge/internal/engine/urgency"
)

// JobPredicate is one boolean test over a posting. Builders emit one
// predicate per populated criteria field; the evaluator ANDs them.
type JobPredicate func(job.Posting) bool

type CandidatePredicate func(candidate.Profile) bool

func buildJobPredicates(c Criteria, now time.Time) []JobPredicate {
	preds := make([]JobPredicate, 0, 8)

	if q := normalize(c.SearchQuery); q != "" {
		preds = append(preds, func(p job.Posting) bool {
			if containsFold(p.Title, q) || containsFold(p.Organization, q) || containsFold(p.Description, q) {
				return true
			}
			for _, s := range p.RequiredSkills {
				if containsFold(s, q) {
					return true
				}
			}
			return false
		})
	}

	if loc := normalize(c.Location); loc != "" {
		preds = append(preds, func(p job.Posting) bool {
			return containsFold(p.Location, loc)
		})
	}

	if len(c.JobTypes) > 0 {
		types := c.JobTypes
		preds = append(preds, func(p job.Posting) bool {
			return memberFold(types, p.EmploymentType)
		})
	}

	if len(c.ExperienceLevels) > 0 {
		levels := c.ExperienceLevels
		preds = append(preds, func(p job.Posting) bool {
			return memberFold(levels, p.ExperienceLevel)
		})
	}

	if c.hasSalaryBand() {
		lo, hi := c.SalaryMin, c.SalaryMax
		preds = append(preds, func(p job.Posting) bool {
			// The posting's own range must lie entirely inside the band,
			// not merely overlap it.
			if p.SalaryMin < lo {
				return false
			}
			if hi > 0 && p.SalaryMax > hi {
				return false
			}
			return true
		})
	}

	if c.RemoteOnly {
		preds = append(preds, func(p job.Posting) bool {
			return p.Remote
		})
	}

	if cat := normalize(c.Category); cat != "" {
		preds = append(preds, func(p job.Posting) bool {
			return strings.EqualFold(strings.TrimSpace(p.Category), cat)
		})
	}

	if !c.DeadlineOnOrAfter.IsZero() {
		bound := c.DeadlineOnOrAfter
		preds = append(preds, func(p job.Posting) bool {
			return !p.Deadline.IsZero() && !p.Deadline.Before(bound)
		})
	}

	if c.SelectableOnly {
		preds = append(preds, func(p job.Posting) bool {
			return urgency.Selectable(now, p.Deadline)
		})
	}

	return preds
}

// Candidate profiles carry no employment type, salary or deadline, so only
// the text and location criteria translate into predicates here.
func buildCandidatePredicates(c Criteria) []CandidatePredicate {
	preds := make([]CandidatePredicate, 0, 2)

	if q := normalize(c.SearchQuery); q != "" {
		preds = append(preds, func(p candidate.Profile) bool {
			if containsFold(p.Name, q) || containsFold(p.Title, q) {
				return true
			}
			for _, s := range p.Skills {
				if containsFold(s.Name, q) {
					return true
				}
			}
			return false
		})
	}

	if loc := normalize(c.Location); loc != "" {
		preds = append(preds, func(p candidate.Profile) bool {
			return containsFold(p.Location, loc)
		})
	}

	return preds
}
