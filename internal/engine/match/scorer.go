// Package match computes the 0-100 affinity between a candidate profile and
// a job posting from skill and education overlap.
package match

import (
	"math"
	"strings"

	"youthbridge/internal/domain/candidate"
	"youthbridge/internal/domain/job"

	"github.com/google/uuid"
)

const educationBonus = 20

// Result is recomputed on every query, never persisted.
type Result struct {
	CandidateID    uuid.UUID
	JobID          uuid.UUID
	Score          int
	MatchedSkills  []string
	EducationMatch bool
	IsMatch        bool
}

// Score compares a candidate against a job's requirements. A required skill
// counts as a hit when it contains a candidate skill name or vice versa,
// case-insensitively. Base score is hit ratio scaled to 0-100; an education
// hit adds a fixed bonus. IsMatch is the boolean "find matches" answer:
// at least one skill hit or an education hit.
func Score(p candidate.Profile, j job.Posting) Result {
	res := Result{
		CandidateID:   p.ID,
		JobID:         j.ID,
		MatchedSkills: make([]string, 0, len(j.RequiredSkills)),
	}

	hits := 0
	for _, req := range j.RequiredSkills {
		if skillHit(p.Skills, req) {
			hits++
			res.MatchedSkills = append(res.MatchedSkills, req)
		}
	}

	base := 0.0
	if len(j.RequiredSkills) > 0 {
		base = float64(hits) / float64(len(j.RequiredSkills)) * 100
	}

	res.EducationMatch = educationHit(p.Education, j.RequiredEducation)

	score := int(math.Round(base))
	if res.EducationMatch {
		score += educationBonus
	}
	if score > 100 {
		score = 100
	}
	res.Score = score
	res.IsMatch = hits > 0 || res.EducationMatch

	return res
}

// ScoreAll scores every candidate against one job, preserving input order.
func ScoreAll(profiles []candidate.Profile, j job.Posting) []CandidateMatch {
	out := make([]CandidateMatch, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, CandidateMatch{Profile: p, Result: Score(p, j)})
	}
	return out
}

// Matches keeps only the candidates that match at all (boolean mode).
func Matches(profiles []candidate.Profile, j job.Posting) []CandidateMatch {
	out := make([]CandidateMatch, 0, len(profiles))
	for _, cm := range ScoreAll(profiles, j) {
		if cm.Result.IsMatch {
			out = append(out, cm)
		}
	}
	return out
}

// CandidateMatch pairs a profile with its score against the target job.
type CandidateMatch struct {
	Profile candidate.Profile
	Result  Result
}

func skillHit(skills []candidate.Skill, required string) bool {
	req := strings.ToLower(strings.TrimSpace(required))
	if req == "" {
		return false
	}
	for _, s := range skills {
		name := strings.ToLower(strings.TrimSpace(s.Name))
		if name == "" {
			continue
		}
		if strings.Contains(name, req) || strings.Contains(req, name) {
			return true
		}
	}
	return false
}

func educationHit(field, required string) bool {
	f := strings.ToLower(strings.TrimSpace(field))
	r := strings.ToLower(strings.TrimSpace(required))
	if f == "" || r == "" {
		return false
	}
	return strings.Contains(f, r) || strings.Contains(r, f)
}
