// Package rank orders filtered collections with named stable comparators.
// Inputs are never reordered in place; callers always get a fresh slice.
package rank

import (
	"sort"
	"strings"
	"unicode"

	"youthbridge/internal/domain/candidate"
	"youthbridge/internal/domain/job"
	"youthbridge/internal/engine/match"
)

const (
	KeyBestMatch    = "bestMatch"
	KeyAvailability = "availability"
	KeyExperience   = "experience"
	KeyMostRecent   = "mostRecent"
)

// Jobs orders postings by the named comparator. Unknown keys keep input
// order; the sorter is total over its inputs.
func Jobs(postings []job.Posting, key string) []job.Posting {
	out := make([]job.Posting, len(postings))
	copy(out, postings)

	switch key {
	case KeyMostRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PostedAt.After(out[j].PostedAt)
		})
	}
	return out
}

// Candidates orders unscored profiles (admin search screen).
func Candidates(profiles []candidate.Profile, key string) []candidate.Profile {
	out := make([]candidate.Profile, len(profiles))
	copy(out, profiles)

	switch key {
	case KeyAvailability:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Availability < out[j].Availability
		})
	case KeyExperience:
		sort.SliceStable(out, func(i, j int) bool {
			return ParseYears(out[i].Experience) > ParseYears(out[j].Experience)
		})
	}
	return out
}

// CandidateMatches orders scored candidates; bestMatch is only meaningful
// here, where a score exists.
func CandidateMatches(items []match.CandidateMatch, key string) []match.CandidateMatch {
	out := make([]match.CandidateMatch, len(items))
	copy(out, items)

	switch key {
	case KeyBestMatch:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Result.Score > out[j].Result.Score
		})
	case KeyAvailability:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Profile.Availability < out[j].Profile.Availability
		})
	case KeyExperience:
		sort.SliceStable(out, func(i, j int) bool {
			return ParseYears(out[i].Profile.Experience) > ParseYears(out[j].Profile.Experience)
		})
	}
	return out
}

// ParseYears pulls the first run of digits out of a free-text experience
// string ("5+ years" -> 5). Unparsable text yields 0, never an error.
func ParseYears(s string) int {
	s = strings.TrimSpace(s)
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return atoiSafe(s[start:i])
		}
	}
	if start >= 0 {
		return atoiSafe(s[start:])
	}
	return 0
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return n
		}
		n = n*10 + int(r-'0')
		if n > 80 {
			// Years of experience; anything bigger is junk input.
			return 80
		}
	}
	return n
}
