package filter

import (
	"strings"
	"time"
)

// Criteria is the filter form state for a board or search screen. Every
// field is independent; an empty/zero value imposes no constraint, which is
// what lets callers omit filters cheaply.
type Criteria struct {
	SearchQuery       string
	Location          string
	JobTypes          []string
	ExperienceLevels  []string
	SalaryMin         int
	SalaryMax         int
	RemoteOnly        bool
	Category          string
	DeadlineOnOrAfter time.Time
	SelectableOnly    bool
}

// IsZero reports whether no field constrains anything.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.SearchQuery) == "" &&
		strings.TrimSpace(c.Location) == "" &&
		len(c.JobTypes) == 0 &&
		len(c.ExperienceLevels) == 0 &&
		c.SalaryMin == 0 && c.SalaryMax == 0 &&
		!c.RemoteOnly &&
		strings.TrimSpace(c.Category) == "" &&
		c.DeadlineOnOrAfter.IsZero() &&
		!c.SelectableOnly
}

func (c Criteria) hasSalaryBand() bool {
	return c.SalaryMin > 0 || c.SalaryMax > 0
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// memberFold reports whether value is in set, ignoring case. An empty set
// never gets here; builders skip the predicate entirely.
func memberFold(set []string, value string) bool {
	for _, s := range set {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(value)) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
