// Package urgency derives the deadline state shown on job cards from a
// caller-supplied clock instant, so classification stays deterministic.
package urgency

import (
	"fmt"
	"time"
)

type State int

// Ordered least to most remaining time, so the numeric value doubles as the
// display-emphasis key.
const (
	Expired State = iota
	EndsToday
	EndingSoon
	Active
)

func (s State) String() string {
	switch s {
	case Expired:
		return "expired"
	case EndsToday:
		return "ends_today"
	case EndingSoon:
		return "ending_soon"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

type Classification struct {
	State    State
	DaysLeft int
	Label    string
}

// Classify buckets a deadline relative to now. Day arithmetic rounds the
// remaining duration up to whole days: a deadline 20 hours away counts as
// 1 day left, not 0. A zero deadline classifies as Expired.
func Classify(now, deadline time.Time) Classification {
	if deadline.IsZero() || deadline.Before(now) {
		return Classification{State: Expired, DaysLeft: 0, Label: "Expired"}
	}

	days := daysUntil(now, deadline)
	if days <= 1 || sameCalendarDay(now, deadline) {
		return Classification{State: EndsToday, DaysLeft: days, Label: "Ends today"}
	}
	if days <= 3 {
		return Classification{State: EndingSoon, DaysLeft: days, Label: fmt.Sprintf("%d days left", days)}
	}
	return Classification{State: Active, DaysLeft: days, Label: fmt.Sprintf("%d days left", days)}
}

// Selectable reports whether a record with this deadline can still be acted
// on (e.g. the apply button stays enabled).
func Selectable(now, deadline time.Time) bool {
	return Classify(now, deadline).State != Expired
}

func daysUntil(now, deadline time.Time) int {
	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return 0
	}
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) > 0 {
		days++
	}
	return days
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
