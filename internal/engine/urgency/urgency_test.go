package urgency

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestClassify_Expired(t *testing.T) {
	c := Classify(testNow, testNow.Add(-time.Hour))
	if c.State != Expired {
		t.Fatalf("expected Expired, got %v", c.State)
	}
	if c.Label != "Expired" {
		t.Fatalf("unexpected label %q", c.Label)
	}
	if Selectable(testNow, testNow.Add(-time.Hour)) {
		t.Fatalf("expired deadline must not be selectable")
	}
}

func TestClassify_ZeroDeadlineIsExpired(t *testing.T) {
	c := Classify(testNow, time.Time{})
	if c.State != Expired {
		t.Fatalf("expected Expired for zero deadline, got %v", c.State)
	}
}

func TestClassify_TwentyHoursAwayEndsToday(t *testing.T) {
	c := Classify(testNow, testNow.Add(20*time.Hour))
	if c.State != EndsToday {
		t.Fatalf("expected EndsToday, got %v", c.State)
	}
	if c.Label != "Ends today" {
		t.Fatalf("unexpected label %q", c.Label)
	}
	if c.DaysLeft != 1 {
		t.Fatalf("expected 1 day left, got %d", c.DaysLeft)
	}
}

func TestClassify_SameCalendarDay(t *testing.T) {
	deadline := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	c := Classify(testNow, deadline)
	if c.State != EndsToday {
		t.Fatalf("expected EndsToday, got %v", c.State)
	}
}

func TestClassify_EndingSoon(t *testing.T) {
	for _, hrs := range []int{30, 48, 60, 72} {
		c := Classify(testNow, testNow.Add(time.Duration(hrs)*time.Hour))
		if c.State != EndingSoon {
			t.Fatalf("deadline %dh away: expected EndingSoon, got %v", hrs, c.State)
		}
	}
	c := Classify(testNow, testNow.Add(48*time.Hour))
	if c.Label != "2 days left" {
		t.Fatalf("unexpected label %q", c.Label)
	}
}

func TestClassify_Active(t *testing.T) {
	c := Classify(testNow, testNow.Add(10*24*time.Hour))
	if c.State != Active {
		t.Fatalf("expected Active, got %v", c.State)
	}
	if c.Label != "10 days left" {
		t.Fatalf("unexpected label %q", c.Label)
	}
}

// Pushing the deadline further out must never make the state more urgent.
func TestClassify_MonotonicInRemainingTime(t *testing.T) {
	prev := Expired
	for h := -24; h <= 24*14; h++ {
		c := Classify(testNow, testNow.Add(time.Duration(h)*time.Hour))
		if c.State < prev {
			t.Fatalf("state regressed at %dh: %v after %v", h, c.State, prev)
		}
		prev = c.State
	}
}
