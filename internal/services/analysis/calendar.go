package analysis

import "time"

// Business-day arithmetic over plain weekdays. Holidays are not modeled;
// Monday through Friday always count. Callers supplying synthetic dates must
// guarantee at least one weekday in any 7-day window or the walks below will
// not terminate.

// IsBusinessDay reports whether t falls on a weekday.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// FindBusinessDay adds numDays calendar days to start and snaps the result
// to a business day, walking one day at a time. The walk goes backward when
// numDays is negative, forward otherwise (including numDays == 0).
func FindBusinessDay(start time.Time, numDays int) time.Time {
	out := start.AddDate(0, 0, numDays)
	for !IsBusinessDay(out) {
		if numDays < 0 {
			out = out.AddDate(0, 0, -1)
		} else {
			out = out.AddDate(0, 0, 1)
		}
	}
	return out
}

// BusinessDays advances start by numDays business days, stepping one
// calendar day at a time and counting only the steps that land on a
// weekday. Unlike FindBusinessDay this counts weekday steps rather than
// applying a calendar offset and snapping once. numDays == 0 returns start.
func BusinessDays(start time.Time, numDays int) time.Time {
	cur := start
	added := 0
	target := numDays
	if target < 0 {
		target = -target
	}
	for added < target {
		if numDays < 0 {
			cur = cur.AddDate(0, 0, -1)
		} else {
			cur = cur.AddDate(0, 0, 1)
		}
		if IsBusinessDay(cur) {
			added++
		}
	}
	return cur
}
