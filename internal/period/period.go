// Package period derives billing period boundaries when the processor omits them.
package period

import (
	"strings"
	"time"
)

// Interval is a recurrence unit as reported by the processor.
type Interval string

const (
	Day   Interval = "day"
	Week  Interval = "week"
	Month Interval = "month"
	Year  Interval = "year"
)

// AnchorSource names the tier of the anchor fallback chain that produced an anchor.
type AnchorSource string

const (
	AnchorUpdatedAt AnchorSource = "updated_at"
	AnchorCreatedAt AnchorSource = "created_at"
	AnchorNow       AnchorSource = "now"
)

// SourceProcessor marks period boundaries that came from the processor payload.
const SourceProcessor = "processor"

// Source is the value persisted alongside a reconstructed period.
func (a AnchorSource) Source() string {
	return "anchor_" + string(a)
}

// Fabricated reports whether the anchor is the wall clock rather than a stored timestamp.
func (a AnchorSource) Fabricated() bool {
	return a == AnchorNow
}

// Period is a closed billing window.
type Period struct {
	Start time.Time
	End   time.Time
}

// Reconstruct returns the period that starts at anchor and spans count intervals.
// Counts below 1 are treated as 1 and unknown intervals advance by months. Month and
// year arithmetic clamps to the last day of the target month, so 2024-01-31 plus one
// month is 2024-02-29.
func Reconstruct(anchor time.Time, interval string, count int64) Period {
	if count < 1 {
		count = 1
	}
	n := int(count)

	var end time.Time
	switch Interval(strings.ToLower(interval)) {
	case Day:
		end = anchor.AddDate(0, 0, n)
	case Week:
		end = anchor.AddDate(0, 0, 7*n)
	case Year:
		end = addMonths(anchor, 12*n)
	default:
		end = addMonths(anchor, n)
	}

	return Period{Start: anchor, End: end}
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	loc := t.Location()

	// day 0 of the following month is the last day of the target month
	last := time.Date(y, m+time.Month(n)+1, 0, 0, 0, 0, 0, loc).Day()
	if d > last {
		d = last
	}
	return time.Date(y, m+time.Month(n), d, hh, mm, ss, t.Nanosecond(), loc)
}

// SelectAnchor applies the fallback chain: the stored record's update time, then its
// creation time, then now.
func SelectAnchor(updatedAt, createdAt *time.Time, now time.Time) (time.Time, AnchorSource) {
	if updatedAt != nil && !updatedAt.IsZero() {
		return *updatedAt, AnchorUpdatedAt
	}
	if createdAt != nil && !createdAt.IsZero() {
		return *createdAt, AnchorCreatedAt
	}
	return now, AnchorNow
}

// Fill keeps the boundaries that are present and reconstructs the missing ones from
// anchor. A missing end falls back to endedAt before reconstruction.
func Fill(start, end, endedAt *time.Time, anchor time.Time, interval string, count int64) Period {
	p := Reconstruct(anchor, interval, count)
	if start != nil {
		p.Start = *start
	}
	switch {
	case end != nil:
		p.End = *end
	case endedAt != nil:
		p.End = *endedAt
	}
	return p
}
