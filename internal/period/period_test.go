package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReconstruct(t *testing.T) {
	tests := []struct {
		name     string
		anchor   time.Time
		interval string
		count    int64
		wantEnd  time.Time
	}{
		{"month", date(2024, 1, 15), "month", 1, date(2024, 2, 15)},
		{"two weeks", date(2024, 1, 1), "week", 2, date(2024, 1, 15)},
		{"days", date(2024, 1, 30), "day", 3, date(2024, 2, 2)},
		{"year", date(2024, 3, 1), "year", 1, date(2025, 3, 1)},
		{"month end clamps in leap year", date(2024, 1, 31), "month", 1, date(2024, 2, 29)},
		{"month end clamps", date(2023, 1, 31), "month", 1, date(2023, 2, 28)},
		{"quarter from month end", date(2024, 11, 30), "month", 3, date(2025, 2, 28)},
		{"leap day plus a year", date(2024, 2, 29), "year", 1, date(2025, 2, 28)},
		{"unknown interval is monthly", date(2024, 4, 10), "fortnight", 1, date(2024, 5, 10)},
		{"zero count treated as one", date(2024, 1, 1), "week", 0, date(2024, 1, 8)},
		{"negative count treated as one", date(2024, 1, 1), "day", -5, date(2024, 1, 2)},
		{"case insensitive", date(2024, 1, 1), "WEEK", 1, date(2024, 1, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconstruct(tt.anchor, tt.interval, tt.count)
			assert.Equal(t, tt.anchor, got.Start)
			assert.Equal(t, tt.wantEnd, got.End)
		})
	}
}

func TestReconstructPreservesClock(t *testing.T) {
	anchor := time.Date(2024, 1, 31, 13, 45, 10, 500, time.UTC)
	got := Reconstruct(anchor, "month", 1)
	assert.Equal(t, time.Date(2024, 2, 29, 13, 45, 10, 500, time.UTC), got.End)
}

func TestReconstructDeterministic(t *testing.T) {
	anchors := []time.Time{date(2024, 1, 31), date(2023, 12, 31), date(2024, 6, 15)}
	intervals := []string{"day", "week", "month", "year", ""}

	for _, a := range anchors {
		for _, iv := range intervals {
			for count := int64(1); count <= 4; count++ {
				first := Reconstruct(a, iv, count)
				second := Reconstruct(a, iv, count)
				assert.Equal(t, first, second)
				assert.True(t, first.End.After(first.Start))
			}
		}
	}
}

func TestSelectAnchor(t *testing.T) {
	updated := date(2024, 3, 1)
	created := date(2024, 1, 1)
	now := date(2024, 6, 1)
	zero := time.Time{}

	tests := []struct {
		name       string
		updated    *time.Time
		created    *time.Time
		want       time.Time
		wantSource AnchorSource
	}{
		{"updated wins", &updated, &created, updated, AnchorUpdatedAt},
		{"created when no update", nil, &created, created, AnchorCreatedAt},
		{"zero update skipped", &zero, &created, created, AnchorCreatedAt},
		{"now as last resort", nil, nil, now, AnchorNow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, src := SelectAnchor(tt.updated, tt.created, now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, src)
		})
	}

	assert.True(t, AnchorNow.Fabricated())
	assert.False(t, AnchorUpdatedAt.Fabricated())
	assert.Equal(t, "anchor_created_at", AnchorCreatedAt.Source())
}

func TestFill(t *testing.T) {
	anchor := date(2024, 1, 1)
	start := date(2023, 12, 20)
	end := date(2024, 1, 20)
	ended := date(2024, 1, 5)

	t.Run("present values kept", func(t *testing.T) {
		p := Fill(&start, &end, &ended, anchor, "month", 1)
		assert.Equal(t, Period{Start: start, End: end}, p)
	})

	t.Run("ended at backs missing end", func(t *testing.T) {
		p := Fill(&start, nil, &ended, anchor, "month", 1)
		assert.Equal(t, Period{Start: start, End: ended}, p)
	})

	t.Run("all missing reconstructs", func(t *testing.T) {
		p := Fill(nil, nil, nil, anchor, "month", 1)
		assert.Equal(t, Period{Start: anchor, End: date(2024, 2, 1)}, p)
	})
}
