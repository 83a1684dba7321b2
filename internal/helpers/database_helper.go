package helpers

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// StringToNullableText converts string to nullable pgtype.Text
func StringToNullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// TextValue returns the string held by t, or "" when t is null.
func TextValue(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// TimeToNullableTimestamptz converts time to nullable pgtype.Timestamptz
func TimeToNullableTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// UnixToNullableTimestamptz converts processor epoch seconds to a timestamp.
// Zero means the field was absent and maps to null.
func UnixToNullableTimestamptz(sec int64) pgtype.Timestamptz {
	if sec == 0 {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: time.Unix(sec, 0).UTC(), Valid: true}
}

// TimestamptzPtr returns a pointer to the held time, or nil when null.
func TimestamptzPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// PtrToNullableTimestamptz is the inverse of TimestamptzPtr.
func PtrToNullableTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}
