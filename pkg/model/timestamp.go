package model

import "time"

// TimestampLayout is ISO-8601 with an explicit numeric offset. Unlike time.RFC3339
// it never collapses a zero offset to "Z".
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// timestampLayoutMicros is used when the instant has a sub-second part; the
// fraction is then always six digits.
const timestampLayoutMicros = "2006-01-02T15:04:05.000000-07:00"

// FormatTimestamp truncates to microseconds and omits the fraction entirely
// when it is zero.
func FormatTimestamp(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(TimestampLayout)
	}
	return t.Format(timestampLayoutMicros)
}

// ParseTimestamp accepts both forms produced by FormatTimestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}
