package utils

import "time"

// SafeTimezone returns the input unchanged when it names a resolvable IANA
// timezone, and falls back to "UTC" otherwise. It never fails, so callers
// can pass its result downstream without re-validating.
func SafeTimezone(tz string) string {
	if tz == "" {
		return "UTC"
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return "UTC"
	}
	return tz
}

// FormatInTimezone renders a UTC instant as a human-readable local date/time
// string with the zone abbreviation, e.g. "Tue, Mar 05 2024, 2:30 PM EST".
func FormatInTimezone(t time.Time, tz string) string {
	loc, err := time.LoadLocation(SafeTimezone(tz))
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format("Mon, Jan 02 2006, 3:04 PM MST")
}

// LocalParts extracts the wall-clock date ("YYYY-MM-DD") and 24-hour
// time-of-day that a UTC instant corresponds to in the given timezone.
// This is the only primitive that reaches into the timezone database;
// higher-level slot logic derives everything from it instead of attempting
// closed-form offset arithmetic.
func LocalParts(t time.Time, tz string) (localDate string, hour, minute int) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return local.Format("2006-01-02"), local.Hour(), local.Minute()
}

// RangesOverlap reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) overlap. Merely adjacent ranges (aEnd == bStart) do not.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
