package feed

import "time"

// IsRecent reports whether t falls within the trailing retention window of
// windowDays before now. Both sides are stripped to naive timestamps before
// the comparison.
func IsRecent(t, now time.Time, windowDays int) bool {
	cutoff := StripOffset(now).Add(-time.Duration(windowDays) * 24 * time.Hour)
	return !StripOffset(t).Before(cutoff)
}
