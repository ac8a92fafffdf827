package feed

import (
	"testing"
	"time"
)

func TestIsRecentWithinWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	published := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	if !IsRecent(published, now, DefaultWindowDays) {
		t.Error("Entry from 4.5 months ago should be within the 365-day window")
	}
}

func TestIsRecentOutsideWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	published := now.Add(-400 * 24 * time.Hour)
	if IsRecent(published, now, DefaultWindowDays) {
		t.Error("Entry 400 days old should be excluded by the window")
	}
}

func TestIsRecentNowAlwaysPasses(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if !IsRecent(now, now, DefaultWindowDays) {
		t.Error("The run time itself must always pass the window check")
	}
}

func TestIsRecentBoundary(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cutoff := now.Add(-365 * 24 * time.Hour)

	if !IsRecent(cutoff, now, 365) {
		t.Error("Timestamp exactly at the cutoff should be admitted")
	}
	if IsRecent(cutoff.Add(-time.Second), now, 365) {
		t.Error("Timestamp one second before the cutoff should be excluded")
	}
}

func TestIsRecentMonotonic(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// If t1 is excluded, everything earlier than t1 must be too.
	t1 := now.Add(-400 * 24 * time.Hour)
	if IsRecent(t1, now, 365) {
		t.Fatal("t1 should be excluded")
	}

	for _, earlier := range []time.Time{
		t1.Add(-time.Second),
		t1.Add(-24 * time.Hour),
		t1.Add(-1000 * 24 * time.Hour),
	} {
		if IsRecent(earlier, now, 365) {
			t.Errorf("%v is earlier than excluded %v but was admitted", earlier, t1)
		}
	}
}

func TestIsRecentStripsOffsets(t *testing.T) {
	zone := time.FixedZone("EET", 2*3600)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Both sides are compared as naive wall-clock values.
	aware := time.Date(2024, 5, 30, 10, 0, 0, 0, zone)
	if !IsRecent(aware, now, 365) {
		t.Error("Offset-aware timestamp should be admitted after stripping")
	}
}
