// Package query holds the pure, stateless transformations over one user's
// ordered event sequence. Nothing here touches storage or the clock.
package query

import (
	"sort"
	"time"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
)

// SortEvents returns a copy sorted ascending by occurrence time. The sort is
// stable: records with identical timestamps keep their relative input order.
func SortEvents(events []internal.EventRecord) []internal.EventRecord {
	sorted := make([]internal.EventRecord, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.Before(sorted[j].OccurredAt)
	})
	return sorted
}

// FilterSince retains records with OccurredAt >= cutoff, preserving order.
// Filtering an already-filtered result with the same cutoff is a no-op.
func FilterSince(events []internal.EventRecord, cutoff time.Time) []internal.EventRecord {
	out := []internal.EventRecord{}
	for _, e := range events {
		if !e.OccurredAt.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// DayGroup is one calendar date and its events, ascending by time.
type DayGroup struct {
	Day    time.Time
	Events []internal.EventRecord
}

// GroupByDay partitions an ascending event sequence by calendar date.
// Only dates with at least one event appear; callers wanting a full grid
// must synthesize absent days themselves.
func GroupByDay(events []internal.EventRecord) []DayGroup {
	groups := []DayGroup{}
	for _, e := range events {
		y, m, d := e.OccurredAt.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, e.OccurredAt.Location())
		if n := len(groups); n > 0 && groups[n-1].Day.Equal(day) {
			groups[n-1].Events = append(groups[n-1].Events, e)
			continue
		}
		groups = append(groups, DayGroup{Day: day, Events: []internal.EventRecord{e}})
	}
	return groups
}

// BucketByHourOfDay counts events per hour of day across the whole input:
// bucket 14 aggregates every 2pm event in the window, not per-day. All 24
// buckets are always present.
func BucketByHourOfDay(events []internal.EventRecord) [24]int {
	var buckets [24]int
	for _, e := range events {
		buckets[e.OccurredAt.Hour()]++
	}
	return buckets
}

// CSVRow is one export row. Label falls back to "unknown" for retired kinds
// instead of failing the export.
type CSVRow struct {
	Kind      string
	Timestamp string
	Label     string
}

// ToCSVRows produces one row per event in input order.
func ToCSVRows(events []internal.EventRecord) []CSVRow {
	rows := make([]CSVRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, CSVRow{
			Kind:      string(e.Kind),
			Timestamp: e.OccurredAt.Format(internal.TimeLayout),
			Label:     e.Kind.Label(),
		})
	}
	return rows
}
