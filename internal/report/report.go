// Package report formats query results into display text and CSV documents.
// It never truncates: chunking long output is a transport concern.
package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"strings"

	"github.com/fleur-roar/sleep-tracker-bot/internal/query"
)

// NoEventsMessage is returned instead of an empty chart or histogram.
const NoEventsMessage = "No events in this window."

const histogramBarScale = 10

// ChartOptions controls daily chart rendering.
type ChartOptions struct {
	// FillEmptyDays synthesizes placeholder blocks for dates between the
	// first and last group that have no events.
	FillEmptyDays bool
}

// RenderDailyChart renders one block per day: a date header, one line per
// event, and a totals footer.
func RenderDailyChart(groups []query.DayGroup, opts ChartOptions) string {
	if len(groups) == 0 {
		return NoEventsMessage
	}

	if opts.FillEmptyDays {
		groups = fillEmptyDays(groups)
	}

	var b strings.Builder
	total := 0
	activeDays := 0
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (%s)\n", g.Day.Format("2006-01-02"), g.Day.Format("Mon"))
		if len(g.Events) == 0 {
			b.WriteString("  (no events)\n")
			continue
		}
		activeDays++
		for _, e := range g.Events {
			total++
			fmt.Fprintf(&b, "%s %s - %s\n", e.Kind.Glyph(), e.OccurredAt.Format("15:04"), e.Kind.Label())
		}
	}
	fmt.Fprintf(&b, "\nTotal: %d events across %d days", total, activeDays)
	return b.String()
}

// fillEmptyDays inserts empty groups for every date missing between the
// first and last group. Input groups are ascending by date.
func fillEmptyDays(groups []query.DayGroup) []query.DayGroup {
	filled := []query.DayGroup{groups[0]}
	for _, g := range groups[1:] {
		for d := filled[len(filled)-1].Day.AddDate(0, 0, 1); d.Before(g.Day); d = d.AddDate(0, 0, 1) {
			filled = append(filled, query.DayGroup{Day: d})
		}
		filled = append(filled, g)
	}
	return filled
}

// RenderHourlyHistogram renders one line per hour 00-23 with a bar whose
// length is proportional to the busiest hour, plus a totals footer. Ties for
// the most active hour resolve to the lowest hour number.
func RenderHourlyHistogram(buckets [24]int) string {
	total := 0
	maxCount := 0
	peakHour := 0
	for h, c := range buckets {
		total += c
		if c > maxCount {
			maxCount = c
			peakHour = h
		}
	}
	if total == 0 {
		return NoEventsMessage
	}

	var b strings.Builder
	for h, c := range buckets {
		bar := strings.Repeat("▇", barLength(c, maxCount))
		if bar == "" {
			fmt.Fprintf(&b, "%02d:00  %d events\n", h, c)
		} else {
			fmt.Fprintf(&b, "%02d:00 %s %d events\n", h, bar, c)
		}
	}
	fmt.Fprintf(&b, "\nTotal: %d events, most active hour: %02d:00", total, peakHour)
	return b.String()
}

func barLength(count, maxCount int) int {
	if maxCount == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(maxCount) * histogramBarScale))
}

// CSVHeader is always present, even for an empty export.
var CSVHeader = []string{"kind", "timestamp", "description"}

// RenderCSV produces a UTF-8 CSV document: header, then one row per input
// row in order.
func RenderCSV(rows []query.CSVRow) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(CSVHeader); err != nil {
		return "", err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Kind, r.Timestamp, r.Label}); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}
