package report

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
	"github.com/fleur-roar/sleep-tracker-bot/internal/query"
)

func ev(kind internal.EventKind, ts string) internal.EventRecord {
	t, err := time.ParseInLocation(internal.TimeLayout, ts, time.Local)
	if err != nil {
		panic(err)
	}
	return internal.EventRecord{UserID: 42, Kind: kind, OccurredAt: t}
}

func TestRenderDailyChart(t *testing.T) {
	groups := query.GroupByDay([]internal.EventRecord{
		ev(internal.KindSleep, "2024-01-01 23:10:00"),
		ev(internal.KindWakeUp, "2024-01-02 07:00:00"),
		ev(internal.KindBreakfast, "2024-01-02 07:15:00"),
	})

	chart := RenderDailyChart(groups, ChartOptions{})

	assert.Contains(t, chart, "2024-01-01 (Mon)")
	assert.Contains(t, chart, "2024-01-02 (Tue)")
	assert.Contains(t, chart, "23:10 - Sleep")
	assert.Contains(t, chart, "07:00 - Wake up")
	assert.Contains(t, chart, "07:15 - Breakfast")
	assert.Contains(t, chart, "Total: 3 events across 2 days")
}

func TestRenderDailyChartEmpty(t *testing.T) {
	chart := RenderDailyChart(nil, ChartOptions{})
	assert.Equal(t, NoEventsMessage, chart)
}

func TestRenderDailyChartFillEmptyDays(t *testing.T) {
	groups := query.GroupByDay([]internal.EventRecord{
		ev(internal.KindSleep, "2024-01-01 23:10:00"),
		ev(internal.KindLunch, "2024-01-04 13:00:00"),
	})

	chart := RenderDailyChart(groups, ChartOptions{FillEmptyDays: true})

	assert.Contains(t, chart, "2024-01-02 (Tue)")
	assert.Contains(t, chart, "2024-01-03 (Wed)")
	assert.Contains(t, chart, "(no events)")
	// Synthesized days never count toward the distinct-day total.
	assert.Contains(t, chart, "Total: 2 events across 2 days")
}

func TestRenderHourlyHistogram(t *testing.T) {
	var buckets [24]int
	buckets[23] = 1
	buckets[7] = 2

	out := RenderHourlyHistogram(buckets)

	assert.Contains(t, out, "07:00 "+strings.Repeat("▇", 10)+" 2 events")
	assert.Contains(t, out, "23:00 "+strings.Repeat("▇", 5)+" 1 events")
	assert.Contains(t, out, "00:00  0 events")
	assert.Contains(t, out, "Total: 3 events, most active hour: 07:00")
	assert.Equal(t, 24, strings.Count(out, "events\n"))
}

func TestRenderHourlyHistogramTieBreak(t *testing.T) {
	// Equal maxima resolve to the lowest hour.
	var buckets [24]int
	buckets[9] = 3
	buckets[18] = 3

	out := RenderHourlyHistogram(buckets)

	assert.Contains(t, out, "most active hour: 09:00")
}

func TestRenderHourlyHistogramEmpty(t *testing.T) {
	var buckets [24]int
	out := RenderHourlyHistogram(buckets)
	assert.Equal(t, NoEventsMessage, out)
}

func TestRenderCSVRoundTrip(t *testing.T) {
	events := []internal.EventRecord{
		ev(internal.KindSleep, "2024-01-01 23:10:00"),
		ev(internal.KindWakeUp, "2024-01-02 07:00:00"),
	}

	doc, err := RenderCSV(query.ToCSVRows(events))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(doc)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, CSVHeader, records[0])
	assert.Equal(t, []string{"sleep", "2024-01-01 23:10:00", "Sleep"}, records[1])
	assert.Equal(t, []string{"wake_up", "2024-01-02 07:00:00", "Wake up"}, records[2])
}

func TestRenderCSVEmptyStillHasHeader(t *testing.T) {
	doc, err := RenderCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(doc)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, CSVHeader, records[0])
}
