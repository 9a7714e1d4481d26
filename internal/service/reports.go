package service

import (
	"context"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
	"github.com/fleur-roar/sleep-tracker-bot/internal/query"
	"github.com/fleur-roar/sleep-tracker-bot/internal/report"
	"github.com/fleur-roar/sleep-tracker-bot/internal/storage"
)

// ReportOptions scopes analytics to a trailing window and controls chart
// rendering.
type ReportOptions struct {
	WindowDays    int
	FillEmptyDays bool
}

// windowed lists the user's events and trims them to the trailing window.
// The cutoff is derived from the query-time clock, not from the last event.
func windowed(ctx context.Context, repo storage.EventRepository, logger internal.Logger, clock internal.Clock, userID int64, days int) []internal.EventRecord {
	events := ListEvents(ctx, repo, logger, userID)
	cutoff := clock.Now().AddDate(0, 0, -days)
	return query.FilterSince(events, cutoff)
}

// BuildDailyChart renders the per-day chronological chart for the trailing
// window.
func BuildDailyChart(ctx context.Context, repo storage.EventRepository, logger internal.Logger, clock internal.Clock, userID int64, opts ReportOptions) string {
	events := windowed(ctx, repo, logger, clock, userID, opts.WindowDays)
	groups := query.GroupByDay(events)
	return report.RenderDailyChart(groups, report.ChartOptions{FillEmptyDays: opts.FillEmptyDays})
}

// BuildHourlyHistogram renders the hour-of-day histogram for the trailing
// window.
func BuildHourlyHistogram(ctx context.Context, repo storage.EventRepository, logger internal.Logger, clock internal.Clock, userID int64, opts ReportOptions) string {
	events := windowed(ctx, repo, logger, clock, userID, opts.WindowDays)
	return report.RenderHourlyHistogram(query.BucketByHourOfDay(events))
}

// ExportCSV renders the user's entire log as a CSV document.
func ExportCSV(ctx context.Context, repo storage.EventRepository, logger internal.Logger, userID int64) (string, error) {
	events := ListEvents(ctx, repo, logger, userID)
	return report.RenderCSV(query.ToCSVRows(events))
}
