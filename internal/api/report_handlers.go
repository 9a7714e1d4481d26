package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fleur-roar/sleep-tracker-bot/internal/auth"
	"github.com/fleur-roar/sleep-tracker-bot/internal/service"
)

// reportOptions applies the optional ?days= override to the configured
// defaults.
func reportOptions(c *gin.Context, app App) service.ReportOptions {
	opts := app.ReportDefaults()
	if raw := c.Query("days"); raw != "" {
		if days, err := strconv.Atoi(raw); err == nil && days > 0 {
			opts.WindowDays = days
		}
	}
	return opts
}

// GetDailyChart renders the trailing-window chronological chart as plain
// text. Chunking long charts is the transport's job, not the renderer's.
func GetDailyChart(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(auth.UserIDKey).(int64)

		chart := service.BuildDailyChart(c.Request.Context(), app.EventRepo(), app.Logger(), app.Clock(), userID, reportOptions(c, app))
		c.String(http.StatusOK, chart)
	}
}

// GetHourlyHistogram renders the hour-of-day histogram as plain text.
func GetHourlyHistogram(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(auth.UserIDKey).(int64)

		histogram := service.BuildHourlyHistogram(c.Request.Context(), app.EventRepo(), app.Logger(), app.Clock(), userID, reportOptions(c, app))
		c.String(http.StatusOK, histogram)
	}
}

// GetCSVExport returns the user's entire log as a CSV attachment.
func GetCSVExport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(auth.UserIDKey).(int64)

		doc, err := service.ExportCSV(c.Request.Context(), app.EventRepo(), app.Logger(), userID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to export events")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="events.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(doc))
	}
}
