package api

import (
	"github.com/gin-gonic/gin"

	"github.com/fleur-roar/sleep-tracker-bot/internal/auth"
	"github.com/fleur-roar/sleep-tracker-bot/internal/config"
)

// NewRouter wires the dispatcher surface: every route resolves a user, calls
// the core, and renders the result back. No domain logic lives here.
func NewRouter(app App, provider auth.Provider, cfg *config.Config) *gin.Engine {
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(auth.AuthMiddleware(provider, cfg))

	r.POST("/events", PostEvent(app))
	r.GET("/events", GetEvents(app))
	r.GET("/events/chart", GetDailyChart(app))
	r.GET("/events/histogram", GetHourlyHistogram(app))
	r.GET("/events/export", GetCSVExport(app))

	return r
}
