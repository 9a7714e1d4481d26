package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
	"github.com/fleur-roar/sleep-tracker-bot/internal/auth"
	"github.com/fleur-roar/sleep-tracker-bot/internal/service"
)

// PostEvent records one button tap. The timestamp comes from the server
// clock at acceptance, never from the client.
func PostEvent(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(auth.UserIDKey).(int64)

		var body service.EventRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateEventRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		rec, err := service.RecordEvent(c.Request.Context(), app.EventRepo(), app.Clock(), userID, internal.EventKind(body.Kind))
		if err != nil {
			if errors.Is(err, internal.ErrInvalidKind) {
				HandleError(c, app.Logger(), err, 400, "Unrecognized action")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to save event")
			return
		}

		HandleSuccess(c, app.Logger(), rec, map[string]any{
			"recorded_at": rec.OccurredAt.Format(internal.TimeLayout),
		})
	}
}

// GetEvents returns the user's full chronology as JSON, ascending by time.
func GetEvents(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(auth.UserIDKey).(int64)

		events := service.ListEvents(c.Request.Context(), app.EventRepo(), app.Logger(), userID)

		HandleSuccess(c, app.Logger(), events, map[string]any{"count": len(events)})
	}
}
