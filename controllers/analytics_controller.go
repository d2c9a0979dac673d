package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
	Log *slog.Logger
}

func NewAnalyticsController(svc *services.AnalyticsService, log *slog.Logger) *AnalyticsController {
	return &AnalyticsController{Svc: svc, Log: log}
}

// GetWeeklyOverview godoc
// @Summary Daily intake against the active goal for one week
// @Tags analytics
// @Produce json
// @Param userId path string true "User ID"
// @Param weekStart query string false "First day (YYYY-MM-DD), defaults to this week's Monday"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /api/users/{userId}/analytics/weekly [get]
func (h *AnalyticsController) GetWeeklyOverview(c *gin.Context) {
	weekStart := startOfWeek(time.Now().UTC())
	if v := c.Query("weekStart"); v != "" {
		ws, err := time.Parse(dateLayout, v)
		if err != nil {
			respondFail(c, http.StatusBadRequest, "invalid weekStart")
			return
		}
		weekStart = ws
	}

	out, err := h.Svc.WeeklyOverview(c.Request.Context(), c.Param("userId"), weekStart)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, out)
}

// Monday-based.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}
