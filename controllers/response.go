package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/services"
	"github.com/atenaxx1412/nutrition-ai-gpTs/utils"

	"github.com/gin-gonic/gin"
)

// Every response uses the same envelope: {success, data?, error?, message?}.

func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func respondFail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// respondError maps service errors onto status codes. Upstream detail goes to
// the log only.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	var ve *services.ValidationError
	var ue *services.UpstreamError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   ve.Message,
			"fields":  ve.Fields,
		})
	case errors.Is(err, services.ErrNotFound):
		respondFail(c, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrInvalidPassword):
		respondFail(c, http.StatusUnauthorized, "Invalid password")
	case errors.Is(err, utils.ErrInvalidToken):
		respondFail(c, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, services.ErrAuthNotConfigured):
		log.Error("authentication not configured", "path", c.FullPath())
		respondFail(c, http.StatusInternalServerError, "Authentication not configured")
	case errors.As(err, &ue):
		log.Error("upstream failure", "op", ue.Op, "error", ue.Err, "path", c.FullPath())
		_ = c.Error(err)
		respondFail(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Error("unhandled error", "error", err, "path", c.FullPath())
		_ = c.Error(err)
		respondFail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func badBody(c *gin.Context) {
	respondFail(c, http.StatusBadRequest, "Invalid request body")
}

const dateLayout = "2006-01-02"

// parseTimeParam accepts RFC3339 or a bare date. A bare date used as an
// upper bound covers the whole day.
func parseTimeParam(v string, endOfDay bool) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
