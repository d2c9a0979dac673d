package controllers

import (
	"log/slog"
	"net/http"

	"github.com/atenaxx1412/nutrition-ai-gpTs/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Svc *services.ProgressService
	Log *slog.Logger
}

func NewProgressController(svc *services.ProgressService, log *slog.Logger) *ProgressController {
	return &ProgressController{Svc: svc, Log: log}
}

// ListProgress godoc
// @Summary List body measurements, latest first
// @Tags progress
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} gin.H
// @Router /api/users/{userId}/progress [get]
func (h *ProgressController) ListProgress(c *gin.Context) {
	recs, err := h.Svc.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, recs)
}

// RecordProgress godoc
// @Summary Record body measurements
// @Tags progress
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param progress body services.ProgressInput true "Measurements"
// @Success 201 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /api/users/{userId}/progress [post]
func (h *ProgressController) RecordProgress(c *gin.Context) {
	var in services.ProgressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	rec, err := h.Svc.Record(c.Request.Context(), c.Param("userId"), in)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusCreated, rec)
}
