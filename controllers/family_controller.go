package controllers

import (
	"log/slog"
	"net/http"

	"github.com/atenaxx1412/nutrition-ai-gpTs/services"

	"github.com/gin-gonic/gin"
)

type FamilyController struct {
	Svc *services.FamilyService
	Log *slog.Logger
}

func NewFamilyController(svc *services.FamilyService, log *slog.Logger) *FamilyController {
	return &FamilyController{Svc: svc, Log: log}
}

// CreateFamily godoc
// @Summary Create a family
// @Tags families
// @Accept json
// @Produce json
// @Param family body services.FamilyInput true "Family"
// @Success 201 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /api/families [post]
func (h *FamilyController) CreateFamily(c *gin.Context) {
	var in services.FamilyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	fam, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusCreated, fam)
}

// GetFamily godoc
// @Summary Get a family with its members
// @Tags families
// @Produce json
// @Param familyId path string true "Family ID"
// @Success 200 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/families/{familyId} [get]
func (h *FamilyController) GetFamily(c *gin.Context) {
	fam, err := h.Svc.Get(c.Request.Context(), c.Param("familyId"))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, fam)
}

// ListUserFamilies godoc
// @Summary List the families a user belongs to
// @Tags families
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} gin.H
// @Router /api/users/{userId}/families [get]
func (h *FamilyController) ListUserFamilies(c *gin.Context) {
	fams, err := h.Svc.ListForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, fams)
}
