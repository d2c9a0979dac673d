package controllers

import (
	"log/slog"
	"net/http"

	"github.com/atenaxx1412/nutrition-ai-gpTs/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
	Log *slog.Logger
}

func NewUserController(svc *services.UserService, log *slog.Logger) *UserController {
	return &UserController{Svc: svc, Log: log}
}

// GetUser godoc
// @Summary Get a user with recent activity
// @Description Profile, meals of the last 7 days, active goal and intake stats
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/users/{userId} [get]
func (h *UserController) GetUser(c *gin.Context) {
	ov, err := h.Svc.Overview(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, ov)
}

// UpdateUser godoc
// @Summary Partially update a user profile
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param patch body services.ProfilePatch true "Fields to overwrite"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/users/{userId} [put]
func (h *UserController) UpdateUser(c *gin.Context) {
	var patch services.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBody(c)
		return
	}
	user, err := h.Svc.Update(c.Request.Context(), c.Param("userId"), patch)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, user)
}

// CreateUser godoc
// @Summary Create a user profile
// @Description The path id is ignored; the store assigns a new one.
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "Ignored"
// @Param profile body services.ProfileInput true "Profile"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /api/users/{userId} [post]
func (h *UserController) CreateUser(c *gin.Context) {
	var in services.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	user, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user, "message": "User profile created successfully"})
}
