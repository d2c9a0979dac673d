package controllers

import (
	"log/slog"
	"net/http"

	"github.com/atenaxx1412/nutrition-ai-gpTs/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Svc *services.GoalService
	Log *slog.Logger
}

func NewGoalController(svc *services.GoalService, log *slog.Logger) *GoalController {
	return &GoalController{Svc: svc, Log: log}
}

// ListGoals godoc
// @Summary List a user's goals, newest first
// @Tags goals
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} gin.H
// @Router /api/users/{userId}/goals [get]
func (h *GoalController) ListGoals(c *gin.Context) {
	goals, err := h.Svc.List(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, goals)
}

// CreateGoal godoc
// @Summary Create a goal
// @Description An active goal deactivates the user's other goals.
// @Tags goals
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param goal body services.GoalInput true "Goal"
// @Success 201 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /api/users/{userId}/goals [post]
func (h *GoalController) CreateGoal(c *gin.Context) {
	var in services.GoalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	goal, err := h.Svc.Create(c.Request.Context(), c.Param("userId"), in)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusCreated, goal)
}

// ActiveGoal godoc
// @Summary Get the active goal
// @Description data is null when the user has no active goal
// @Tags goals
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} gin.H
// @Router /api/users/{userId}/goals/active [get]
func (h *GoalController) ActiveGoal(c *gin.Context) {
	goal, err := h.Svc.Active(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, goal)
}

// UpdateGoal godoc
// @Summary Partially update a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goalId path string true "Goal ID"
// @Param patch body services.GoalPatch true "Fields to overwrite"
// @Success 200 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/goals/{goalId} [put]
func (h *GoalController) UpdateGoal(c *gin.Context) {
	var patch services.GoalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBody(c)
		return
	}
	goal, err := h.Svc.Update(c.Request.Context(), c.Param("goalId"), patch)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, goal)
}
