package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/atenaxx1412/nutrition-ai-gpTs/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Svc *services.MealService
	Log *slog.Logger
}

func NewMealController(svc *services.MealService, log *slog.Logger) *MealController {
	return &MealController{Svc: svc, Log: log}
}

// AnalyzeImage godoc
// @Summary Log a meal from a photo
// @Description Recognizes the foods in an uploaded image and stores them as a meal
// @Tags meals
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Meal photo"
// @Param userId formData string true "Owner"
// @Param mealType formData string false "breakfast, lunch, dinner, snack or meal"
// @Param notes formData string false "Free-text notes"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /api/meals/analyze [post]
func (h *MealController) AnalyzeImage(c *gin.Context) {
	var image []byte
	fh, err := c.FormFile("image")
	switch {
	case err == nil:
		f, err := fh.Open()
		if err != nil {
			respondFail(c, http.StatusBadRequest, "Could not read image")
			return
		}
		defer f.Close()
		if image, err = io.ReadAll(f); err != nil {
			respondFail(c, http.StatusBadRequest, "Could not read image")
			return
		}
	case errors.Is(err, http.ErrMissingFile):
		// reported by validation together with the other fields
	default:
		respondFail(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	meal, analysis, err := h.Svc.AnalyzeImage(c.Request.Context(), services.ImageMealInput{
		UserID:   c.PostForm("userId"),
		MealType: c.PostForm("mealType"),
		Notes:    c.PostForm("notes"),
		Image:    image,
	})
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"mealId": meal.ID, "meal": meal, "analysis": analysis})
}

// LogText godoc
// @Summary Log a meal from a description
// @Tags meals
// @Accept json
// @Produce json
// @Param meal body services.TextMealInput true "Meal description"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /api/meals/analyze [put]
func (h *MealController) LogText(c *gin.Context) {
	var in services.TextMealInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	meal, err := h.Svc.LogText(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"mealId": meal.ID, "meal": meal})
}

// GetMeal godoc
// @Summary Get a meal
// @Tags meals
// @Produce json
// @Param mealId path string true "Meal ID"
// @Success 200 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/meals/{mealId} [get]
func (h *MealController) GetMeal(c *gin.Context) {
	meal, err := h.Svc.Get(c.Request.Context(), c.Param("mealId"))
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, meal)
}

// UpdateMeal godoc
// @Summary Partially update a meal
// @Tags meals
// @Accept json
// @Produce json
// @Param mealId path string true "Meal ID"
// @Param patch body services.MealPatch true "Fields to overwrite"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/meals/{mealId} [patch]
func (h *MealController) UpdateMeal(c *gin.Context) {
	var patch services.MealPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBody(c)
		return
	}
	meal, err := h.Svc.Update(c.Request.Context(), c.Param("mealId"), patch)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, meal)
}

// DeleteMeal godoc
// @Summary Delete a meal
// @Tags meals
// @Produce json
// @Param mealId path string true "Meal ID"
// @Success 200 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/meals/{mealId} [delete]
func (h *MealController) DeleteMeal(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("mealId")); err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondMessage(c, http.StatusOK, "Meal deleted")
}

// ListUserMeals godoc
// @Summary List a user's meals
// @Description Latest meals first. Either limit, or a from/to range (RFC3339 or YYYY-MM-DD).
// @Tags meals
// @Produce json
// @Param userId path string true "User ID"
// @Param limit query int false "Max meals (default 50)"
// @Param from query string false "Range start"
// @Param to query string false "Range end"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /api/users/{userId}/meals [get]
func (h *MealController) ListUserMeals(c *gin.Context) {
	userID := c.Param("userId")
	fromStr, toStr := c.Query("from"), c.Query("to")

	if fromStr != "" || toStr != "" {
		if fromStr == "" || toStr == "" {
			respondFail(c, http.StatusBadRequest, "from and to must be given together")
			return
		}
		from, err := parseTimeParam(fromStr, false)
		if err != nil {
			respondFail(c, http.StatusBadRequest, "invalid from date")
			return
		}
		to, err := parseTimeParam(toStr, true)
		if err != nil {
			respondFail(c, http.StatusBadRequest, "invalid to date")
			return
		}
		meals, err := h.Svc.ListByDateRange(c.Request.Context(), userID, from, to)
		if err != nil {
			respondError(c, h.Log, err)
			return
		}
		respondOK(c, http.StatusOK, meals)
		return
	}

	limit := services.DefaultMealListLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respondFail(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	meals, err := h.Svc.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, meals)
}
