package controllers

import (
	"log/slog"
	"net/http"

	"github.com/atenaxx1412/nutrition-ai-gpTs/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
	Log *slog.Logger
}

func NewAuthController(svc *services.AuthService, log *slog.Logger) *AuthController {
	return &AuthController{Svc: svc, Log: log}
}

type validateRequest struct {
	Password string `json:"password"`
}

// Validate godoc
// @Summary Check the access password
// @Description Returns a bearer token when token signing is configured
// @Tags auth
// @Accept json
// @Produce json
// @Param body body validateRequest true "Password"
// @Success 200 {object} gin.H
// @Failure 401 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /api/auth/validate [post]
func (h *AuthController) Validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	res, err := h.Svc.Validate(req.Password)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	respondOK(c, http.StatusOK, res)
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} gin.H
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}

// NoRoute answers OPTIONS on any path with 200 so same-origin or non-CORS
// preflights succeed; cross-origin ones are finished earlier by the cors
// middleware. Everything else gets the 404 envelope.
func NoRoute(c *gin.Context) {
	if c.Request.Method == http.MethodOptions {
		c.Header("Allow", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Status(http.StatusOK)
		return
	}
	respondFail(c, http.StatusNotFound, "Route not found")
}
