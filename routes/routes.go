// @title Nutrition AI API
// @version 1.0
// @description Meal logging with image recognition and nutrition totals
// @host localhost:8080
// @BasePath /
// @schemes http
package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/controllers"
	_ "github.com/atenaxx1412/nutrition-ai-gpTs/docs"
	"github.com/atenaxx1412/nutrition-ai-gpTs/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Auth      *controllers.AuthController
	Meals     *controllers.MealController
	Users     *controllers.UserController
	Goals     *controllers.GoalController
	Progress  *controllers.ProgressController
	Families  *controllers.FamilyController
	Analytics *controllers.AnalyticsController
}

type Options struct {
	Logger *slog.Logger
	// Empty means any origin.
	CORSOrigins []string
	Docs        bool
	// When set, every /api route except auth/validate needs a bearer token.
	Tokens middlewares.TokenVerifier
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
		config.AllowCredentials = true
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	config.OptionsResponseStatusCode = http.StatusOK
	config.MaxAge = 12 * time.Hour
	return config
}

func SetupRouter(h Handlers, opt Options) *gin.Engine {
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(cors.New(corsConfig(opt.CORSOrigins)))

	r.NoRoute(controllers.NoRoute)
	r.GET("/health", controllers.Health)
	if opt.Docs {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	api.POST("/auth/validate", h.Auth.Validate)

	protected := api.Group("")
	if opt.Tokens != nil {
		protected.Use(middlewares.AuthMiddleware(opt.Tokens))
	}
	{
		protected.POST("/meals/analyze", h.Meals.AnalyzeImage)
		protected.PUT("/meals/analyze", h.Meals.LogText)
		protected.GET("/meals/:mealId", h.Meals.GetMeal)
		protected.PATCH("/meals/:mealId", h.Meals.UpdateMeal)
		protected.DELETE("/meals/:mealId", h.Meals.DeleteMeal)

		protected.GET("/users/:userId", h.Users.GetUser)
		protected.PUT("/users/:userId", h.Users.UpdateUser)
		protected.POST("/users/:userId", h.Users.CreateUser)
		protected.GET("/users/:userId/meals", h.Meals.ListUserMeals)

		protected.GET("/users/:userId/goals", h.Goals.ListGoals)
		protected.POST("/users/:userId/goals", h.Goals.CreateGoal)
		protected.GET("/users/:userId/goals/active", h.Goals.ActiveGoal)
		protected.PUT("/goals/:goalId", h.Goals.UpdateGoal)

		protected.GET("/users/:userId/progress", h.Progress.ListProgress)
		protected.POST("/users/:userId/progress", h.Progress.RecordProgress)

		protected.POST("/families", h.Families.CreateFamily)
		protected.GET("/families/:familyId", h.Families.GetFamily)
		protected.GET("/users/:userId/families", h.Families.ListUserFamilies)

		protected.GET("/users/:userId/analytics/weekly", h.Analytics.GetWeeklyOverview)
	}

	return r
}
