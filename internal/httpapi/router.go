package httpapi

import (
	"github.com/gin-gonic/gin"

	"focuswave/internal/service"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Tasks        *TaskHandler
	Moods        *MoodHandler
	Timer        *TimerHandler
	Gamification *GamificationHandler
	Analytics    *AnalyticsHandler
	ML           *MLHandler
}

// NewRouter builds the HTTP API. Everything under /api except auth
// requires a bearer token.
func NewRouter(authService service.AuthService, h Handlers, corsOrigins []string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), CORS(corsOrigins))

	engine.GET("/health", h.Health.Status)

	api := engine.Group("/api")
	api.GET("/health", h.Health.Status)

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	authed := api.Group("")
	authed.Use(Auth(authService))

	tasks := authed.Group("/tasks")
	tasks.GET("", h.Tasks.List)
	tasks.POST("", h.Tasks.Create)
	tasks.PUT("/reorder", h.Tasks.Reorder)
	tasks.GET("/:id", h.Tasks.Get)
	tasks.PUT("/:id", h.Tasks.Update)
	tasks.DELETE("/:id", h.Tasks.Delete)

	moods := authed.Group("/mood")
	moods.GET("", h.Moods.List)
	moods.POST("", h.Moods.Log)
	moods.PUT("/:id", h.Moods.Update)
	moods.DELETE("/:id", h.Moods.Delete)

	timer := authed.Group("/timer")
	timer.POST("/sessions", h.Timer.RecordSession)
	timer.GET("/sessions", h.Timer.History)
	timer.GET("/stats", h.Timer.Stats)

	gamification := authed.Group("/gamification")
	gamification.GET("/profile", h.Gamification.GetProfile)
	gamification.PUT("/profile", h.Gamification.PutProfile)
	gamification.GET("/badges", h.Gamification.Badges)

	analytics := authed.Group("/analytics")
	analytics.GET("/focus-minutes", h.Analytics.FocusMinutes)
	analytics.GET("/task-throughput", h.Analytics.TaskThroughput)
	analytics.GET("/mood-focus", h.Analytics.MoodFocus)

	ml := authed.Group("/ml")
	ml.POST("/coach", h.ML.Coach)
	ml.POST("/recommend-pomodoro", h.ML.RecommendPomodoro)
	ml.POST("/mood-suggestions", h.ML.MoodSuggestions)

	return engine
}
