package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "github.com/jmin1219/taskflow/internal/http/middlewares"
)

// Register wires the REST surface. The front end is a static bundle
// served from staticDir when one is configured.
func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int, staticDir string) {
	e.Use(echomw.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/api/health", h.Health)

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/today", h.TodayView)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
	e.POST("/tasks/:id/done", h.MarkDone)

	e.GET("/stats", h.Stats)
	e.GET("/export/:format", h.Export)

	if staticDir != "" {
		e.Static("/", staticDir)
	}
}
