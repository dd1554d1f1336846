package api

import (
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/tubegrab/tubegrab/internal/api/controllers"
	"github.com/tubegrab/tubegrab/internal/app"
	"github.com/tubegrab/tubegrab/internal/engine"
)

func RegisterRoutes(e *echo.Echo, app *app.Context, dispatcher *engine.Dispatcher) {

	e.Use(middleware.Recover())

	// Middleware: CORS for the browser frontend
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     app.Config.CORS.Origins,
		AllowCredentials: true,
	}))

	// Middleware: Request Logger
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c *echo.Context, v middleware.RequestLoggerValues) error {
			app.Logger.Info("%s %s | %d | %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))

	ctrl := &controllers.DownloadController{App: app, Dispatcher: dispatcher}

	e.POST("/api/validate", ctrl.HandleValidate)
	e.POST("/api/download", ctrl.HandleDownload)
	e.GET("/api/status/:taskId", ctrl.HandleStatus)
	e.GET("/api/history", ctrl.HandleHistory)
	e.DELETE("/api/history/:filename", ctrl.HandleHistoryDelete)
	e.GET("/api/health", ctrl.HandleHealth)

	// Direct artifact download endpoint
	e.GET("/downloads/:filename", ctrl.HandleServeFile)
}
