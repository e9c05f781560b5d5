package server

import (
	"fmt"
	"net/http"
	"time"

	"NextShape_V0.1/internal/session"
	"NextShape_V0.1/internal/user"
	"NextShape_V0.1/internal/utility"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

func (s *Server) RegisterRoutes() http.Handler {
	user.InitUserPackage(user.Dependencies{
		Planner:  s.planner,
		Sessions: s.sessions,
	})

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type", "X-Request-ID", session.HeaderName},
		ExposeHeaders:    []string{"X-Request-ID", session.HeaderName},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Food photos arrive base64 encoded.
	e.Use(middleware.BodyLimit("10M"))
	e.Use(LoggerMiddleware)

	e.GET("/health", s.healthHandler)

	// Visitor routes, keyed by the session cookie or X-Session-ID
	app := e.Group("")
	app.Use(session.Middleware(s.cookies, s.sessions))

	// Questionnaire
	app.GET("/quiz", user.GetQuizHandler)
	app.POST("/quiz/profile", user.SubmitQuizProfileHandler)

	// Plans
	app.POST("/plans", user.GeneratePlansHandler)
	app.POST("/plans/workout", user.GenerateWorkoutPlanHandler)
	app.POST("/plans/meal", user.GenerateMealPlanHandler)
	app.GET("/plans", user.GetPlansHandler)

	// Food scanner & daily log
	app.POST("/food/scan", user.ScanFoodHandler)
	app.POST("/food/rescale", user.RescaleFoodHandler)
	app.POST("/food/log", user.AddFoodLogHandler)
	app.GET("/food/log", user.GetFoodLogHandler)
	app.DELETE("/food/log/:index", user.DeleteFoodLogHandler)

	// Websocket for plan notifications
	app.GET("/ws", user.PlansSocketHandler)

	return e
}

// LoggerMiddleware tags every request with a request ID and attaches a
// request-scoped logger to both the echo context and the request context.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()

		c.Set("logger", &logger)
		c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))

		return next(c)
	}
}

func (s *Server) healthHandler(c echo.Context) error {
	resp := map[string]interface{}{
		"status": "online",
		"runtime": map[string]interface{}{
			"uptime":     time.Since(s.startTime).String(),
			"start_time": s.startTime.Format(time.RFC3339),
		},
		"generation": map[string]interface{}{
			"model":      s.ai.Model(),
			"configured": s.ai.Configured(),
		},
		"sessions": map[string]interface{}{
			"active":         s.sessions.Len(),
			"open_websocket": utility.ActiveClients(),
		},
	}

	if hInfo, err := host.Info(); err == nil {
		runtime := resp["runtime"].(map[string]interface{})
		runtime["os"] = hInfo.OS
		runtime["platform"] = hInfo.Platform
		runtime["arch"] = hInfo.KernelArch
		runtime["hostname"] = hInfo.Hostname
	}

	// Since the previous call, so the handler does not block.
	if cpuPercent, err := cpu.Percent(0, false); err == nil && len(cpuPercent) > 0 {
		resp["cpu"] = map[string]interface{}{
			"usage_percent": fmt.Sprintf("%.2f%%", cpuPercent[0]),
		}
	}

	if v, err := mem.VirtualMemory(); err == nil {
		resp["memory"] = map[string]interface{}{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(v.Total)/1024/1024/1024),
			"used_gb":      fmt.Sprintf("%.2f GB", float64(v.Used)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", v.UsedPercent),
		}
	}

	if d, err := disk.Usage("/"); err == nil {
		resp["disk"] = map[string]interface{}{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(d.Total)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", d.UsedPercent),
		}
	}

	return c.JSON(http.StatusOK, resp)
}
