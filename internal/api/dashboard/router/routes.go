// Package router đăng ký các route thuộc domain dashboard.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dashboardhdl "aqua_commerce/internal/api/dashboard/handler"
	"aqua_commerce/internal/api/middleware"
	apirouter "aqua_commerce/internal/api/router"
)

// Register đăng ký các route dashboard lên v1.
// Preflight OPTIONS do middleware CORS cấp app xử lý (trả 204).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	statsHandler, err := dashboardhdl.NewStatsHandler()
	if err != nil {
		return fmt.Errorf("create stats handler: %w", err)
	}

	mws := []fiber.Handler{middleware.AuthMiddleware(true)}
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "POST", "/refresh-stats", mws, statsHandler.RefreshStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "POST", "/init-stats", mws, statsHandler.InitStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/stats", mws, statsHandler.GetStats)
	return nil
}
