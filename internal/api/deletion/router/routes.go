// Package router đăng ký các route thuộc domain deletion.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	deletionhdl "aqua_commerce/internal/api/deletion/handler"
	"aqua_commerce/internal/api/middleware"
	apirouter "aqua_commerce/internal/api/router"
)

// Register đăng ký tất cả route deletion-requests lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	deletionHandler, err := deletionhdl.NewDeletionRequestHandler()
	if err != nil {
		return fmt.Errorf("create deletion request handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/deletion-requests", deletionHandler, apirouter.ReadWriteConfig)

	// Duyệt / từ chối yêu cầu — chỉ admin
	mws := []fiber.Handler{middleware.AuthMiddleware(true)}
	apirouter.RegisterRouteWithMiddleware(v1, "/deletion-requests", "POST", "/approve/:id", mws, deletionHandler.Approve)
	apirouter.RegisterRouteWithMiddleware(v1, "/deletion-requests", "POST", "/reject/:id", mws, deletionHandler.Reject)
	return nil
}
