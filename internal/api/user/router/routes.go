// Package router đăng ký các route thuộc domain user.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "aqua_commerce/internal/api/router"
	userhdl "aqua_commerce/internal/api/user/handler"
)

// Register đăng ký tất cả route user lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := userhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("create user handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/users", userHandler, apirouter.ReadWriteConfig)
	return nil
}
