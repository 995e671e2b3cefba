// Package router đăng ký các route thuộc domain order: đơn hàng + gói định kỳ.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	orderhdl "aqua_commerce/internal/api/order/handler"
	apirouter "aqua_commerce/internal/api/router"
)

// Register đăng ký tất cả route order lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("create order handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/orders", orderHandler, apirouter.ReadWriteConfig)

	subscriptionHandler, err := orderhdl.NewSubscriptionHandler()
	if err != nil {
		return fmt.Errorf("create subscription handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/subscriptions", subscriptionHandler, apirouter.ReadWriteConfig)
	return nil
}
