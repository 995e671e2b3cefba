// Package orderhdl chứa HTTP handler cho domain order.
package orderhdl

import (
	"fmt"

	basehdl "aqua_commerce/internal/api/base/handler"
	orderdto "aqua_commerce/internal/api/order/dto"
	ordermodels "aqua_commerce/internal/api/order/models"
	ordersvc "aqua_commerce/internal/api/order/service"
)

// OrderHandler xử lý các request liên quan đến đơn giao nước
type OrderHandler struct {
	basehdl.BaseHandler[ordermodels.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput]
}

// NewOrderHandler tạo mới OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[ordermodels.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput](orderService)
	return &OrderHandler{
		BaseHandler: *baseHandler,
	}, nil
}

// SubscriptionHandler xử lý các request liên quan đến gói giao nước định kỳ
type SubscriptionHandler struct {
	basehdl.BaseHandler[ordermodels.Subscription, orderdto.SubscriptionCreateInput, orderdto.SubscriptionUpdateInput]
}

// NewSubscriptionHandler tạo mới SubscriptionHandler
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	subscriptionService, err := ordersvc.NewSubscriptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[ordermodels.Subscription, orderdto.SubscriptionCreateInput, orderdto.SubscriptionUpdateInput](subscriptionService)
	return &SubscriptionHandler{
		BaseHandler: *baseHandler,
	}, nil
}
