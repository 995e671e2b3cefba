// Package orderdto chứa DTO cho domain order (đơn hàng + gói định kỳ).
package orderdto

// OrderCreateInput là input để tạo đơn giao nước
type OrderCreateInput struct {
	UserID          string `json:"userId" validate:"required"`
	Quantity        int64  `json:"quantity" validate:"omitempty,min=1,max=100"`
	Status          string `json:"status" validate:"omitempty,order_status"`
	Note            string `json:"note,omitempty" validate:"no_xss"`
	DeliveryAddress string `json:"deliveryAddress,omitempty" validate:"no_xss"`
}

// OrderUpdateInput là input để cập nhật đơn giao nước
type OrderUpdateInput struct {
	Quantity        *int64  `json:"quantity,omitempty" validate:"omitempty,min=1,max=100"`
	Status          *string `json:"status,omitempty" validate:"omitempty,order_status"`
	Note            *string `json:"note,omitempty"`
	DeliveryAddress *string `json:"deliveryAddress,omitempty"`
}

// SubscriptionCreateInput là input để tạo gói giao nước định kỳ
type SubscriptionCreateInput struct {
	UserID       string `json:"userId" validate:"required"`
	Plan         string `json:"plan" validate:"required,oneof=weekly biweekly monthly"`
	JarsPerCycle int64  `json:"jarsPerCycle" validate:"required,min=1,max=50"`
	Active       bool   `json:"active"`
}

// SubscriptionUpdateInput là input để cập nhật gói giao nước định kỳ
type SubscriptionUpdateInput struct {
	Plan           *string `json:"plan,omitempty" validate:"omitempty,oneof=weekly biweekly monthly"`
	JarsPerCycle   *int64  `json:"jarsPerCycle,omitempty" validate:"omitempty,min=1,max=50"`
	NextDeliveryAt *int64  `json:"nextDeliveryAt,omitempty"`
	Active         *bool   `json:"active,omitempty"`
}
