// Package models - Subscription thuộc domain order (collection subscriptions).
// Gói giao nước định kỳ của khách hàng.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các chu kỳ giao nước được hỗ trợ.
const (
	PlanWeekly   = "weekly"
	PlanBiweekly = "biweekly"
	PlanMonthly  = "monthly"
)

// Subscription lưu gói giao nước định kỳ (subscriptions).
type Subscription struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	UserID         primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"`                                     // Khách đăng ký gói
	Plan           string             `json:"plan" bson:"plan"`                                                          // weekly | biweekly | monthly
	JarsPerCycle   int64              `json:"jarsPerCycle" bson:"jarsPerCycle"`                                          // Số bình mỗi chu kỳ
	NextDeliveryAt int64              `json:"nextDeliveryAt,omitempty" bson:"nextDeliveryAt,omitempty" index:"single:1"` // Lần giao kế tiếp (UnixMilli)
	Active         bool               `json:"active" bson:"active" index:"single:1"`                                     // Gói còn hiệu lực

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
