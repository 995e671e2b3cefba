// Package models - DeletionRequest thuộc domain deletion (collection account_deletion_requests).
// Yêu cầu xóa tài khoản do khách gửi từ app, admin duyệt hoặc từ chối.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của yêu cầu xóa tài khoản.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// DeletionRequest lưu yêu cầu xóa tài khoản (account_deletion_requests).
type DeletionRequest struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	UserID primitive.ObjectID `json:"userId" bson:"userId" index:"single:1"` // Khách gửi yêu cầu
	Email  string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone  string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Reason string             `json:"reason,omitempty" bson:"reason,omitempty"` // Lý do khách đưa ra
	Status string             `json:"status" bson:"status" index:"single:1"`    // pending | approved | rejected

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
