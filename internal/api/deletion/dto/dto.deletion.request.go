// Package deletiondto chứa DTO cho domain deletion.
package deletiondto

// DeletionRequestCreateInput là input để tạo yêu cầu xóa tài khoản
type DeletionRequestCreateInput struct {
	UserID string `json:"userId" validate:"required"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	Phone  string `json:"phone,omitempty" validate:"omitempty,vn_phone"`
	Reason string `json:"reason,omitempty" validate:"no_xss"`
}

// DeletionRequestUpdateInput là input để cập nhật yêu cầu xóa tài khoản
type DeletionRequestUpdateInput struct {
	Reason *string `json:"reason,omitempty"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
}
