// Package userdto chứa DTO cho domain user.
// File: dto.user.go - theo cấu trúc dto.<domain>.go.
package userdto

// AddressInput là input địa chỉ giao nước
type AddressInput struct {
	Label    string `json:"label,omitempty"`
	Line     string `json:"line" validate:"required,no_xss"`
	Ward     string `json:"ward,omitempty"`
	District string `json:"district,omitempty"`
	City     string `json:"city,omitempty"`
	Note     string `json:"note,omitempty" validate:"no_xss"`
}

// UserCreateInput là input để tạo user
type UserCreateInput struct {
	UID         string         `json:"uid" validate:"required"`                    // Firebase UID
	Email       string         `json:"email,omitempty" validate:"omitempty,email"` // Email đăng nhập
	DisplayName string         `json:"displayName,omitempty" validate:"no_xss"`
	Phone       string         `json:"phone,omitempty" validate:"vn_phone"`
	IsAdmin     bool           `json:"isAdmin"`
	Addresses   []AddressInput `json:"addresses,omitempty" validate:"dive"`
}

// UserUpdateInput là input để cập nhật user
type UserUpdateInput struct {
	Email       *string         `json:"email,omitempty" validate:"omitempty,email"`
	DisplayName *string         `json:"displayName,omitempty"`
	Phone       *string         `json:"phone,omitempty" validate:"omitempty,vn_phone"`
	IsAdmin     *bool           `json:"isAdmin,omitempty"`
	Addresses   *[]AddressInput `json:"addresses,omitempty" validate:"omitempty,dive"`
}
