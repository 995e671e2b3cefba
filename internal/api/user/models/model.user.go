// Package models - User thuộc domain user (collection users).
// Lưu khách hàng và admin của hệ thống giao nước; xác thực qua Firebase (uid).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address là địa chỉ giao nước của khách hàng
type Address struct {
	Label    string `json:"label,omitempty" bson:"label,omitempty"`       // Nhãn: "Nhà", "Công ty", ...
	Line     string `json:"line" bson:"line"`                             // Số nhà, tên đường
	Ward     string `json:"ward,omitempty" bson:"ward,omitempty"`         // Phường/xã
	District string `json:"district,omitempty" bson:"district,omitempty"` // Quận/huyện
	City     string `json:"city,omitempty" bson:"city,omitempty"`         // Tỉnh/thành phố
	Note     string `json:"note,omitempty" bson:"note,omitempty"`         // Ghi chú giao hàng
}

// User lưu thông tin khách hàng (users).
// CreatedAt khai báo interface{} vì dữ liệu cũ import từ Firestore có nhiều định dạng
// (epoch millis, chuỗi ISO, Date) — chuẩn hóa bằng utility.NormalizeTimestamp khi đọc.
type User struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	UID          string    `json:"uid" bson:"uid" index:"unique"`                                              // Firebase UID
	Email        string    `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`               // Email đăng nhập
	DisplayName  string    `json:"displayName,omitempty" bson:"displayName,omitempty"`                         // Tên hiển thị
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`               // Số điện thoại
	CustomerCode string    `json:"customerCode,omitempty" bson:"customerCode,omitempty" index:"unique,sparse"` // Mã khách hàng (sinh tự động)
	IsAdmin      bool      `json:"isAdmin" bson:"isAdmin"`                                                     // Quyền quản trị
	Addresses    []Address `json:"addresses,omitempty" bson:"addresses,omitempty"`                             // Danh sách địa chỉ giao nước

	CreatedAt interface{} `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Đa hình với dữ liệu cũ
	UpdatedAt int64       `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
