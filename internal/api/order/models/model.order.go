// Package models - Order thuộc domain order (collection orders).
// Một đơn hàng là một lần giao bình nước 20L cho khách.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái chuẩn của đơn hàng. Dữ liệu cũ có thể chứa alias
// "delivered" (= completed) và "canceled" (= cancelled).
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// JarUnitPrice là đơn giá một bình nước (nghìn đồng).
const JarUnitPrice int64 = 37

// OrderItem là dòng hàng trong đơn theo schema cũ — các đơn import từ
// Firestore lưu số bình trong items[0].quantity thay vì trường quantity phẳng.
type OrderItem struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty"`
	Quantity int64  `json:"quantity,omitempty" bson:"quantity,omitempty"`
}

// Order lưu đơn giao nước (orders).
// CreatedAt khai báo interface{} vì dữ liệu cũ import từ Firestore có nhiều
// định dạng (epoch millis, chuỗi ISO, Date) — chuẩn hóa khi tính thống kê.
type Order struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	UserID          primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty" index:"single:1"` // Khách đặt đơn
	Quantity        int64              `json:"quantity,omitempty" bson:"quantity,omitempty"`              // Số bình (thiếu = 1)
	Items           []OrderItem        `json:"items,omitempty" bson:"items,omitempty"`                    // Schema cũ, chỉ đọc
	Status          string             `json:"status" bson:"status" index:"single:1"`                     // Trạng thái thô, có thể chứa alias cũ
	Total           int64              `json:"total,omitempty" bson:"total,omitempty"`                    // Thành tiền (quantity * đơn giá)
	Note            string             `json:"note,omitempty" bson:"note,omitempty"`                      // Ghi chú của khách
	DeliveryAddress string             `json:"deliveryAddress,omitempty" bson:"deliveryAddress,omitempty"`

	CreatedAt interface{} `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Đa hình với dữ liệu cũ
	UpdatedAt int64       `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// JarCount trả về số bình của đơn: quantity phẳng, rồi items[0].quantity
// của schema cũ, cuối cùng mặc định 1.
func (o Order) JarCount() int64 {
	if o.Quantity > 0 {
		return o.Quantity
	}
	if len(o.Items) > 0 && o.Items[0].Quantity > 0 {
		return o.Items[0].Quantity
	}
	return 1
}
