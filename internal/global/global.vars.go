package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"aqua_commerce/config"
	"aqua_commerce/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users            string // Tên collection cho người dùng (khách hàng + admin)
	Orders           string // Tên collection cho đơn hàng nước
	Subscriptions    string // Tên collection cho gói giao nước định kỳ
	DeletionRequests string // Tên collection cho yêu cầu xóa tài khoản
	DashboardStats   string // Tên collection cho document thống kê dashboard
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{
	Users:            "users",
	Orders:           "orders",
	Subscriptions:    "subscriptions",
	DeletionRequests: "account_deletion_requests",
	DashboardStats:   "dashboard_stats",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
