// Package models của dashboard: document thống kê tổng hợp cho trang quản trị.
package models

// LiveMetricsID là _id cố định của document thống kê trong collection dashboard_stats.
// Toàn bộ hệ thống chỉ có đúng một document này.
const LiveMetricsID = "live_metrics"

// DashboardStats là snapshot 6 chỉ số KPI của dashboard.
// Document này là cache thuần túy: luôn có thể tính lại từ orders + users,
// được ghi đè toàn bộ mỗi lần recompute, không bao giờ patch từng field.
type DashboardStats struct {
	ID                string `json:"id,omitempty" bson:"_id"`                    // Luôn là LiveMetricsID
	TodayRevenue      int64  `json:"todayRevenue" bson:"todayRevenue"`           // Doanh thu đơn hoàn thành trong ngày (đơn vị nhỏ nhất)
	ProcessingOrders  int64  `json:"processingOrders" bson:"processingOrders"`   // Số đơn đang mở (pending + processing), không lọc ngày
	NewCustomersToday int64  `json:"newCustomersToday" bson:"newCustomersToday"` // Số khách tạo trong ngày
	TotalOrders       int64  `json:"totalOrders" bson:"totalOrders"`             // Tổng số đơn, mọi trạng thái
	TotalUsers        int64  `json:"totalUsers" bson:"totalUsers"`               // Tổng số khách
	TotalRevenue      int64  `json:"totalRevenue" bson:"totalRevenue"`           // Doanh thu đơn hoàn thành, mọi thời điểm
	LastUpdated       int64  `json:"lastUpdated" bson:"lastUpdated"`             // Thời điểm ghi (Unix timestamp millis, giờ server)
}

// NewZeroStats trả về snapshot với toàn bộ KPI bằng 0 (dùng cho initializer).
func NewZeroStats(lastUpdated int64) DashboardStats {
	return DashboardStats{
		ID:          LiveMetricsID,
		LastUpdated: lastUpdated,
	}
}
