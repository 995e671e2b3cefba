package dashboardsvc

import (
	"strings"
	"time"

	dashboardmodels "aqua_commerce/internal/api/dashboard/models"
	ordermodels "aqua_commerce/internal/api/order/models"
	usermodels "aqua_commerce/internal/api/user/models"
	"aqua_commerce/internal/logger"
	"aqua_commerce/internal/utility"
)

// NormalizeStatus chuẩn hóa trạng thái đơn hàng về bộ 4 giá trị canonical:
// pending / processing / completed / cancelled.
// Dữ liệu cũ dùng delivered thay cho completed và canceled (kiểu Mỹ) thay cho
// cancelled — cả hai được map về giá trị canonical. Trạng thái ngoài bộ nhận
// dạng (kể cả rỗng) được coi là pending để không làm sai lệch doanh thu;
// known=false để caller cảnh báo cho admin rà soát dữ liệu.
func NormalizeStatus(raw string) (status string, known bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ordermodels.StatusPending:
		return ordermodels.StatusPending, true
	case ordermodels.StatusProcessing:
		return ordermodels.StatusProcessing, true
	case ordermodels.StatusCompleted, "delivered":
		return ordermodels.StatusCompleted, true
	case ordermodels.StatusCancelled, "canceled":
		return ordermodels.StatusCancelled, true
	case "":
		return ordermodels.StatusPending, false
	default:
		return ordermodels.StatusPending, false
	}
}

// DeriveStats tính 6 chỉ số KPI từ toàn bộ orders + users — hàm thuần,
// tách khỏi phần I/O để test được không cần MongoDB.
//
// Quy tắc nghiệp vụ:
//   - Cửa sổ "hôm nay" là nửa khoảng [nửa đêm, nửa đêm hôm sau) theo loc.
//   - Doanh thu = quantity × đơn giá bình (chỉ tính đơn completed).
//   - quantity thiếu hoặc <= 0: lấy items[0].quantity của schema cũ,
//     không có nữa thì tính là 1 bình.
//   - createdAt không parse được tính là now (một bản ghi hỏng không được
//     làm hỏng toàn bộ lần tính).
//
// Hàm không set ID và LastUpdated — phần ghi chịu trách nhiệm.
func DeriveStats(orders []ordermodels.Order, users []usermodels.User, now time.Time, loc *time.Location) dashboardmodels.DashboardStats {
	startOfDay := utility.StartOfDay(now.In(loc), loc)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	inToday := func(t time.Time) bool {
		local := t.In(loc)
		return !local.Before(startOfDay) && local.Before(endOfDay)
	}

	var stats dashboardmodels.DashboardStats

	for _, order := range orders {
		stats.TotalOrders++

		status, known := NormalizeStatus(order.Status)
		if !known {
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"orderId": order.ID.Hex(),
				"status":  order.Status,
			}).Warn("Trạng thái đơn hàng ngoài bộ nhận dạng, tính là pending — cần admin rà soát")
		}

		quantity := order.JarCount()

		createdAt, ok := utility.NormalizeTimestamp(order.CreatedAt, loc)
		if !ok {
			createdAt = now
		}

		switch status {
		case ordermodels.StatusPending, ordermodels.StatusProcessing:
			stats.ProcessingOrders++
		case ordermodels.StatusCompleted:
			amount := quantity * ordermodels.JarUnitPrice
			stats.TotalRevenue += amount
			if inToday(createdAt) {
				stats.TodayRevenue += amount
			}
		}
	}

	for _, user := range users {
		stats.TotalUsers++

		createdAt, ok := utility.NormalizeTimestamp(user.CreatedAt, loc)
		if !ok {
			createdAt = now
		}
		if inToday(createdAt) {
			stats.NewCustomersToday++
		}
	}

	return stats
}
