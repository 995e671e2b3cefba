package dashboardsvc

import (
	"context"
	"time"

	"aqua_commerce/internal/api/events"
	"aqua_commerce/internal/global"
	"aqua_commerce/internal/logger"
)

// recomputeTimeout giới hạn thời gian một lần recompute chạy nền.
// Trigger từ event không kế thừa deadline của request gốc — request ghi
// đã trả về cho client từ trước khi recompute chạy.
const recomputeTimeout = 30 * time.Second

func init() {
	events.OnDataChanged(handleStatsDataChange)
}

// handleStatsDataChange tính lại thống kê mỗi khi có thao tác ghi lên orders
// hoặc users. StatsService được tạo tại thời điểm event (registry đã nạp).
//
// Trigger này là fire-and-forget: lỗi recompute chỉ được ghi log, không bao
// giờ propagate ngược về thao tác ghi đã phát event (event bus đã chạy
// handler trong goroutine riêng có recover).
func handleStatsDataChange(_ context.Context, e events.DataChangeEvent) {
	if e.CollectionName != global.MongoDB_ColNames.Orders &&
		e.CollectionName != global.MongoDB_ColNames.Users {
		return
	}

	statsService, err := NewStatsService()
	if err != nil {
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"collection": e.CollectionName,
			"operation":  e.Operation,
			"error":      err.Error(),
		}).Error("Không khởi tạo được StatsService từ trigger thay đổi dữ liệu")
		return
	}

	// Không kế thừa context của request ghi: request đã trả về cho client
	ctx, cancel := context.WithTimeout(context.Background(), recomputeTimeout)
	defer cancel()

	if _, err := statsService.Recompute(ctx); err != nil {
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"collection": e.CollectionName,
			"operation":  e.Operation,
			"error":      err.Error(),
		}).Error("Recompute thống kê dashboard thất bại sau thao tác ghi")
	}
}
