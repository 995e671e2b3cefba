// Package worker chứa các tác vụ nền chạy định kỳ của server.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	dashboardsvc "aqua_commerce/internal/api/dashboard/service"
	"aqua_commerce/internal/logger"
)

// refreshTimeout giới hạn thời gian một lần recompute chạy theo lịch.
const refreshTimeout = 30 * time.Second

// StatsRefreshWorker tính lại thống kê dashboard theo lịch:
//   - đúng nửa đêm (theo timezone thống kê) để các chỉ số "hôm nay" reset
//     về 0 ngay khi sang ngày mới, không chờ tới thao tác ghi kế tiếp;
//   - mỗi intervalMinutes phút một lần, lưới an toàn cho trường hợp một
//     trigger ghi bị lỗi và dashboard đang hiển thị snapshot cũ.
type StatsRefreshWorker struct {
	cron *cron.Cron
}

// NewStatsRefreshWorker tạo worker với lịch chạy theo loc.
// Gọi SAU khi RegistryCollections đã được nạp.
func NewStatsRefreshWorker(intervalMinutes int, loc *time.Location) (*StatsRefreshWorker, error) {
	if intervalMinutes <= 0 {
		intervalMinutes = 15
	}

	c := cron.New(cron.WithLocation(loc))

	if _, err := c.AddFunc("0 0 * * *", runRecompute); err != nil {
		return nil, fmt.Errorf("failed to add midnight refresh job: %v", err)
	}
	if _, err := c.AddFunc(fmt.Sprintf("@every %dm", intervalMinutes), runRecompute); err != nil {
		return nil, fmt.Errorf("failed to add interval refresh job: %v", err)
	}

	return &StatsRefreshWorker{cron: c}, nil
}

// Start chạy scheduler trong goroutine riêng của cron.
func (w *StatsRefreshWorker) Start() {
	w.cron.Start()
	logger.GetAppLogger().Info("Worker tính lại thống kê dashboard đã khởi động")
}

// Stop dừng scheduler và chờ job đang chạy kết thúc.
func (w *StatsRefreshWorker) Stop() {
	<-w.cron.Stop().Done()
	logger.GetAppLogger().Info("Worker tính lại thống kê dashboard đã dừng")
}

// runRecompute là thân job: lỗi chỉ ghi log, lần chạy kế tiếp thử lại.
func runRecompute() {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"panic": fmt.Sprintf("%v", r),
			}).Error("Panic trong job tính lại thống kê dashboard")
		}
	}()

	statsService, err := dashboardsvc.NewStatsService()
	if err != nil {
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"error": err.Error(),
		}).Error("Không khởi tạo được StatsService trong job định kỳ")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if _, err := statsService.Recompute(ctx); err != nil {
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"error": err.Error(),
		}).Error("Recompute thống kê dashboard theo lịch thất bại")
	}
}
