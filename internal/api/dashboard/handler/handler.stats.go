// Package dashboardhdl chứa HTTP handler cho thống kê dashboard.
package dashboardhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "aqua_commerce/internal/api/base/handler"
	basesvc "aqua_commerce/internal/api/base/service"
	dashboardmodels "aqua_commerce/internal/api/dashboard/models"
	dashboardsvc "aqua_commerce/internal/api/dashboard/service"
	"aqua_commerce/internal/common"
	"aqua_commerce/internal/global"
	"aqua_commerce/internal/logger"
)

// StatsHandler xử lý các request thống kê dashboard
type StatsHandler struct {
	basehdl.BaseHandler[dashboardmodels.DashboardStats, dashboardmodels.DashboardStats, dashboardmodels.DashboardStats]
	StatsService *dashboardsvc.StatsService
}

// NewStatsHandler tạo mới StatsHandler
func NewStatsHandler() (*StatsHandler, error) {
	statsService, err := dashboardsvc.NewStatsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create stats service: %v", err)
	}

	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DashboardStats)
	if !exist {
		return nil, fmt.Errorf("failed to get dashboard_stats collection: %v", common.ErrNotFound)
	}

	baseHandler := basehdl.NewBaseHandler[dashboardmodels.DashboardStats, dashboardmodels.DashboardStats, dashboardmodels.DashboardStats](
		basesvc.NewBaseServiceMongo[dashboardmodels.DashboardStats](collection),
	)
	return &StatsHandler{
		BaseHandler:  *baseHandler,
		StatsService: statsService,
	}, nil
}

// RefreshStats chạy recompute đồng bộ và trả snapshot mới cho caller.
// Response KHÔNG dùng envelope chung của API: frontend dashboard cũ gọi thẳng
// endpoint này và chỉ hiểu shape {success, stats} / {success, error} —
// giữ nguyên contract để không vỡ client.
func (h *StatsHandler) RefreshStats(c fiber.Ctx) error {
	stats, err := h.StatsService.Recompute(c.Context())
	if err != nil {
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"error": err.Error(),
		}).Error("Recompute thống kê dashboard thất bại qua endpoint refresh")
		return c.Status(common.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to recalculate statistics",
		})
	}
	return c.Status(common.StatusOK).JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

// InitStats seed document thống kê nếu chưa có. Cùng contract shape với
// RefreshStats. Đã tồn tại thì báo "already exists" và giữ nguyên giá trị.
func (h *StatsHandler) InitStats(c fiber.Ctx) error {
	stats, created, err := h.StatsService.EnsureInitialized(c.Context())
	if err != nil {
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"error": err.Error(),
		}).Error("Seed thống kê dashboard thất bại")
		return c.Status(common.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to initialize statistics",
		})
	}
	if !created {
		return c.Status(common.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "already exists",
			"stats":   stats,
		})
	}
	return c.Status(common.StatusOK).JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

// GetStats trả snapshot hiện tại theo envelope chung của API.
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.HandleResponse(c, h.StatsService.Read(c.Context()), nil)
		return nil
	})
}
