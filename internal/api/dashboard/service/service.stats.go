// Package dashboardsvc chứa engine tính toán và service lưu trữ thống kê dashboard.
package dashboardsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "aqua_commerce/internal/api/base/service"
	dashboardmodels "aqua_commerce/internal/api/dashboard/models"
	ordermodels "aqua_commerce/internal/api/order/models"
	usermodels "aqua_commerce/internal/api/user/models"
	"aqua_commerce/internal/common"
	"aqua_commerce/internal/global"
	"aqua_commerce/internal/logger"
)

// summaryStore là lớp lưu trữ document live_metrics — tách interface để
// test được đường đi lỗi của Recompute mà không cần MongoDB.
type summaryStore interface {
	// Replace ghi đè toàn bộ document (upsert, không merge).
	Replace(ctx context.Context, stats dashboardmodels.DashboardStats) error
	// Insert chèn mới, trả lỗi trùng key nếu document đã tồn tại.
	Insert(ctx context.Context, stats dashboardmodels.DashboardStats) error
	// Load đọc document hiện tại, trả mongo.ErrNoDocuments nếu chưa có.
	Load(ctx context.Context) (dashboardmodels.DashboardStats, error)
}

// mongoSummaryStore lưu live_metrics trực tiếp trên collection, KHÔNG qua
// BaseServiceMongoImpl để không phát event data-changed — nếu không,
// recompute sẽ tự trigger chính nó vô hạn.
type mongoSummaryStore struct {
	col *mongo.Collection
}

func (m *mongoSummaryStore) Replace(ctx context.Context, stats dashboardmodels.DashboardStats) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.col.ReplaceOne(ctx, bson.M{"_id": dashboardmodels.LiveMetricsID}, stats, opts)
	return err
}

func (m *mongoSummaryStore) Insert(ctx context.Context, stats dashboardmodels.DashboardStats) error {
	_, err := m.col.InsertOne(ctx, stats)
	return err
}

func (m *mongoSummaryStore) Load(ctx context.Context) (dashboardmodels.DashboardStats, error) {
	var stats dashboardmodels.DashboardStats
	err := m.col.FindOne(ctx, bson.M{"_id": dashboardmodels.LiveMetricsID}).Decode(&stats)
	return stats, err
}

// StatsService quản lý document thống kê dashboard_stats/live_metrics.
// Đọc orders + users qua base service, ghi summary qua summaryStore.
type StatsService struct {
	orders   basesvc.BaseServiceMongo[ordermodels.Order]
	users    basesvc.BaseServiceMongo[usermodels.User]
	store    summaryStore
	location *time.Location
}

// NewStatsService tạo mới StatsService
func NewStatsService() (*StatsService, error) {
	orderCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	userCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	statsCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DashboardStats)
	if !exist {
		return nil, fmt.Errorf("failed to get dashboard_stats collection: %v", common.ErrNotFound)
	}

	return &StatsService{
		orders:   basesvc.NewBaseServiceMongo[ordermodels.Order](orderCol),
		users:    basesvc.NewBaseServiceMongo[usermodels.User](userCol),
		store:    &mongoSummaryStore{col: statsCol},
		location: statsLocation(),
	}, nil
}

// statsLocation trả về timezone dùng để tính mốc nửa đêm cho các chỉ số "hôm nay".
// Timezone không hợp lệ hoặc config chưa load thì dùng giờ server.
func statsLocation() *time.Location {
	if global.MongoDB_ServerConfig == nil || global.MongoDB_ServerConfig.StatsTimezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(global.MongoDB_ServerConfig.StatsTimezone)
	if err != nil {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"timezone": global.MongoDB_ServerConfig.StatsTimezone,
			"error":    err.Error(),
		}).Warn("Timezone thống kê không hợp lệ, dùng giờ server")
		return time.Local
	}
	return loc
}

// Recompute quét toàn bộ orders + users, tính lại 6 chỉ số KPI và ghi đè
// toàn bộ document live_metrics. Nếu một trong hai lần fetch lỗi thì bỏ dở,
// không ghi gì (giữ nguyên snapshot cũ cho dashboard).
// Các lần recompute chạy song song được phép đua nhau: lần ghi sau cùng thắng,
// document luôn là một snapshot tự nhất quán.
func (s *StatsService) Recompute(ctx context.Context) (dashboardmodels.DashboardStats, error) {
	orders, err := s.orders.Find(ctx, bson.D{}, nil)
	if err != nil {
		return dashboardmodels.DashboardStats{}, common.NewError(
			common.ErrCodeBusinessStats,
			"Không thể đọc danh sách đơn hàng để tính thống kê",
			common.StatusInternalServerError,
			err,
		)
	}

	users, err := s.users.Find(ctx, bson.D{}, nil)
	if err != nil {
		return dashboardmodels.DashboardStats{}, common.NewError(
			common.ErrCodeBusinessStats,
			"Không thể đọc danh sách khách hàng để tính thống kê",
			common.StatusInternalServerError,
			err,
		)
	}

	now := time.Now()
	stats := DeriveStats(orders, users, now, s.location)
	stats.ID = dashboardmodels.LiveMetricsID
	stats.LastUpdated = now.UnixMilli()

	if err := s.store.Replace(ctx, stats); err != nil {
		return dashboardmodels.DashboardStats{}, common.ConvertMongoError(err)
	}
	return stats, nil
}

// EnsureInitialized seed document live_metrics với toàn bộ KPI bằng 0 nếu chưa có.
// Idempotent: đã tồn tại thì không đụng vào giá trị hiện tại, trả created=false.
func (s *StatsService) EnsureInitialized(ctx context.Context) (stats dashboardmodels.DashboardStats, created bool, err error) {
	stats, findErr := s.store.Load(ctx)
	if findErr == nil {
		return stats, false, nil
	}
	if !errors.Is(findErr, mongo.ErrNoDocuments) {
		return dashboardmodels.DashboardStats{}, false, common.ConvertMongoError(findErr)
	}

	stats = dashboardmodels.NewZeroStats(time.Now().UnixMilli())
	if err := s.store.Insert(ctx, stats); err != nil {
		// Hai lần init đua nhau: lần thua trùng _id, coi như đã tồn tại
		if mongo.IsDuplicateKeyError(err) {
			return s.Read(ctx), false, nil
		}
		return dashboardmodels.DashboardStats{}, false, common.ConvertMongoError(err)
	}
	return stats, true, nil
}

// Read trả về snapshot hiện tại; chưa có document thì trả snapshot 0
// (dashboard không bao giờ thấy trạng thái trống).
func (s *StatsService) Read(ctx context.Context) dashboardmodels.DashboardStats {
	stats, err := s.store.Load(ctx)
	if err != nil {
		return dashboardmodels.NewZeroStats(0)
	}
	return stats
}
