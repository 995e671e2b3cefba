// Package dashboardsvc - Test StatsService trên store giả: đường đi lỗi của
// Recompute và seed idempotent, không cần MongoDB.
package dashboardsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "aqua_commerce/internal/api/base/service"
	dashboardmodels "aqua_commerce/internal/api/dashboard/models"
	ordermodels "aqua_commerce/internal/api/order/models"
	usermodels "aqua_commerce/internal/api/user/models"
)

// fakeSummaryStore đếm số lần ghi để kiểm tra Recompute có bỏ dở đúng lúc.
type fakeSummaryStore struct {
	doc          *dashboardmodels.DashboardStats
	replaceCalls int
	insertCalls  int
}

func (f *fakeSummaryStore) Replace(ctx context.Context, stats dashboardmodels.DashboardStats) error {
	f.replaceCalls++
	f.doc = &stats
	return nil
}

func (f *fakeSummaryStore) Insert(ctx context.Context, stats dashboardmodels.DashboardStats) error {
	f.insertCalls++
	if f.doc != nil {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	f.doc = &stats
	return nil
}

func (f *fakeSummaryStore) Load(ctx context.Context) (dashboardmodels.DashboardStats, error) {
	if f.doc == nil {
		return dashboardmodels.DashboardStats{}, mongo.ErrNoDocuments
	}
	return *f.doc, nil
}

// fakeOrderFinder / fakeUserFinder chỉ cài Find — các method khác không
// được gọi trong đường đi của Recompute.
type fakeOrderFinder struct {
	basesvc.BaseServiceMongo[ordermodels.Order]
	orders []ordermodels.Order
	err    error
}

func (f *fakeOrderFinder) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]ordermodels.Order, error) {
	return f.orders, f.err
}

type fakeUserFinder struct {
	basesvc.BaseServiceMongo[usermodels.User]
	users []usermodels.User
	err   error
}

func (f *fakeUserFinder) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]usermodels.User, error) {
	return f.users, f.err
}

func newTestStatsService(orders *fakeOrderFinder, users *fakeUserFinder, store *fakeSummaryStore) *StatsService {
	return &StatsService{
		orders:   orders,
		users:    users,
		store:    store,
		location: time.UTC,
	}
}

func TestRecompute_FetchLoiThiKhongGhi(t *testing.T) {
	cases := []struct {
		name     string
		ordersEr error
		usersErr error
	}{
		{"lỗi đọc orders", errors.New("mất kết nối"), nil},
		{"lỗi đọc users", nil, errors.New("mất kết nối")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store := &fakeSummaryStore{}
			svc := newTestStatsService(
				&fakeOrderFinder{err: c.ordersEr},
				&fakeUserFinder{err: c.usersErr},
				store,
			)

			_, err := svc.Recompute(context.Background())
			if err == nil {
				t.Fatal("fetch lỗi thì Recompute phải trả lỗi")
			}
			if store.replaceCalls != 0 || store.insertCalls != 0 {
				t.Errorf("fetch lỗi thì không được ghi gì: replace = %d, insert = %d",
					store.replaceCalls, store.insertCalls)
			}
		})
	}
}

func TestRecompute_ThanhCongGhiDungSnapshot(t *testing.T) {
	store := &fakeSummaryStore{}
	svc := newTestStatsService(
		&fakeOrderFinder{orders: []ordermodels.Order{
			{Status: ordermodels.StatusCompleted, Quantity: 2, CreatedAt: time.Now().UnixMilli()},
		}},
		&fakeUserFinder{users: []usermodels.User{{CreatedAt: time.Now().UnixMilli()}}},
		store,
	)

	stats, err := svc.Recompute(context.Background())
	if err != nil {
		t.Fatalf("Recompute lỗi: %v", err)
	}
	if store.replaceCalls != 1 {
		t.Errorf("thành công phải ghi đúng một lần: replace = %d", store.replaceCalls)
	}
	if stats.ID != dashboardmodels.LiveMetricsID {
		t.Errorf("document phải mang _id cố định: got %q", stats.ID)
	}
	if stats.LastUpdated <= 0 {
		t.Error("LastUpdated phải được set khi ghi")
	}
	if stats.TodayRevenue != 74 || stats.TotalUsers != 1 {
		t.Errorf("snapshot ghi sai: todayRevenue = %d, totalUsers = %d", stats.TodayRevenue, stats.TotalUsers)
	}
	if store.doc == nil || *store.doc != stats {
		t.Error("store phải giữ đúng snapshot vừa trả về")
	}
}

func TestEnsureInitialized_SeedMotLanDuyNhat(t *testing.T) {
	store := &fakeSummaryStore{}
	svc := newTestStatsService(&fakeOrderFinder{}, &fakeUserFinder{}, store)

	stats, created, err := svc.EnsureInitialized(context.Background())
	if err != nil {
		t.Fatalf("seed lần đầu lỗi: %v", err)
	}
	if !created || store.insertCalls != 1 {
		t.Errorf("lần đầu phải seed: created = %v, insert = %d", created, store.insertCalls)
	}
	zero := stats
	zero.LastUpdated = 0
	if zero != (dashboardmodels.DashboardStats{ID: dashboardmodels.LiveMetricsID}) {
		t.Errorf("seed phải toàn KPI bằng 0: got %+v", stats)
	}

	// Lần hai: document đã có, không được ghi thêm
	_, created, err = svc.EnsureInitialized(context.Background())
	if err != nil {
		t.Fatalf("lần hai lỗi: %v", err)
	}
	if created || store.insertCalls != 1 {
		t.Errorf("lần hai không được seed lại: created = %v, insert = %d", created, store.insertCalls)
	}
}
