// Package dashboardsvc - Test DeriveStats: quy tắc tính 6 chỉ số KPI.
package dashboardsvc

import (
	"testing"
	"time"

	dashboardmodels "aqua_commerce/internal/api/dashboard/models"
	ordermodels "aqua_commerce/internal/api/order/models"
	usermodels "aqua_commerce/internal/api/user/models"
)

// Mốc thời gian cố định để test không phụ thuộc đồng hồ hệ thống:
// 15:00 ngày 10/03/2026 UTC, nửa đêm là 00:00 cùng ngày.
var (
	testLoc = time.UTC
	testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
)

func order(status string, quantity int64, createdAt interface{}) ordermodels.Order {
	return ordermodels.Order{Status: status, Quantity: quantity, CreatedAt: createdAt}
}

func user(createdAt interface{}) usermodels.User {
	return usermodels.User{CreatedAt: createdAt}
}

func TestDeriveStats_KichBanChuan(t *testing.T) {
	today := testNow.Add(-2 * time.Hour).UnixMilli()
	yesterday := testNow.AddDate(0, 0, -1).UnixMilli()
	lastWeek := testNow.AddDate(0, 0, -7).UnixMilli()

	orders := []ordermodels.Order{
		// 3 đơn hôm nay
		order(ordermodels.StatusCompleted, 2, today),
		order(ordermodels.StatusPending, 1, today),
		order(ordermodels.StatusCancelled, 5, today),
		// 2 đơn hôm qua
		order(ordermodels.StatusCompleted, 3, yesterday),
		order(ordermodels.StatusCancelled, 1, yesterday),
	}
	users := []usermodels.User{
		user(today),
		user(lastWeek),
	}

	stats := DeriveStats(orders, users, testNow, testLoc)

	want := dashboardmodels.DashboardStats{
		TodayRevenue:      74, // 2 bình × 37
		ProcessingOrders:  1,  // 1 đơn pending
		NewCustomersToday: 1,
		TotalOrders:       5,
		TotalUsers:        2,
		TotalRevenue:      185, // 74 hôm nay + 111 hôm qua
	}
	if stats != want {
		t.Errorf("DeriveStats sai: got %+v, want %+v", stats, want)
	}
}

func TestDeriveStats_Idempotent(t *testing.T) {
	orders := []ordermodels.Order{
		order(ordermodels.StatusCompleted, 2, testNow.UnixMilli()),
		order(ordermodels.StatusProcessing, 1, testNow.UnixMilli()),
	}
	users := []usermodels.User{user(testNow.UnixMilli())}

	first := DeriveStats(orders, users, testNow, testLoc)
	second := DeriveStats(orders, users, testNow, testLoc)
	if first != second {
		t.Errorf("DeriveStats không idempotent: lần 1 %+v, lần 2 %+v", first, second)
	}
}

func TestDeriveStats_BienNuaDem(t *testing.T) {
	midnight := time.Date(2026, 3, 10, 0, 0, 0, 0, testLoc)

	// Đúng nửa đêm hôm nay: thuộc cửa sổ "hôm nay"
	stats := DeriveStats([]ordermodels.Order{
		order(ordermodels.StatusCompleted, 1, midnight.UnixMilli()),
	}, nil, testNow, testLoc)
	if stats.TodayRevenue != 37 {
		t.Errorf("đơn tạo đúng nửa đêm phải tính vào hôm nay: todayRevenue = %d, want 37", stats.TodayRevenue)
	}

	// Trước nửa đêm 1ms: thuộc hôm qua
	stats = DeriveStats([]ordermodels.Order{
		order(ordermodels.StatusCompleted, 1, midnight.Add(-time.Millisecond).UnixMilli()),
	}, nil, testNow, testLoc)
	if stats.TodayRevenue != 0 {
		t.Errorf("đơn tạo trước nửa đêm 1ms không được tính vào hôm nay: todayRevenue = %d, want 0", stats.TodayRevenue)
	}
	if stats.TotalRevenue != 37 {
		t.Errorf("đơn hôm qua vẫn tính vào totalRevenue: got %d, want 37", stats.TotalRevenue)
	}

	// Nửa đêm ngày mai: không thuộc hôm nay (nửa khoảng mở bên phải)
	tomorrow := midnight.AddDate(0, 0, 1)
	stats = DeriveStats([]ordermodels.Order{
		order(ordermodels.StatusCompleted, 1, tomorrow.UnixMilli()),
	}, nil, testNow, testLoc)
	if stats.TodayRevenue != 0 {
		t.Errorf("đơn tạo đúng nửa đêm ngày mai không thuộc hôm nay: todayRevenue = %d, want 0", stats.TodayRevenue)
	}
}

func TestNormalizeStatus_BangChuanHoa(t *testing.T) {
	cases := []struct {
		raw       string
		want      string
		wantKnown bool
	}{
		{"pending", ordermodels.StatusPending, true},
		{"processing", ordermodels.StatusProcessing, true},
		{"completed", ordermodels.StatusCompleted, true},
		{"cancelled", ordermodels.StatusCancelled, true},
		{"delivered", ordermodels.StatusCompleted, true}, // synonym cũ
		{"canceled", ordermodels.StatusCancelled, true},  // chính tả Mỹ trong dữ liệu cũ
		{"Delivered", ordermodels.StatusCompleted, true}, // không phân biệt hoa thường
		{"  COMPLETED  ", ordermodels.StatusCompleted, true},
		{"", ordermodels.StatusPending, false},
		{"shipped", ordermodels.StatusPending, false}, // ngoài bộ nhận dạng -> pending
	}
	for _, c := range cases {
		got, known := NormalizeStatus(c.raw)
		if got != c.want || known != c.wantKnown {
			t.Errorf("NormalizeStatus(%q) = (%q, %v), want (%q, %v)", c.raw, got, known, c.want, c.wantKnown)
		}
	}
}

func TestDeriveStats_DeliveredTinhNhuCompleted(t *testing.T) {
	today := testNow.UnixMilli()
	stats := DeriveStats([]ordermodels.Order{
		order("delivered", 2, today),
		order("completed", 2, today),
	}, nil, testNow, testLoc)

	if stats.TodayRevenue != 148 {
		t.Errorf("delivered phải tính doanh thu như completed: todayRevenue = %d, want 148", stats.TodayRevenue)
	}
	if stats.TotalRevenue != 148 {
		t.Errorf("delivered phải tính doanh thu như completed: totalRevenue = %d, want 148", stats.TotalRevenue)
	}
}

func TestDeriveStats_QuantityThieuTinhLa1(t *testing.T) {
	stats := DeriveStats([]ordermodels.Order{
		order(ordermodels.StatusCompleted, 0, testNow.UnixMilli()),
	}, nil, testNow, testLoc)
	if stats.TodayRevenue != ordermodels.JarUnitPrice {
		t.Errorf("đơn thiếu quantity phải tính 1 bình: todayRevenue = %d, want %d", stats.TodayRevenue, ordermodels.JarUnitPrice)
	}
}

func TestDeriveStats_CreatedAtHongTinhLaBayGio(t *testing.T) {
	// createdAt không parse được -> coi như tạo lúc này, tức thuộc "hôm nay".
	// Một bản ghi hỏng không được làm hỏng cả lần tính.
	stats := DeriveStats([]ordermodels.Order{
		order(ordermodels.StatusCompleted, 1, "not-a-date"),
		order(ordermodels.StatusCompleted, 1, nil),
	}, []usermodels.User{user("garbage")}, testNow, testLoc)

	if stats.TodayRevenue != 74 {
		t.Errorf("createdAt hỏng phải tính là bây giờ: todayRevenue = %d, want 74", stats.TodayRevenue)
	}
	if stats.NewCustomersToday != 1 {
		t.Errorf("user có createdAt hỏng tính là tạo hôm nay: newCustomersToday = %d, want 1", stats.NewCustomersToday)
	}
	if stats.TotalOrders != 2 || stats.TotalUsers != 1 {
		t.Errorf("bản ghi hỏng vẫn phải được đếm: totalOrders = %d, totalUsers = %d", stats.TotalOrders, stats.TotalUsers)
	}
}

func TestDeriveStats_CreatedAtDaHinhDang(t *testing.T) {
	// createdAt có thể là epoch millis, chuỗi ISO hoặc time.Time — cùng một
	// thời điểm thì phải cho cùng kết quả.
	moment := testNow.Add(-1 * time.Hour)
	shapes := []interface{}{
		moment.UnixMilli(),
		moment.Format(time.RFC3339),
		moment,
	}
	for _, shape := range shapes {
		stats := DeriveStats([]ordermodels.Order{
			order(ordermodels.StatusCompleted, 1, shape),
		}, nil, testNow, testLoc)
		if stats.TodayRevenue != 37 {
			t.Errorf("createdAt dạng %T phải được chuẩn hóa: todayRevenue = %d, want 37", shape, stats.TodayRevenue)
		}
	}
}

func TestDeriveStats_RongTraVeKhong(t *testing.T) {
	stats := DeriveStats(nil, nil, testNow, testLoc)
	if stats != (dashboardmodels.DashboardStats{}) {
		t.Errorf("không có dữ liệu thì mọi KPI phải bằng 0: got %+v", stats)
	}
}

func TestDeriveStats_QuantityTrongItemsSchemaCu(t *testing.T) {
	// Đơn import từ Firestore lưu số bình trong items[0].quantity —
	// quantity phẳng thiếu thì phải lấy từ items, không được mặc định 1.
	today := testNow.Add(-1 * time.Hour).UnixMilli()

	legacy := ordermodels.Order{
		Status:    ordermodels.StatusCompleted,
		Items:     []ordermodels.OrderItem{{Name: "Bình 20L", Quantity: 4}},
		CreatedAt: today,
	}
	stats := DeriveStats([]ordermodels.Order{legacy}, nil, testNow, testLoc)
	if stats.TodayRevenue != 148 || stats.TotalRevenue != 148 {
		t.Errorf("items[0].quantity = 4 phải cho doanh thu 148: today = %d, total = %d",
			stats.TodayRevenue, stats.TotalRevenue)
	}

	// quantity phẳng có giá trị thì thắng items
	both := legacy
	both.Quantity = 2
	stats = DeriveStats([]ordermodels.Order{both}, nil, testNow, testLoc)
	if stats.TodayRevenue != 74 {
		t.Errorf("quantity phẳng phải được ưu tiên hơn items: todayRevenue = %d, want 74", stats.TodayRevenue)
	}

	// items rỗng hoặc quantity trong items cũng thiếu thì về mặc định 1 bình
	empty := ordermodels.Order{
		Status:    ordermodels.StatusCompleted,
		Items:     []ordermodels.OrderItem{{Name: "Bình 20L"}},
		CreatedAt: today,
	}
	stats = DeriveStats([]ordermodels.Order{empty}, nil, testNow, testLoc)
	if stats.TodayRevenue != 37 {
		t.Errorf("items không có quantity phải tính là 1 bình: todayRevenue = %d, want 37", stats.TodayRevenue)
	}
}

func TestDeriveStats_ChuoiGioDiaPhuongTheoTimezone(t *testing.T) {
	// Chuỗi createdAt không mang timezone là giờ địa phương VN. Lúc 06:00
	// sáng giờ VN, đơn ghi "00:30" cùng ngày phải nằm trong "hôm nay" —
	// nếu parse nhầm thành UTC nó rơi về hôm qua.
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("không load được timezone VN: %v", err)
	}
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, loc)

	stats := DeriveStats([]ordermodels.Order{
		order(ordermodels.StatusCompleted, 1, "2026-03-10 00:30:00"),
	}, nil, now, loc)
	if stats.TodayRevenue != 37 {
		t.Errorf("đơn 00:30 giờ VN phải thuộc hôm nay: todayRevenue = %d, want 37", stats.TodayRevenue)
	}

	// Đơn "23:30" hôm qua giờ VN phải nằm ngoài cửa sổ hôm nay
	stats = DeriveStats([]ordermodels.Order{
		order(ordermodels.StatusCompleted, 1, "2026-03-09 23:30:00"),
	}, nil, now, loc)
	if stats.TodayRevenue != 0 || stats.TotalRevenue != 37 {
		t.Errorf("đơn hôm qua chỉ được vào tổng: today = %d, total = %d", stats.TodayRevenue, stats.TotalRevenue)
	}
}
