package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeTimestamp(t *testing.T) {
	moment := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

	cases := []struct {
		name   string
		input  interface{}
		want   time.Time
		wantOk bool
	}{
		{"time.Time", moment, moment, true},
		{"con trỏ time.Time", &moment, moment, true},
		{"primitive.DateTime", primitive.NewDateTimeFromTime(moment), moment, true},
		{"epoch millis int64", moment.UnixMilli(), moment, true},
		{"epoch millis float64", float64(moment.UnixMilli()), moment, true},
		{"chuỗi RFC3339", "2026-03-10T08:30:00Z", moment, true},
		{"chuỗi ngày giờ", "2026-03-10 08:30:00", moment, true},
		{"chuỗi chỉ có ngày", "2026-03-10", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"nil", nil, time.Time{}, false},
		{"time.Time zero", time.Time{}, time.Time{}, false},
		{"epoch âm", int64(-5), time.Time{}, false},
		{"epoch bằng 0", int64(0), time.Time{}, false},
		{"chuỗi rỗng", "", time.Time{}, false},
		{"chuỗi rác", "not-a-date", time.Time{}, false},
		{"kiểu không hỗ trợ", []string{"x"}, time.Time{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := NormalizeTimestamp(c.input, time.UTC)
			require.Equal(t, c.wantOk, ok)
			if c.wantOk {
				assert.True(t, got.Equal(c.want), "got %v, want %v", got, c.want)
			}
		})
	}
}

// Chuỗi không mang timezone là giờ địa phương của dữ liệu cũ — phải parse
// theo loc truyền vào, nếu parse thành UTC thì bản ghi nằm sai ngày.
func TestNormalizeTimestamp_ChuoiKhongTimezoneTheoLoc(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	got, ok := NormalizeTimestamp("2026-03-10 08:30:00", loc)
	require.True(t, ok)

	// 08:30 giờ VN = 01:30 UTC cùng ngày (VN = UTC+7)
	want := time.Date(2026, 3, 10, 8, 30, 0, 0, loc)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
	assert.Equal(t, time.Date(2026, 3, 10, 1, 30, 0, 0, time.UTC).Unix(), got.Unix())

	// Chuỗi có sẵn timezone thì loc không được làm đổi thời điểm
	withZone, ok := NormalizeTimestamp("2026-03-10T08:30:00Z", loc)
	require.True(t, ok)
	assert.True(t, withZone.Equal(time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)))

	// Không truyền loc thì mặc định giờ máy chủ
	fallback, ok := NormalizeTimestamp("2026-03-10 08:30:00", nil)
	require.True(t, ok)
	assert.Equal(t, time.Local.String(), fallback.Location().String())
}

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	// 01:30 sáng 11/03 giờ VN = 18:30 ngày 10/03 UTC — nửa đêm phải theo loc
	moment := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)
	got := StartOfDay(moment, loc)

	want := time.Date(2026, 3, 11, 0, 0, 0, 0, loc)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
}
