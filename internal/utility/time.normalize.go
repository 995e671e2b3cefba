package utility

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các layout chấp nhận khi createdAt là chuỗi (dữ liệu cũ import từ nhiều nguồn)
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeTimestamp chuẩn hóa giá trị createdAt đa hình trong dữ liệu cũ về time.Time.
// Chấp nhận: time.Time, primitive.DateTime, epoch millis (int/int32/int64/float64),
// chuỗi theo các layout phổ biến. Trả về ok=false nếu không parse được —
// caller tự quyết định giá trị mặc định (thường là thời điểm hiện tại).
// Chuỗi không mang timezone ("2006-01-02 15:04:05", "2006-01-02") là giờ địa
// phương của dữ liệu cũ — parse theo loc để xếp đúng ngày, không phải UTC.
func NormalizeTimestamp(v interface{}, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t, true
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	case primitive.DateTime:
		return t.Time(), true
	case int64:
		if t <= 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(t), true
	case int32:
		if t <= 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(t)), true
	case int:
		if t <= 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(t)), true
	case float64:
		if t <= 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(t)), true
	case string:
		if t == "" {
			return time.Time{}, false
		}
		for _, layout := range timestampLayouts {
			if parsed, err := time.ParseInLocation(layout, t, loc); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// StartOfDay trả về mốc nửa đêm của ngày chứa t theo timezone loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
