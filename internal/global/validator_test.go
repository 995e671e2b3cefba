package global

import (
	"testing"
)

func TestValidator_VnPhone(t *testing.T) {
	InitValidator()

	cases := []struct {
		phone string
		valid bool
	}{
		{"0912345678", true},
		{"+84912345678", true},
		{"", true}, // optional, dùng required nếu bắt buộc
		{"12345", false},
		{"0912", false},
		{"abc", false},
		{"+1555123456", false},
	}
	for _, c := range cases {
		err := Validate.Var(c.phone, "vn_phone")
		if (err == nil) != c.valid {
			t.Errorf("vn_phone(%q): err = %v, muốn valid = %v", c.phone, err, c.valid)
		}
	}
}

func TestValidator_NoXSS(t *testing.T) {
	InitValidator()

	if err := Validate.Var("Giao buổi sáng, gọi trước 15 phút", "no_xss"); err != nil {
		t.Errorf("text bình thường không được coi là XSS: %v", err)
	}
	dangerous := []string{
		"<script>alert(1)</script>",
		"javascript:void(0)",
		"<img onerror=alert(1)>",
		"<IFRAME src=x>",
	}
	for _, d := range dangerous {
		if err := Validate.Var(d, "no_xss"); err == nil {
			t.Errorf("input nguy hiểm phải bị chặn: %q", d)
		}
	}
}

func TestValidator_OrderStatus(t *testing.T) {
	InitValidator()

	valid := []string{"pending", "processing", "completed", "cancelled", "delivered", "canceled", "PENDING"}
	for _, s := range valid {
		if err := Validate.Var(s, "order_status"); err != nil {
			t.Errorf("trạng thái %q phải hợp lệ: %v", s, err)
		}
	}
	invalid := []string{"shipped", "done", ""}
	for _, s := range invalid {
		if err := Validate.Var(s, "order_status"); err == nil {
			t.Errorf("trạng thái %q phải bị từ chối", s)
		}
	}
}
