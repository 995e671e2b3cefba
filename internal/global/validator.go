package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("vn_phone", validateVNPhone)
	_ = Validate.RegisterValidation("order_status", validateOrderStatus)
}

// validateNoXSS kiểm tra XSS trong input text
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"<iframe",
		"<object",
		"<embed",
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

var vnPhonePattern = regexp.MustCompile(`^(0|\+84)[0-9]{9,10}$`)

// validateVNPhone kiểm tra số điện thoại Việt Nam (0xxx hoặc +84xxx)
func validateVNPhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // optional field, dùng required nếu bắt buộc
	}
	return vnPhonePattern.MatchString(value)
}

// validateOrderStatus kiểm tra trạng thái đơn hàng nằm trong tập cho phép.
// Dữ liệu cũ có thể chứa "delivered"/"canceled" nên vẫn chấp nhận các alias này.
func validateOrderStatus(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "pending", "processing", "completed", "cancelled", "delivered", "canceled":
		return true
	}
	return false
}
