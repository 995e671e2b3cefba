package common

import (
	"errors"
	"testing"
)

func TestError_Is(t *testing.T) {
	if !errors.Is(ErrNotFound, ErrNotFound) {
		t.Error("errors.Is phải nhận ra chính nó")
	}
	if errors.Is(ErrNotFound, ErrDuplicate) {
		t.Error("hai lỗi khác nhau không được coi là một")
	}

	wrapped := NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, "chi tiết")
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("lỗi cùng code + message phải match qua errors.Is dù details khác")
	}
}

func TestConvertMongoError(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("nil phải giữ nguyên nil, got %v", got)
	}

	// ErrNotFound đi qua không bị convert
	if got := ConvertMongoError(ErrNotFound); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound phải được giữ nguyên, got %v", got)
	}

	// Lỗi lạ được bọc thành lỗi database chung
	got := ConvertMongoError(errors.New("something broke"))
	var customErr *Error
	if !errors.As(got, &customErr) {
		t.Fatalf("lỗi convert phải là *Error, got %T", got)
	}
	if customErr.Code.Code != ErrCodeDatabase.Code {
		t.Errorf("lỗi lạ phải map về code DB, got %s", customErr.Code.Code)
	}
	if customErr.StatusCode != StatusInternalServerError {
		t.Errorf("status phải là 500, got %d", customErr.StatusCode)
	}
}
