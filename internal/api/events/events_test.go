// Package events - Test cơ chế phát event: handler panic không được làm mất
// event của handler khác và phải để lại dấu vết trong error log.
package events

import (
	"context"
	"testing"
	"time"

	"aqua_commerce/internal/logger"

	logrustest "github.com/sirupsen/logrus/hooks/test"
)

// TestEmitDataChanged_HandlerPanicKhongNuotLoi: một handler panic thì
// handler còn lại vẫn nhận event, và panic phải được ghi vào error log
// (không được recover rồi bỏ qua im lặng).
func TestEmitDataChanged_HandlerPanicKhongNuotLoi(t *testing.T) {
	hook := logrustest.NewLocal(logger.GetErrorLogger())
	defer hook.Reset()

	received := make(chan DataChangeEvent, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		panic("hỏng có chủ đích")
	})
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		received <- e
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "orders",
		Operation:      OpInsert,
	})

	select {
	case e := <-received:
		if e.CollectionName != "orders" || e.Operation != OpInsert {
			t.Errorf("Event nhận được sai nội dung: %+v", e)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Handler thường không nhận được event khi handler khác panic")
	}

	// Handler panic chạy trong goroutine riêng — chờ log xuất hiện.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if entry := hook.LastEntry(); entry != nil {
			if entry.Data["panic"] != "hỏng có chủ đích" {
				t.Errorf("Log panic thiếu giá trị recover, got: %v", entry.Data["panic"])
			}
			if entry.Data["collection"] != "orders" {
				t.Errorf("Log panic thiếu tên collection, got: %v", entry.Data["collection"])
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("Panic trong handler bị nuốt: không có gì trong error log")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
