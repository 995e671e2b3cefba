package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aqua_commerce/internal/database"
	"aqua_commerce/internal/global"
	"aqua_commerce/internal/logger"
	"aqua_commerce/internal/worker"
)

// initLogger khởi tạo hệ thống log cho toàn bộ ứng dụng
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// statsWorkerLocation trả về timezone cho worker thống kê, lỗi thì dùng giờ server
func statsWorkerLocation() *time.Location {
	log := logger.GetAppLogger()
	loc, err := time.LoadLocation(global.MongoDB_ServerConfig.StatsTimezone)
	if err != nil {
		log.Warnf("Timezone %s không hợp lệ, worker dùng giờ server: %v", global.MongoDB_ServerConfig.StatsTimezone, err)
		return time.Local
	}
	return loc
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData()

	log := logger.GetAppLogger()

	// Worker tính lại thống kê theo lịch (nửa đêm + định kỳ)
	statsWorker, err := worker.NewStatsRefreshWorker(
		global.MongoDB_ServerConfig.StatsRefreshMinutes,
		statsWorkerLocation(),
	)
	if err != nil {
		log.Fatalf("Failed to create stats refresh worker: %v", err)
	}
	statsWorker.Start()

	// Khởi tạo Fiber app và chạy server trong goroutine riêng
	app := InitFiberApp()
	address := global.MongoDB_ServerConfig.Address
	go func() {
		log.WithFields(map[string]interface{}{
			"address": address,
		}).Info("Starting Fiber server")
		if err := app.Listen(address); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}()

	// Chờ tín hiệu dừng rồi shutdown có trật tự:
	// dừng worker -> đóng HTTP server -> đóng kết nối MongoDB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received, stopping server...")

	statsWorker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	if err := database.CloseInstance(global.MongoDB_Session); err != nil {
		log.Errorf("Error closing MongoDB connection: %v", err)
	}

	log.Info("Server stopped")
}
