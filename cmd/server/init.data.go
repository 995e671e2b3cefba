package main

import (
	"context"
	"time"

	dashboardsvc "aqua_commerce/internal/api/dashboard/service"
	usersvc "aqua_commerce/internal/api/user/service"
	"aqua_commerce/internal/global"
	"aqua_commerce/internal/logger"
)

func InitDefaultData() {
	log := logger.GetAppLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. Seed document thống kê dashboard nếu chưa có (idempotent)
	statsService, err := dashboardsvc.NewStatsService()
	if err != nil {
		log.Fatalf("Failed to initialize stats service: %v", err)
	}
	if _, created, err := statsService.EnsureInitialized(ctx); err != nil {
		log.Fatalf("Failed to initialize dashboard stats: %v", err)
	} else if created {
		log.Info("Dashboard stats seeded with zero values")
	} else {
		log.Info("Dashboard stats already exists")
	}

	// 2. Gán quyền admin cho user từ Firebase UID trong config (tùy chọn).
	// User phải đã đăng nhập ít nhất một lần (đã có bản ghi trong users).
	adminUID := global.MongoDB_ServerConfig.FirebaseAdminUID
	if adminUID == "" {
		log.Info("FIREBASE_ADMIN_UID not set, skipping admin seeding")
		return
	}

	userService, err := usersvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}
	if _, err := userService.SetAdmin(ctx, adminUID, true); err != nil {
		log.Warnf("Failed to set admin for UID %s (user chưa tồn tại?): %v", adminUID, err)
	} else {
		log.Infof("Admin user initialized from Firebase UID %s", adminUID)
	}
}
