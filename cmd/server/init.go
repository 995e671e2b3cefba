package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"aqua_commerce/config"
	deletionmodels "aqua_commerce/internal/api/deletion/models"
	ordermodels "aqua_commerce/internal/api/order/models"
	usermodels "aqua_commerce/internal/api/user/models"
	"aqua_commerce/internal/database"
	"aqua_commerce/internal/global"
	"aqua_commerce/internal/utility"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase
}

// Hàm khởi tạo validator (đăng ký custom validators: no_xss, vn_phone, order_status)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo database và các collection nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection theo tag `index` trong model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), usermodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Orders), ordermodels.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Subscriptions), ordermodels.Subscription{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.DeletionRequests), deletionmodels.DeletionRequest{})
	// dashboard_stats chỉ có một document với _id cố định, không cần index riêng
}

// initFirebase khởi tạo Firebase Admin SDK để verify ID token
func initFirebase() {
	cfg := global.MongoDB_ServerConfig
	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config không đầy đủ, bỏ qua khởi tạo Firebase")
		return
	}

	if err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath); err != nil {
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		return
	}
	logrus.Info("Firebase initialized successfully")
}
