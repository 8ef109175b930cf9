package main

import (
	"github.com/sirupsen/logrus"

	"github.com/arya-5990/devnaturaloiladmin/config"
	"github.com/arya-5990/devnaturaloiladmin/internal/database"
	"github.com/arya-5990/devnaturaloiladmin/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database.
// Tên giữ nguyên như dữ liệu đang có trên production để không phải migrate.
func initColNames() {
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.ComboProducts = "combo-products"
	global.MongoDB_ColNames.Blogs = "blogs"
	global.MongoDB_ColNames.Banners = "banners"
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Testimonials = "testimonials"
	global.MongoDB_ColNames.Users = "users"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (global.InitValidator đăng ký custom validator: no_xss)
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
}
