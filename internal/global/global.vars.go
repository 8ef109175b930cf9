package global

import (
	"github.com/arya-5990/devnaturaloiladmin/config"
	"github.com/arya-5990/devnaturaloiladmin/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Catalog_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Catalog_CollectionName struct {
	Products      string // Tên collection cho sản phẩm đơn
	ComboProducts string // Tên collection cho sản phẩm combo
	Blogs         string // Tên collection cho bài viết blog
	Banners       string // Tên collection cho banner trang chủ
	Categories    string // Tên collection cho danh mục sản phẩm
	Testimonials  string // Tên collection cho đánh giá của khách hàng
	Users         string // Tên collection cho người dùng
}

// Các biến toàn cục
var Validate *validator.Validate                                                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                          // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                             // Cấu hình của server
var MongoDB_ColNames MongoDB_Catalog_CollectionName = *new(MongoDB_Catalog_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
