// Package catalogsvc - service cho domain catalog (products, combo-products).
package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/arya-5990/devnaturaloiladmin/internal/api/base/service"
	catalogdto "github.com/arya-5990/devnaturaloiladmin/internal/api/catalog/dto"
	"github.com/arya-5990/devnaturaloiladmin/internal/api/catalog/models"
	"github.com/arya-5990/devnaturaloiladmin/internal/common"
	"github.com/arya-5990/devnaturaloiladmin/internal/global"
)

// ProductService là service quản lý sản phẩm đơn
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](coll),
	}, nil
}

// List trả về tất cả sản phẩm, productId lớn nhất (mới nhất) trước
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "productId", Value: -1}})
	return s.Find(ctx, bson.D{}, opts)
}

// nextSingleProductID tính mã tuần tự kế tiếp từ kết quả truy vấn top-1 theo
// productId giảm dần: max + 1, collection rỗng bắt đầu từ 1.
func nextSingleProductID(top []models.Product) int {
	if len(top) == 0 {
		return 1
	}
	return top[0].ProductId + 1
}

// NextProductID cấp mã tuần tự cho sản phẩm mới. Đọc max và ghi không nằm
// trong transaction nên hai người tạo đồng thời có thể nhận cùng mã.
func (s *ProductService) NextProductID(ctx context.Context) (int, error) {
	top, err := s.FindTop(ctx, "productId", -1, 1)
	if err != nil {
		return 0, err
	}
	return nextSingleProductID(top), nil
}

// Create tạo sản phẩm mới với mã tuần tự. Discount được tính lại từ hai mức giá,
// giá trị client gửi lên (nếu có) bị bỏ qua.
func (s *ProductService) Create(ctx context.Context, input catalogdto.ProductInput) (models.Product, error) {
	nextID, err := s.NextProductID(ctx)
	if err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		ProductId:     nextID,
		Title:         input.Title,
		Description:   input.Description,
		ActualMRP:     input.ActualMRP,
		OfferedMRP:    input.OfferedMRP,
		Discount:      ComputeDiscount(input.ActualMRP, input.OfferedMRP),
		Rating:        input.Rating,
		TotalQuantity: input.TotalQuantity,
		ImageURL:      input.ImageURL,
	}
	return s.InsertOne(ctx, product)
}

// Update cập nhật sản phẩm theo ngữ nghĩa merge: chỉ các trường của form
// được ghi đè, productId không đổi qua form sửa. ImageURL rỗng nghĩa là
// không đổi ảnh, giữ nguyên URL cũ.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, input catalogdto.ProductInput) (models.Product, error) {
	set := map[string]interface{}{
		"title":         input.Title,
		"description":   input.Description,
		"actualMRP":     input.ActualMRP,
		"offeredMRP":    input.OfferedMRP,
		"discount":      ComputeDiscount(input.ActualMRP, input.OfferedMRP),
		"rating":        input.Rating,
		"totalQuantity": input.TotalQuantity,
	}
	if input.ImageURL != "" {
		set["imageUrl"] = input.ImageURL
	}
	return s.UpdateById(ctx, id, basesvc.UpdateData{Set: set})
}

// Delete xóa sản phẩm theo ObjectID
func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}
