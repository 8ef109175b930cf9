package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/arya-5990/devnaturaloiladmin/internal/api/base/service"
	contentdto "github.com/arya-5990/devnaturaloiladmin/internal/api/content/dto"
	"github.com/arya-5990/devnaturaloiladmin/internal/api/content/models"
	"github.com/arya-5990/devnaturaloiladmin/internal/common"
	"github.com/arya-5990/devnaturaloiladmin/internal/global"
)

// CategoryService là service quản lý danh mục sản phẩm
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Categories, common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](coll),
	}, nil
}

// List trả về tất cả danh mục, mới tạo trước
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.D{}, opts)
}

// Create tạo danh mục mới
func (s *CategoryService) Create(ctx context.Context, input contentdto.CategoryInput) (models.Category, error) {
	category := models.Category{
		Name:     input.Name,
		ImageURL: input.ImageURL,
	}
	return s.InsertOne(ctx, category)
}

// Update cập nhật danh mục. ImageURL rỗng nghĩa là giữ nguyên ảnh cũ.
func (s *CategoryService) Update(ctx context.Context, id primitive.ObjectID, input contentdto.CategoryInput) (models.Category, error) {
	set := map[string]interface{}{
		"name": input.Name,
	}
	if input.ImageURL != "" {
		set["imageUrl"] = input.ImageURL
	}
	return s.UpdateById(ctx, id, basesvc.UpdateData{Set: set})
}

// Delete xóa danh mục theo ObjectID
func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}
