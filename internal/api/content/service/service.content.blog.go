// Package contentsvc - service cho domain content (blogs, banners, categories).
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

// BlogService là service quản lý bài viết blog
type BlogService struct {
	*basesvc.BaseServiceMongoImpl[models.Blog]
}

// NewBlogService tạo mới BlogService
func NewBlogService() (*BlogService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Blogs)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Blogs, common.ErrNotFound)
	}
	return &BlogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Blog](coll),
	}, nil
}

// List trả về tất cả bài viết, mới tạo trước
func (s *BlogService) List(ctx context.Context) ([]models.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.D{}, opts)
}

// Create tạo bài viết mới
func (s *BlogService) Create(ctx context.Context, input contentdto.BlogInput) (models.Blog, error) {
	blog := models.Blog{
		Title:        input.Title,
		Content:      input.Content,
		ThumbnailURL: input.ThumbnailURL,
	}
	return s.InsertOne(ctx, blog)
}

// Update cập nhật bài viết. ThumbnailURL rỗng nghĩa là giữ nguyên ảnh cũ.
func (s *BlogService) Update(ctx context.Context, id primitive.ObjectID, input contentdto.BlogInput) (models.Blog, error) {
	set := map[string]interface{}{
		"title":   input.Title,
		"content": input.Content,
	}
	if input.ThumbnailURL != "" {
		set["thumbnailUrl"] = input.ThumbnailURL
	}
	return s.UpdateById(ctx, id, basesvc.UpdateData{Set: set})
}

// Delete xóa bài viết theo ObjectID
func (s *BlogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}
