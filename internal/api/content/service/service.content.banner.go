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

// BannerService là service quản lý banner trang chủ
type BannerService struct {
	*basesvc.BaseServiceMongoImpl[models.Banner]
}

// NewBannerService tạo mới BannerService
func NewBannerService() (*BannerService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Banners)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Banners, common.ErrNotFound)
	}
	return &BannerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Banner](coll),
	}, nil
}

// List trả về tất cả banner, mới tạo trước
func (s *BannerService) List(ctx context.Context) ([]models.Banner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.D{}, opts)
}

// Create tạo banner mới
func (s *BannerService) Create(ctx context.Context, input contentdto.BannerInput) (models.Banner, error) {
	banner := models.Banner{
		Text:     input.Text,
		ImageURL: input.ImageURL,
	}
	return s.InsertOne(ctx, banner)
}

// Update cập nhật banner. ImageURL rỗng nghĩa là giữ nguyên ảnh cũ.
func (s *BannerService) Update(ctx context.Context, id primitive.ObjectID, input contentdto.BannerInput) (models.Banner, error) {
	set := map[string]interface{}{
		"text": input.Text,
	}
	if input.ImageURL != "" {
		set["imageUrl"] = input.ImageURL
	}
	return s.UpdateById(ctx, id, basesvc.UpdateData{Set: set})
}

// Delete xóa banner theo ObjectID
func (s *BannerService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}
