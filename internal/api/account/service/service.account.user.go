// Package accountsvc - service cho domain account (users).
package accountsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arya-5990/devnaturaloiladmin/internal/api/account/models"
	basesvc "github.com/arya-5990/devnaturaloiladmin/internal/api/base/service"
	"github.com/arya-5990/devnaturaloiladmin/internal/common"
	"github.com/arya-5990/devnaturaloiladmin/internal/global"
)

// UserService là service quản lý người dùng đã đăng ký
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Users, common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](coll),
	}, nil
}

// List trả về tất cả người dùng, đăng ký mới nhất trước
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.D{}, opts)
}

// Delete xóa người dùng theo ObjectID
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}
