// Package reviewsvc - service cho domain review (testimonials).
package reviewsvc

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/arya-5990/devnaturaloiladmin/internal/api/base/service"
	reviewdto "github.com/arya-5990/devnaturaloiladmin/internal/api/review/dto"
	"github.com/arya-5990/devnaturaloiladmin/internal/api/review/models"
	"github.com/arya-5990/devnaturaloiladmin/internal/common"
	"github.com/arya-5990/devnaturaloiladmin/internal/global"
	"github.com/arya-5990/devnaturaloiladmin/internal/logger"
)

// DefaultRating là số sao mặc định khi form không nhập đánh giá
const DefaultRating = 5

// TestimonialService là service quản lý đánh giá của khách hàng
type TestimonialService struct {
	*basesvc.BaseServiceMongoImpl[models.Testimonial]
}

// NewTestimonialService tạo mới TestimonialService
func NewTestimonialService() (*TestimonialService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Testimonials)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Testimonials, common.ErrNotFound)
	}
	return &TestimonialService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Testimonial](coll),
	}, nil
}

// idAssignment ghi lại một lần cấp bù mã: vị trí trong slice và mã được cấp
type idAssignment struct {
	index int
	id    int
}

// planBackfill tính các mã cần cấp bù cho bản ghi thiếu mã (id = 0).
// Mã cấp bù tiếp nối max hiện có, theo thứ tự xuất hiện trong items
// (items đã sắp theo thứ tự tạo). Không ghi gì, chỉ lập kế hoạch.
func planBackfill(items []models.Testimonial) []idAssignment {
	maxID := 0
	for _, item := range items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	var assignments []idAssignment
	for i := range items {
		if items[i].ID != 0 {
			continue
		}
		maxID++
		assignments = append(assignments, idAssignment{index: i, id: maxID})
	}
	return assignments
}

// NextID cấp mã tuần tự cho đánh giá mới: max id hiện có + 1, collection rỗng
// bắt đầu từ 1. Không đảm bảo duy nhất khi hai người cùng tạo đồng thời.
func (s *TestimonialService) NextID(ctx context.Context) (int, error) {
	top, err := s.FindTop(ctx, "id", -1, 1)
	if err != nil {
		return 0, err
	}
	if len(top) == 0 {
		return 1, nil
	}
	return top[0].ID + 1, nil
}

// List trả về tất cả đánh giá sắp xếp theo mã tuần tự tăng dần.
// Bản ghi cũ chưa có mã (id = 0) được cấp bù ngay lúc load và ghi lại database,
// nên lần load sau dữ liệu đã đầy đủ mã.
func (s *TestimonialService) List(ctx context.Context) ([]models.Testimonial, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	items, err := s.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	// Cấp bù mã cho bản ghi thiếu, theo thứ tự tạo
	for _, assign := range planBackfill(items) {
		updated, err := s.UpdateById(ctx, items[assign.index].MongoID, basesvc.UpdateData{
			Set: map[string]interface{}{"id": assign.id},
		})
		if err != nil {
			return nil, err
		}
		items[assign.index] = updated
		logger.GetAppLogger().WithField("id", assign.id).Info("Đã cấp bù mã cho đánh giá cũ")
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// Create tạo đánh giá mới với mã tuần tự. Rating không nhập (0) dùng DefaultRating.
func (s *TestimonialService) Create(ctx context.Context, input reviewdto.TestimonialInput) (models.Testimonial, error) {
	nextID, err := s.NextID(ctx)
	if err != nil {
		return models.Testimonial{}, err
	}

	rating := input.Rating
	if rating == 0 {
		rating = DefaultRating
	}

	testimonial := models.Testimonial{
		ID:           nextID,
		ReviewerName: input.ReviewerName,
		Comment:      input.Comment,
		Rating:       rating,
	}
	return s.InsertOne(ctx, testimonial)
}

// Update cập nhật đánh giá. Mã tuần tự không đổi qua form sửa.
func (s *TestimonialService) Update(ctx context.Context, id primitive.ObjectID, input reviewdto.TestimonialInput) (models.Testimonial, error) {
	rating := input.Rating
	if rating == 0 {
		rating = DefaultRating
	}
	return s.UpdateById(ctx, id, basesvc.UpdateData{
		Set: map[string]interface{}{
			"reviewerName": input.ReviewerName,
			"comment":      input.Comment,
			"rating":       rating,
		},
	})
}

// Delete xóa đánh giá theo ObjectID
func (s *TestimonialService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}
