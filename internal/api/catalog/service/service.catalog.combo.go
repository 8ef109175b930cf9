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
	"github.com/arya-5990/devnaturaloiladmin/internal/logger"
)

// MaxBestSellers là số combo tối đa được gắn cờ bán chạy
const MaxBestSellers = 4

// ComboService là service quản lý sản phẩm combo
type ComboService struct {
	*basesvc.BaseServiceMongoImpl[models.ComboProduct]
}

// NewComboService tạo mới ComboService
func NewComboService() (*ComboService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ComboProducts)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.ComboProducts, common.ErrNotFound)
	}
	return &ComboService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ComboProduct](coll),
	}, nil
}

// List trả về tất cả combo, productId lớn nhất (mới nhất) trước
func (s *ComboService) List(ctx context.Context) ([]models.ComboProduct, error) {
	opts := options.Find().SetSort(bson.D{{Key: "productId", Value: -1}})
	return s.Find(ctx, bson.D{}, opts)
}

// nextProductID tính mã tuần tự kế tiếp từ kết quả truy vấn top-1 theo
// productId giảm dần: max + 1, collection rỗng bắt đầu từ 1.
func nextProductID(top []models.ComboProduct) int {
	if len(top) == 0 {
		return 1
	}
	return top[0].ProductId + 1
}

// CanEnableBestSeller kiểm tra còn chỗ trong danh sách bán chạy không.
// count là số combo khác đang giữ cờ.
func CanEnableBestSeller(count int64) bool {
	return count < MaxBestSellers
}

// NextProductID cấp mã tuần tự cho combo mới. Đọc max và ghi không nằm
// trong transaction nên hai người tạo đồng thời có thể nhận cùng mã.
func (s *ComboService) NextProductID(ctx context.Context) (int, error) {
	top, err := s.FindTop(ctx, "productId", -1, 1)
	if err != nil {
		return 0, err
	}
	return nextProductID(top), nil
}

// Create tạo combo mới với mã tuần tự, discount dẫn xuất và chuỗi hiển thị
// số lượng. Cả hai cờ khuyến mãi khởi tạo là false.
func (s *ComboService) Create(ctx context.Context, input catalogdto.ComboInput) (models.ComboProduct, error) {
	nextID, err := s.NextProductID(ctx)
	if err != nil {
		return models.ComboProduct{}, err
	}

	combo := models.ComboProduct{
		ProductId:     nextID,
		Title:         input.Title,
		Description:   input.Description,
		ActualMRP:     input.ActualMRP,
		OfferedMRP:    input.OfferedMRP,
		Discount:      ComputeDiscount(input.ActualMRP, input.OfferedMRP),
		QuantityValue: input.QuantityValue,
		QuantityUnit:  input.QuantityUnit,
		TotalQuantity: FormatQuantity(input.QuantityValue, input.QuantityUnit),
		ImageURL:      input.ImageURL,
	}
	return s.InsertOne(ctx, combo)
}

// Update cập nhật combo. ProductId và hai cờ khuyến mãi không đổi qua form sửa;
// ImageURL rỗng nghĩa là giữ nguyên ảnh cũ.
func (s *ComboService) Update(ctx context.Context, id primitive.ObjectID, input catalogdto.ComboInput) (models.ComboProduct, error) {
	set := map[string]interface{}{
		"title":         input.Title,
		"description":   input.Description,
		"actualMRP":     input.ActualMRP,
		"offeredMRP":    input.OfferedMRP,
		"discount":      ComputeDiscount(input.ActualMRP, input.OfferedMRP),
		"quantityValue": input.QuantityValue,
		"quantityUnit":  input.QuantityUnit,
		"totalQuantity": FormatQuantity(input.QuantityValue, input.QuantityUnit),
	}
	if input.ImageURL != "" {
		set["imageUrl"] = input.ImageURL
	}
	return s.UpdateById(ctx, id, basesvc.UpdateData{Set: set})
}

// Delete xóa combo theo ObjectID
func (s *ComboService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}

// EditBuffer nạp dữ liệu combo vào form sửa. Bản ghi cũ chưa có
// quantityValue/quantityUnit riêng được tách lại từ chuỗi hiển thị.
func (s *ComboService) EditBuffer(ctx context.Context, id primitive.ObjectID) (catalogdto.ComboFormBuffer, error) {
	combo, err := s.FindOneById(ctx, id)
	if err != nil {
		return catalogdto.ComboFormBuffer{}, err
	}

	value := combo.QuantityValue
	unit := combo.QuantityUnit
	if unit == "" {
		value, unit = ParseQuantity(combo.TotalQuantity)
	}

	return catalogdto.ComboFormBuffer{
		ID:            combo.ID.Hex(),
		ProductId:     combo.ProductId,
		Title:         combo.Title,
		Description:   combo.Description,
		ActualMRP:     combo.ActualMRP,
		OfferedMRP:    combo.OfferedMRP,
		QuantityValue: value,
		QuantityUnit:  unit,
		ImageURL:      combo.ImageURL,
	}, nil
}

// planUnsetHolders liệt kê các combo phải gỡ cờ độc quyền khi gắn cờ cho target:
// mọi combo đang giữ cờ trừ chính target. Gỡ hết danh sách này rồi gắn cho
// target thì còn lại đúng một combo giữ cờ. Không ghi gì, chỉ lập kế hoạch.
func planUnsetHolders(holders []models.ComboProduct, target primitive.ObjectID) []models.ComboProduct {
	var toUnset []models.ComboProduct
	for _, holder := range holders {
		if holder.ID == target {
			continue
		}
		toUnset = append(toUnset, holder)
	}
	return toUnset
}

// SetProductOfTheDay gắn cờ "sản phẩm của ngày" cho combo id.
// Tối đa một combo giữ cờ tại một thời điểm: các combo đang giữ cờ
// được gỡ trước, sau đó mới gắn cho combo đích.
func (s *ComboService) SetProductOfTheDay(ctx context.Context, id primitive.ObjectID) (models.ComboProduct, error) {
	holders, err := s.Find(ctx, bson.M{"isProductOfTheDay": true}, nil)
	if err != nil {
		return models.ComboProduct{}, err
	}
	for _, holder := range planUnsetHolders(holders, id) {
		if _, err := s.UpdateById(ctx, holder.ID, basesvc.UpdateData{
			Set: map[string]interface{}{"isProductOfTheDay": false},
		}); err != nil {
			return models.ComboProduct{}, err
		}
		logger.GetAppLogger().WithField("productId", holder.ProductId).Info("Đã gỡ cờ sản phẩm của ngày khỏi combo cũ")
	}

	return s.UpdateById(ctx, id, basesvc.UpdateData{
		Set: map[string]interface{}{"isProductOfTheDay": true},
	})
}

// UnsetProductOfTheDay gỡ cờ "sản phẩm của ngày" khỏi combo id
func (s *ComboService) UnsetProductOfTheDay(ctx context.Context, id primitive.ObjectID) (models.ComboProduct, error) {
	return s.UpdateById(ctx, id, basesvc.UpdateData{
		Set: map[string]interface{}{"isProductOfTheDay": false},
	})
}

// SetBestSeller gắn cờ bán chạy cho combo id. Đã đủ MaxBestSellers combo
// giữ cờ (không tính chính combo đích) thì từ chối, không ghi gì.
func (s *ComboService) SetBestSeller(ctx context.Context, id primitive.ObjectID) (models.ComboProduct, error) {
	count, err := s.CountDocuments(ctx, bson.M{
		"isBestSeller": true,
		"_id":          bson.M{"$ne": id},
	})
	if err != nil {
		return models.ComboProduct{}, err
	}
	if !CanEnableBestSeller(count) {
		return models.ComboProduct{}, common.NewError(
			common.ErrCodeBusinessState,
			"Chỉ được chọn tối đa 4 sản phẩm bán chạy. Vui lòng bỏ chọn một sản phẩm trước.",
			common.StatusBadRequest,
			map[string]interface{}{"currentBestSellers": count},
		)
	}

	return s.UpdateById(ctx, id, basesvc.UpdateData{
		Set: map[string]interface{}{"isBestSeller": true},
	})
}

// UnsetBestSeller gỡ cờ bán chạy khỏi combo id
func (s *ComboService) UnsetBestSeller(ctx context.Context, id primitive.ObjectID) (models.ComboProduct, error) {
	return s.UpdateById(ctx, id, basesvc.UpdateData{
		Set: map[string]interface{}{"isBestSeller": false},
	})
}

// Featured trả về view các combo đang được gắn cờ khuyến mãi
func (s *ComboService) Featured(ctx context.Context) (catalogdto.FeaturedView, error) {
	view := catalogdto.FeaturedView{BestSellers: []models.ComboProduct{}}

	holders, err := s.Find(ctx, bson.M{"isProductOfTheDay": true}, nil)
	if err != nil {
		return view, err
	}
	if len(holders) > 0 {
		view.ProductOfTheDay = &holders[0]
	}

	opts := options.Find().SetSort(bson.D{{Key: "productId", Value: -1}})
	bestSellers, err := s.Find(ctx, bson.M{"isBestSeller": true}, opts)
	if err != nil {
		return view, err
	}
	view.BestSellers = bestSellers

	return view, nil
}
