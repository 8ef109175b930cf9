package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComboProduct lưu sản phẩm combo (collection combo-products).
// Khác với Product, combo có mã tuần tự productId hướng người dùng,
// số lượng dạng compound (value + unit) và hai cờ khuyến mãi.
type ComboProduct struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Mã tuần tự hướng người dùng, cấp bằng max hiện có + 1 khi tạo mới.
	// Không đảm bảo duy nhất khi hai người cùng tạo đồng thời.
	ProductId int `json:"productId" bson:"productId"`

	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`

	ActualMRP  float64 `json:"actualMRP" bson:"actualMRP"`
	OfferedMRP float64 `json:"offeredMRP" bson:"offeredMRP"`
	Discount   float64 `json:"discount" bson:"discount"`

	// Số lượng dạng compound. TotalQuantity là chuỗi hiển thị "500 ml";
	// dữ liệu cũ chỉ có TotalQuantity và được parse lại khi mở form sửa.
	QuantityValue float64 `json:"quantityValue" bson:"quantityValue"`
	QuantityUnit  string  `json:"quantityUnit" bson:"quantityUnit"`
	TotalQuantity string  `json:"totalQuantity" bson:"totalQuantity"`

	ImageURL string `json:"imageUrl" bson:"imageUrl"`

	// Cờ khuyến mãi: tối đa một combo giữ IsProductOfTheDay,
	// tối đa bốn combo giữ IsBestSeller.
	IsProductOfTheDay bool `json:"isProductOfTheDay" bson:"isProductOfTheDay"`
	IsBestSeller      bool `json:"isBestSeller" bson:"isBestSeller"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
