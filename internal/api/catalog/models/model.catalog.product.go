// Package models - các model thuộc domain catalog (products, combo-products).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product lưu sản phẩm đơn (collection products).
type Product struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// ProductId là mã tuần tự hiển thị cho admin, cấp khi tạo mới
	ProductId int `json:"productId" bson:"productId"`

	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`

	// Giá và chiết khấu. Discount là giá trị dẫn xuất từ hai mức giá,
	// được tính lại và lưu lại mỗi lần submit.
	ActualMRP  float64 `json:"actualMRP" bson:"actualMRP"`
	OfferedMRP float64 `json:"offeredMRP" bson:"offeredMRP"`
	Discount   float64 `json:"discount" bson:"discount"`

	Rating        float64 `json:"rating" bson:"rating"`
	TotalQuantity int     `json:"totalQuantity" bson:"totalQuantity"`

	ImageURL string `json:"imageUrl" bson:"imageUrl"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
