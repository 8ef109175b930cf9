package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category lưu danh mục sản phẩm (collection categories)
type Category struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name     string `json:"name" bson:"name"`
	ImageURL string `json:"imageUrl" bson:"imageUrl"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
