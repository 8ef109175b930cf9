package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner lưu banner trang chủ (collection banners)
type Banner struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Text     string `json:"text" bson:"text"`
	ImageURL string `json:"imageUrl" bson:"imageUrl"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
