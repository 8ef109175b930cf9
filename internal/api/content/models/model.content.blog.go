// Package models - các model thuộc domain content (blogs, banners, categories).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog lưu bài viết blog (collection blogs)
type Blog struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title        string `json:"title" bson:"title"`
	Content      string `json:"content" bson:"content"`
	ThumbnailURL string `json:"thumbnailUrl" bson:"thumbnailUrl"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
