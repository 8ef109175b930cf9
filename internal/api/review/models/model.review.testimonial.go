// Package models - các model thuộc domain review (testimonials).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial lưu đánh giá của khách hàng (collection testimonials)
type Testimonial struct {
	MongoID primitive.ObjectID `json:"mongoId,omitempty" bson:"_id,omitempty"`

	// Mã tuần tự hướng người dùng, cấp bằng max hiện có + 1 khi tạo mới.
	// Bản ghi cũ chưa có mã (id = 0) được cấp bù khi load danh sách.
	ID int `json:"id" bson:"id"`

	ReviewerName string  `json:"reviewerName" bson:"reviewerName"`
	Comment      string  `json:"comment" bson:"comment"`
	Rating       float64 `json:"rating" bson:"rating"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
