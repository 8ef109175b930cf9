// Package reviewdto - các cấu trúc input thuộc domain review.
package reviewdto

// TestimonialInput là dữ liệu submit của form đánh giá (JSON body, không có ảnh).
// Tên và nội dung do khách nhập tự do nên phải qua kiểm tra no_xss trước khi lưu.
type TestimonialInput struct {
	ReviewerName string  `json:"reviewerName" validate:"required,no_xss"`
	Comment      string  `json:"comment" validate:"required,no_xss"`
	Rating       float64 `json:"rating" validate:"gte=0,lte=5"`
}
