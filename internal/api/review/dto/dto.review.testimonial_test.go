// Package reviewdto - Test luật validate của form đánh giá.
package reviewdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arya-5990/devnaturaloiladmin/internal/global"
)

func TestTestimonialInput_Validate(t *testing.T) {
	global.InitValidator()

	// Input hợp lệ
	err := global.Validate.Struct(TestimonialInput{
		ReviewerName: "Nguyễn Văn A",
		Comment:      "Sản phẩm rất tốt",
		Rating:       4.5,
	})
	assert.NoError(t, err)

	// Thiếu trường bắt buộc
	err = global.Validate.Struct(TestimonialInput{Comment: "Tốt"})
	assert.Error(t, err)

	// Rating ngoài khoảng 0-5
	err = global.Validate.Struct(TestimonialInput{
		ReviewerName: "Nguyễn Văn A",
		Comment:      "Tốt",
		Rating:       6,
	})
	assert.Error(t, err)
}

func TestTestimonialInput_RejectsScriptInjection(t *testing.T) {
	global.InitValidator()

	// Nội dung chứa script bị chặn ở tầng validate, không tới được database
	err := global.Validate.Struct(TestimonialInput{
		ReviewerName: "Nguyễn Văn A",
		Comment:      `<script>alert(1)</script>`,
		Rating:       5,
	})
	assert.Error(t, err)

	// Tên chứa handler sự kiện cũng bị chặn
	err = global.Validate.Struct(TestimonialInput{
		ReviewerName: `<img onerror=steal()>`,
		Comment:      "Tốt",
		Rating:       5,
	})
	assert.Error(t, err)
}
