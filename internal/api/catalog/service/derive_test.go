package catalogsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDiscount(t *testing.T) {
	// Giá gốc lớn hơn giá bán: chiết khấu làm tròn 2 chữ số
	assert.Equal(t, 20.0, ComputeDiscount(250, 200))
	assert.Equal(t, 33.33, ComputeDiscount(300, 200))
	assert.Equal(t, 66.67, ComputeDiscount(300, 100))

	// Không có chiết khấu khi giá gốc không lớn hơn giá bán
	assert.Equal(t, 0.0, ComputeDiscount(200, 200))
	assert.Equal(t, 0.0, ComputeDiscount(150, 200))

	// Giá gốc không hợp lệ
	assert.Equal(t, 0.0, ComputeDiscount(0, 100))
	assert.Equal(t, 0.0, ComputeDiscount(-10, 5))
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		display string
		value   float64
		unit    string
	}{
		{"500 ml", 500, "ml"},
		{"2.5l", 2.5, "l"},
		{"  100 g  ", 100, "g"},
		{"500", 500, "ml"},
		{"", 0, "ml"},
		{"ba chai", 0, "ml"},
		{"3 gói nhỏ", 3, "gói nhỏ"},
	}
	for _, tc := range cases {
		value, unit := ParseQuantity(tc.display)
		assert.Equal(t, tc.value, value, "display=%q", tc.display)
		assert.Equal(t, tc.unit, unit, "display=%q", tc.display)
	}
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "500 ml", FormatQuantity(500, "ml"))
	assert.Equal(t, "2.5 l", FormatQuantity(2.5, "l"))
	assert.Equal(t, "0 ml", FormatQuantity(0, ""))
}

// Chuỗi hiển thị ghép từ FormatQuantity phải tách lại được nguyên vẹn
// bằng ParseQuantity (dữ liệu ghi hôm nay là dữ liệu cũ của ngày mai).
func TestQuantityRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		value float64
		unit  string
	}{
		{500, "ml"}, {2.5, "l"}, {1, "hộp"}, {0.75, "kg"},
	} {
		value, unit := ParseQuantity(FormatQuantity(tc.value, tc.unit))
		assert.Equal(t, tc.value, value)
		assert.Equal(t, tc.unit, unit)
	}
}
