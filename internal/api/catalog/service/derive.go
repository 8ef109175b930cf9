package catalogsvc

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// quantityPattern tách "500 ml" / "2.5l" thành phần số và phần đơn vị
var quantityPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(.+)$`)

// DefaultQuantityUnit là đơn vị mặc định khi dữ liệu cũ không ghi đơn vị
const DefaultQuantityUnit = "ml"

// ComputeDiscount tính phần trăm chiết khấu từ giá gốc và giá bán,
// làm tròn 2 chữ số thập phân. Giá gốc không lớn hơn giá bán → 0.
func ComputeDiscount(actualMRP, offeredMRP float64) float64 {
	if actualMRP <= 0 || actualMRP <= offeredMRP {
		return 0
	}
	discount := (actualMRP - offeredMRP) / actualMRP * 100
	return math.Round(discount*100) / 100
}

// ParseQuantity tách chuỗi hiển thị số lượng thành (giá trị, đơn vị).
// Hỗ trợ dữ liệu cũ chỉ lưu chuỗi "500 ml":
//   - "500 ml"  → (500, "ml")
//   - "2.5l"    → (2.5, "l")
//   - "500"     → (500, "ml")  (thiếu đơn vị, dùng mặc định)
//   - "" / rác  → (0, "ml")
func ParseQuantity(display string) (float64, string) {
	display = strings.TrimSpace(display)
	if display == "" {
		return 0, DefaultQuantityUnit
	}

	if match := quantityPattern.FindStringSubmatch(display); match != nil {
		value, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			unit := strings.TrimSpace(match[2])
			if unit == "" {
				unit = DefaultQuantityUnit
			}
			return value, unit
		}
	}

	// Chuỗi chỉ có phần số, không có đơn vị
	if value, err := strconv.ParseFloat(display, 64); err == nil {
		return value, DefaultQuantityUnit
	}

	return 0, DefaultQuantityUnit
}

// FormatQuantity ghép (giá trị, đơn vị) thành chuỗi hiển thị "500 ml".
// Đơn vị rỗng dùng đơn vị mặc định.
func FormatQuantity(value float64, unit string) string {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = DefaultQuantityUnit
	}
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + unit
}
