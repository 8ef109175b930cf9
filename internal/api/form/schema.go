// Package form cung cấp validation form theo cấu hình cho các màn hình admin.
// Mỗi màn hình khai báo schema (field → rule), và toàn bộ form được kiểm tra
// bằng cùng một luật chung thay vì viết validation riêng cho từng màn hình.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arya-5990/devnaturaloiladmin/internal/common"
)

// FieldKind phân loại field trong form
type FieldKind string

const (
	KindText   FieldKind = "text"   // Trường văn bản
	KindNumber FieldKind = "number" // Trường số
	KindImage  FieldKind = "image"  // Trường file ảnh
)

// FieldRule định nghĩa luật kiểm tra cho một field
type FieldRule struct {
	Required bool      // Bắt buộc nhập
	Kind     FieldKind // Loại dữ liệu
	Label    string    // Tên hiển thị trong thông báo lỗi (mặc định dùng tên field)
}

// Schema là tập luật kiểm tra của một màn hình, map field name → rule
type Schema map[string]FieldRule

// Values là dữ liệu form đã parse: field name → giá trị chuỗi.
// Field ảnh dùng HasImage riêng vì file không đi qua map này.
type Values map[string]string

// requiredError trả về lỗi VAL_001 nêu đích danh field bị thiếu
func requiredError(field string, rule FieldRule) error {
	label := rule.Label
	if label == "" {
		label = field
	}
	return common.NewError(
		common.ErrCodeValidationInput,
		fmt.Sprintf("Vui lòng nhập %s", label),
		common.StatusBadRequest,
		map[string]string{"field": field},
	)
}

// formatError trả về lỗi VAL_002 cho field sai định dạng
func formatError(field string, rule FieldRule) error {
	label := rule.Label
	if label == "" {
		label = field
	}
	return common.NewError(
		common.ErrCodeValidationFormat,
		fmt.Sprintf("%s phải là số hợp lệ", label),
		common.StatusBadRequest,
		map[string]string{"field": field},
	)
}

// Validate kiểm tra values theo schema.
// hasImage cho biết request có kèm file ảnh hay không (cho field Kind = image).
// Trả về lỗi đầu tiên gặp phải; không có lời gọi store hay upload nào được
// thực hiện khi validation thất bại.
func (s Schema) Validate(values Values, hasImage bool) error {
	for field, rule := range s {
		switch rule.Kind {
		case KindImage:
			if rule.Required && !hasImage {
				return requiredError(field, rule)
			}
		case KindNumber:
			raw := strings.TrimSpace(values[field])
			if raw == "" {
				if rule.Required {
					return requiredError(field, rule)
				}
				continue
			}
			if _, err := strconv.ParseFloat(raw, 64); err != nil {
				return formatError(field, rule)
			}
		default: // KindText
			if rule.Required && strings.TrimSpace(values[field]) == "" {
				return requiredError(field, rule)
			}
		}
	}
	return nil
}

// Number lấy giá trị số từ values.
// Trường rỗng trả về 0 (ngữ nghĩa numeric không bắt buộc); chuỗi không phải số trả về lỗi.
func Number(values Values, field string) (float64, error) {
	raw := strings.TrimSpace(values[field])
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, formatError(field, FieldRule{Kind: KindNumber})
	}
	return n, nil
}

// Int lấy giá trị số nguyên từ values, rỗng trả về 0.
func Int(values Values, field string) (int, error) {
	n, err := Number(values, field)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
