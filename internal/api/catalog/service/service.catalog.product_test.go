// Package catalogsvc - Test cấp mã tuần tự cho sản phẩm đơn.
package catalogsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arya-5990/devnaturaloiladmin/internal/api/catalog/models"
)

func TestNextSingleProductID(t *testing.T) {
	// Collection rỗng: bắt đầu từ 1
	assert.Equal(t, 1, nextSingleProductID(nil))
	assert.Equal(t, 1, nextSingleProductID([]models.Product{}))

	// Có dữ liệu: max + 1 (truy vấn top-1 giảm dần nên phần tử đầu là max)
	assert.Equal(t, 12, nextSingleProductID([]models.Product{{ProductId: 11}}))

	// Mã bị hổng (đã xóa sản phẩm ở giữa) vẫn chỉ dựa vào max, không lấp hổng
	assert.Equal(t, 43, nextSingleProductID([]models.Product{{ProductId: 42}}))
}
