// Package catalogsvc - Test cấp mã tuần tự và giới hạn danh sách bán chạy.
package catalogsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arya-5990/devnaturaloiladmin/internal/api/catalog/models"
)

func TestNextProductID(t *testing.T) {
	// Collection rỗng: bắt đầu từ 1
	assert.Equal(t, 1, nextProductID(nil))
	assert.Equal(t, 1, nextProductID([]models.ComboProduct{}))

	// Có dữ liệu: max + 1 (truy vấn top-1 giảm dần nên phần tử đầu là max)
	assert.Equal(t, 8, nextProductID([]models.ComboProduct{{ProductId: 7}}))

	// Mã bị hổng (đã xóa combo ở giữa) vẫn chỉ dựa vào max, không lấp hổng
	assert.Equal(t, 43, nextProductID([]models.ComboProduct{{ProductId: 42}}))
}

func TestPlanUnsetHolders(t *testing.T) {
	a := models.ComboProduct{ID: primitive.NewObjectID(), ProductId: 1}
	b := models.ComboProduct{ID: primitive.NewObjectID(), ProductId: 2}
	c := models.ComboProduct{ID: primitive.NewObjectID(), ProductId: 3}

	// Chưa combo nào giữ cờ: không phải gỡ gì
	assert.Empty(t, planUnsetHolders(nil, b.ID))

	// A đang giữ cờ, gắn cho B: gỡ A, sau khi gắn còn đúng một combo giữ cờ
	assert.Equal(t, []models.ComboProduct{a}, planUnsetHolders([]models.ComboProduct{a}, b.ID))

	// Target đang giữ cờ sẵn: gắn lại không gỡ gì (idempotent)
	assert.Empty(t, planUnsetHolders([]models.ComboProduct{b}, b.ID))

	// Dữ liệu bẩn có nhiều combo cùng giữ cờ: gỡ tất cả trừ target
	assert.Equal(t, []models.ComboProduct{a, c}, planUnsetHolders([]models.ComboProduct{a, b, c}, b.ID))
}

func TestCanEnableBestSeller(t *testing.T) {
	assert.True(t, CanEnableBestSeller(0))
	assert.True(t, CanEnableBestSeller(3))
	assert.False(t, CanEnableBestSeller(4))
	assert.False(t, CanEnableBestSeller(5))
}
