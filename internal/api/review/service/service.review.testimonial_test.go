// Package reviewsvc - Test kế hoạch cấp bù mã tuần tự cho đánh giá cũ.
package reviewsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arya-5990/devnaturaloiladmin/internal/api/review/models"
)

func TestPlanBackfill_NoMissingIDs(t *testing.T) {
	items := []models.Testimonial{{ID: 1}, {ID: 2}, {ID: 3}}
	assert.Empty(t, planBackfill(items))
}

func TestPlanBackfill_AssignsAfterMax(t *testing.T) {
	// Bản ghi cũ (id = 0) xen giữa các bản ghi đã có mã
	items := []models.Testimonial{{ID: 2}, {ID: 0}, {ID: 5}, {ID: 0}}
	assignments := planBackfill(items)

	assert.Len(t, assignments, 2)
	// Mã cấp bù tiếp nối max hiện có (5), theo thứ tự tạo
	assert.Equal(t, 1, assignments[0].index)
	assert.Equal(t, 6, assignments[0].id)
	assert.Equal(t, 3, assignments[1].index)
	assert.Equal(t, 7, assignments[1].id)
}

func TestPlanBackfill_AllMissing(t *testing.T) {
	items := []models.Testimonial{{ID: 0}, {ID: 0}}
	assignments := planBackfill(items)

	assert.Len(t, assignments, 2)
	assert.Equal(t, 1, assignments[0].id)
	assert.Equal(t, 2, assignments[1].id)
}

func TestPlanBackfill_Empty(t *testing.T) {
	assert.Empty(t, planBackfill(nil))
}
