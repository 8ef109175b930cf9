// Package catalogdto - các cấu trúc input/output thuộc domain catalog.
package catalogdto

import (
	"github.com/arya-5990/devnaturaloiladmin/internal/api/catalog/models"
)

// ProductInput là dữ liệu submit của form sản phẩm đơn
// (đã parse từ multipart form, ảnh đã upload xong nếu có).
type ProductInput struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ActualMRP     float64 `json:"actualMRP"`
	OfferedMRP    float64 `json:"offeredMRP"`
	Rating        float64 `json:"rating"`
	TotalQuantity int     `json:"totalQuantity"`

	// ImageURL rỗng khi sửa mà không chọn ảnh mới: giữ nguyên ảnh cũ.
	ImageURL string `json:"imageUrl"`
}

// ComboInput là dữ liệu submit của form sản phẩm combo
type ComboInput struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ActualMRP     float64 `json:"actualMRP"`
	OfferedMRP    float64 `json:"offeredMRP"`
	QuantityValue float64 `json:"quantityValue"`
	QuantityUnit  string  `json:"quantityUnit"`
	ImageURL      string  `json:"imageUrl"`
}

// ComboFormBuffer là dữ liệu nạp vào form khi sửa combo.
// QuantityValue/QuantityUnit được tách lại từ chuỗi hiển thị
// với các bản ghi cũ chưa có hai trường riêng.
type ComboFormBuffer struct {
	ID            string  `json:"id"`
	ProductId     int     `json:"productId"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ActualMRP     float64 `json:"actualMRP"`
	OfferedMRP    float64 `json:"offeredMRP"`
	QuantityValue float64 `json:"quantityValue"`
	QuantityUnit  string  `json:"quantityUnit"`
	ImageURL      string  `json:"imageUrl"`
}

// FeaturedView gom các combo đang được gắn cờ khuyến mãi
type FeaturedView struct {
	ProductOfTheDay *models.ComboProduct  `json:"productOfTheDay"`
	BestSellers     []models.ComboProduct `json:"bestSellers"`
}
