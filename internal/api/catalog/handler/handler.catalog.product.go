// Package cataloghdl - Handler cho domain catalog (products, combo-products).
//
// Các form submit dạng multipart/form-data: validate toàn bộ form trước,
// upload ảnh sau, cuối cùng mới ghi database. Validation thất bại thì
// không có upload hay ghi dữ liệu nào xảy ra.
package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/arya-5990/devnaturaloiladmin/internal/api/base/handler"
	catalogdto "github.com/arya-5990/devnaturaloiladmin/internal/api/catalog/dto"
	catalogsvc "github.com/arya-5990/devnaturaloiladmin/internal/api/catalog/service"
	"github.com/arya-5990/devnaturaloiladmin/internal/api/form"
	"github.com/arya-5990/devnaturaloiladmin/internal/api/upload"
	"github.com/arya-5990/devnaturaloiladmin/internal/global"
)

// ProductHandler xử lý CRUD sản phẩm đơn
type ProductHandler struct {
	ProductService *catalogsvc.ProductService
	Uploader       *upload.Client
}

// NewProductHandler tạo ProductHandler mới
func NewProductHandler() (*ProductHandler, error) {
	svc, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductService: %w", err)
	}
	return &ProductHandler{
		ProductService: svc,
		Uploader:       upload.NewClient(global.MongoDB_ServerConfig),
	}, nil
}

// productSchema là luật kiểm tra form sản phẩm.
// requireImage = true khi tạo mới (phải có ảnh), false khi sửa (giữ ảnh cũ).
func productSchema(requireImage bool) form.Schema {
	return form.Schema{
		"title":         {Required: true, Kind: form.KindText, Label: "tên sản phẩm"},
		"description":   {Required: true, Kind: form.KindText, Label: "mô tả sản phẩm"},
		"actualMRP":     {Required: true, Kind: form.KindNumber, Label: "giá gốc"},
		"offeredMRP":    {Required: true, Kind: form.KindNumber, Label: "giá bán"},
		"rating":        {Required: false, Kind: form.KindNumber, Label: "đánh giá"},
		"totalQuantity": {Required: false, Kind: form.KindNumber, Label: "số lượng"},
		"image":         {Required: requireImage, Kind: form.KindImage, Label: "ảnh sản phẩm"},
	}
}

// parseProductForm đọc multipart form, validate theo schema và upload ảnh nếu có.
// Trả về input đã hoàn chỉnh (ImageURL rỗng khi không có ảnh mới).
func (h *ProductHandler) parseProductForm(c fiber.Ctx, requireImage bool) (catalogdto.ProductInput, error) {
	var input catalogdto.ProductInput

	values := form.Values{
		"title":         c.FormValue("title"),
		"description":   c.FormValue("description"),
		"actualMRP":     c.FormValue("actualMRP"),
		"offeredMRP":    c.FormValue("offeredMRP"),
		"rating":        c.FormValue("rating"),
		"totalQuantity": c.FormValue("totalQuantity"),
	}

	imageData, filename, err := basehdl.ReadFormFile(c, "image")
	if err != nil {
		return input, err
	}

	if err := productSchema(requireImage).Validate(values, imageData != nil); err != nil {
		return input, err
	}

	input.Title = values["title"]
	input.Description = values["description"]
	if input.ActualMRP, err = form.Number(values, "actualMRP"); err != nil {
		return input, err
	}
	if input.OfferedMRP, err = form.Number(values, "offeredMRP"); err != nil {
		return input, err
	}
	if input.Rating, err = form.Number(values, "rating"); err != nil {
		return input, err
	}
	if input.TotalQuantity, err = form.Int(values, "totalQuantity"); err != nil {
		return input, err
	}

	// Upload chỉ chạy sau khi toàn bộ form hợp lệ
	if imageData != nil {
		imageURL, err := h.Uploader.Upload(c.Context(), imageData, filename)
		if err != nil {
			return input, err
		}
		input.ImageURL = imageURL
	}

	return input, nil
}

// respondWithList trả về danh sách sản phẩm mới nhất sau mỗi thao tác ghi,
// client không cần gọi thêm request để refresh màn hình.
func (h *ProductHandler) respondWithList(c fiber.Ctx, message string) error {
	items, err := h.ProductService.List(c.Context())
	if err != nil {
		return basehdl.RespondError(c, err)
	}
	return basehdl.RespondSuccess(c, message, items)
}

// HandleListProducts xử lý GET /products
func (h *ProductHandler) HandleListProducts(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		items, err := h.ProductService.List(c.Context())
		return basehdl.HandleResponse(c, items, err)
	})
}

// HandleCreateProduct xử lý POST /products (multipart form, ảnh bắt buộc)
func (h *ProductHandler) HandleCreateProduct(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input, err := h.parseProductForm(c, true)
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.ProductService.Create(c.Context(), input); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Thêm sản phẩm thành công")
	})
}

// HandleUpdateProduct xử lý PUT /products/:id (multipart form, ảnh tùy chọn)
func (h *ProductHandler) HandleUpdateProduct(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		input, err := h.parseProductForm(c, false)
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.ProductService.Update(c.Context(), id, input); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Cập nhật sản phẩm thành công")
	})
}

// HandleDeleteProduct xử lý DELETE /products/:id?confirm=true
func (h *ProductHandler) HandleDeleteProduct(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := basehdl.RequireConfirm(c, "xóa sản phẩm"); err != nil {
			return basehdl.RespondError(c, err)
		}
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if err := h.ProductService.Delete(c.Context(), id); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Xóa sản phẩm thành công")
	})
}
