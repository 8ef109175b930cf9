package contenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/arya-5990/devnaturaloiladmin/internal/api/base/handler"
	contentdto "github.com/arya-5990/devnaturaloiladmin/internal/api/content/dto"
	contentsvc "github.com/arya-5990/devnaturaloiladmin/internal/api/content/service"
	"github.com/arya-5990/devnaturaloiladmin/internal/api/form"
	"github.com/arya-5990/devnaturaloiladmin/internal/api/upload"
	"github.com/arya-5990/devnaturaloiladmin/internal/global"
)

// CategoryHandler xử lý CRUD danh mục sản phẩm
type CategoryHandler struct {
	CategoryService *contentsvc.CategoryService
	Uploader        *upload.Client
}

// NewCategoryHandler tạo CategoryHandler mới
func NewCategoryHandler() (*CategoryHandler, error) {
	svc, err := contentsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("tạo CategoryService: %w", err)
	}
	return &CategoryHandler{
		CategoryService: svc,
		Uploader:        upload.NewClient(global.MongoDB_ServerConfig),
	}, nil
}

// categorySchema là luật kiểm tra form danh mục
func categorySchema(requireImage bool) form.Schema {
	return form.Schema{
		"name":  {Required: true, Kind: form.KindText, Label: "tên danh mục"},
		"image": {Required: requireImage, Kind: form.KindImage, Label: "ảnh danh mục"},
	}
}

// parseCategoryForm đọc multipart form danh mục, validate và upload ảnh nếu có
func (h *CategoryHandler) parseCategoryForm(c fiber.Ctx, requireImage bool) (contentdto.CategoryInput, error) {
	var input contentdto.CategoryInput

	values := form.Values{
		"name": c.FormValue("name"),
	}

	imageData, filename, err := basehdl.ReadFormFile(c, "image")
	if err != nil {
		return input, err
	}

	if err := categorySchema(requireImage).Validate(values, imageData != nil); err != nil {
		return input, err
	}

	input.Name = values["name"]

	if imageData != nil {
		imageURL, err := h.Uploader.Upload(c.Context(), imageData, filename)
		if err != nil {
			return input, err
		}
		input.ImageURL = imageURL
	}

	return input, nil
}

// respondWithList trả về danh sách danh mục mới nhất sau mỗi thao tác ghi
func (h *CategoryHandler) respondWithList(c fiber.Ctx, message string) error {
	items, err := h.CategoryService.List(c.Context())
	if err != nil {
		return basehdl.RespondError(c, err)
	}
	return basehdl.RespondSuccess(c, message, items)
}

// HandleListCategories xử lý GET /categories
func (h *CategoryHandler) HandleListCategories(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		items, err := h.CategoryService.List(c.Context())
		return basehdl.HandleResponse(c, items, err)
	})
}

// HandleCreateCategory xử lý POST /categories (multipart form, ảnh bắt buộc)
func (h *CategoryHandler) HandleCreateCategory(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input, err := h.parseCategoryForm(c, true)
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.CategoryService.Create(c.Context(), input); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Thêm danh mục thành công")
	})
}

// HandleUpdateCategory xử lý PUT /categories/:id (multipart form, ảnh tùy chọn)
func (h *CategoryHandler) HandleUpdateCategory(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		input, err := h.parseCategoryForm(c, false)
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.CategoryService.Update(c.Context(), id, input); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Cập nhật danh mục thành công")
	})
}

// HandleDeleteCategory xử lý DELETE /categories/:id?confirm=true
func (h *CategoryHandler) HandleDeleteCategory(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := basehdl.RequireConfirm(c, "xóa danh mục"); err != nil {
			return basehdl.RespondError(c, err)
		}
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if err := h.CategoryService.Delete(c.Context(), id); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Xóa danh mục thành công")
	})
}
