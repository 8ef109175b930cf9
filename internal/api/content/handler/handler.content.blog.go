// Package contenthdl - Handler cho domain content (blogs, banners, categories).
//
// Cùng quy trình submit với domain catalog: validate form → upload ảnh → ghi
// database. Validation thất bại thì không upload, upload thất bại thì không ghi.
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

// BlogHandler xử lý CRUD bài viết blog
type BlogHandler struct {
	BlogService *contentsvc.BlogService
	Uploader    *upload.Client
}

// NewBlogHandler tạo BlogHandler mới
func NewBlogHandler() (*BlogHandler, error) {
	svc, err := contentsvc.NewBlogService()
	if err != nil {
		return nil, fmt.Errorf("tạo BlogService: %w", err)
	}
	return &BlogHandler{
		BlogService: svc,
		Uploader:    upload.NewClient(global.MongoDB_ServerConfig),
	}, nil
}

// blogSchema là luật kiểm tra form bài viết
func blogSchema(requireImage bool) form.Schema {
	return form.Schema{
		"title":     {Required: true, Kind: form.KindText, Label: "tiêu đề bài viết"},
		"content":   {Required: true, Kind: form.KindText, Label: "nội dung bài viết"},
		"thumbnail": {Required: requireImage, Kind: form.KindImage, Label: "ảnh thumbnail"},
	}
}

// parseBlogForm đọc multipart form bài viết, validate và upload thumbnail nếu có
func (h *BlogHandler) parseBlogForm(c fiber.Ctx, requireImage bool) (contentdto.BlogInput, error) {
	var input contentdto.BlogInput

	values := form.Values{
		"title":   c.FormValue("title"),
		"content": c.FormValue("content"),
	}

	imageData, filename, err := basehdl.ReadFormFile(c, "thumbnail")
	if err != nil {
		return input, err
	}

	if err := blogSchema(requireImage).Validate(values, imageData != nil); err != nil {
		return input, err
	}

	input.Title = values["title"]
	input.Content = values["content"]

	if imageData != nil {
		imageURL, err := h.Uploader.Upload(c.Context(), imageData, filename)
		if err != nil {
			return input, err
		}
		input.ThumbnailURL = imageURL
	}

	return input, nil
}

// respondWithList trả về danh sách bài viết mới nhất sau mỗi thao tác ghi
func (h *BlogHandler) respondWithList(c fiber.Ctx, message string) error {
	items, err := h.BlogService.List(c.Context())
	if err != nil {
		return basehdl.RespondError(c, err)
	}
	return basehdl.RespondSuccess(c, message, items)
}

// HandleListBlogs xử lý GET /blogs
func (h *BlogHandler) HandleListBlogs(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		items, err := h.BlogService.List(c.Context())
		return basehdl.HandleResponse(c, items, err)
	})
}

// HandleCreateBlog xử lý POST /blogs (multipart form, thumbnail bắt buộc)
func (h *BlogHandler) HandleCreateBlog(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input, err := h.parseBlogForm(c, true)
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.BlogService.Create(c.Context(), input); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Thêm bài viết thành công")
	})
}

// HandleUpdateBlog xử lý PUT /blogs/:id (multipart form, thumbnail tùy chọn)
func (h *BlogHandler) HandleUpdateBlog(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		input, err := h.parseBlogForm(c, false)
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.BlogService.Update(c.Context(), id, input); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Cập nhật bài viết thành công")
	})
}

// HandleDeleteBlog xử lý DELETE /blogs/:id?confirm=true
func (h *BlogHandler) HandleDeleteBlog(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := basehdl.RequireConfirm(c, "xóa bài viết"); err != nil {
			return basehdl.RespondError(c, err)
		}
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if err := h.BlogService.Delete(c.Context(), id); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Xóa bài viết thành công")
	})
}
