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

// BannerHandler xử lý CRUD banner trang chủ
type BannerHandler struct {
	BannerService *contentsvc.BannerService
	Uploader      *upload.Client
}

// NewBannerHandler tạo BannerHandler mới
func NewBannerHandler() (*BannerHandler, error) {
	svc, err := contentsvc.NewBannerService()
	if err != nil {
		return nil, fmt.Errorf("tạo BannerService: %w", err)
	}
	return &BannerHandler{
		BannerService: svc,
		Uploader:      upload.NewClient(global.MongoDB_ServerConfig),
	}, nil
}

// bannerSchema là luật kiểm tra form banner
func bannerSchema(requireImage bool) form.Schema {
	return form.Schema{
		"text":  {Required: true, Kind: form.KindText, Label: "nội dung banner"},
		"image": {Required: requireImage, Kind: form.KindImage, Label: "ảnh banner"},
	}
}

// parseBannerForm đọc multipart form banner, validate và upload ảnh nếu có
func (h *BannerHandler) parseBannerForm(c fiber.Ctx, requireImage bool) (contentdto.BannerInput, error) {
	var input contentdto.BannerInput

	values := form.Values{
		"text": c.FormValue("text"),
	}

	imageData, filename, err := basehdl.ReadFormFile(c, "image")
	if err != nil {
		return input, err
	}

	if err := bannerSchema(requireImage).Validate(values, imageData != nil); err != nil {
		return input, err
	}

	input.Text = values["text"]

	if imageData != nil {
		imageURL, err := h.Uploader.Upload(c.Context(), imageData, filename)
		if err != nil {
			return input, err
		}
		input.ImageURL = imageURL
	}

	return input, nil
}

// respondWithList trả về danh sách banner mới nhất sau mỗi thao tác ghi
func (h *BannerHandler) respondWithList(c fiber.Ctx, message string) error {
	items, err := h.BannerService.List(c.Context())
	if err != nil {
		return basehdl.RespondError(c, err)
	}
	return basehdl.RespondSuccess(c, message, items)
}

// HandleListBanners xử lý GET /banners
func (h *BannerHandler) HandleListBanners(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		items, err := h.BannerService.List(c.Context())
		return basehdl.HandleResponse(c, items, err)
	})
}

// HandleCreateBanner xử lý POST /banners (multipart form, ảnh bắt buộc)
func (h *BannerHandler) HandleCreateBanner(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input, err := h.parseBannerForm(c, true)
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.BannerService.Create(c.Context(), input); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Thêm banner thành công")
	})
}

// HandleUpdateBanner xử lý PUT /banners/:id (multipart form, ảnh tùy chọn)
func (h *BannerHandler) HandleUpdateBanner(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		input, err := h.parseBannerForm(c, false)
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.BannerService.Update(c.Context(), id, input); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Cập nhật banner thành công")
	})
}

// HandleDeleteBanner xử lý DELETE /banners/:id?confirm=true
func (h *BannerHandler) HandleDeleteBanner(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := basehdl.RequireConfirm(c, "xóa banner"); err != nil {
			return basehdl.RespondError(c, err)
		}
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if err := h.BannerService.Delete(c.Context(), id); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Xóa banner thành công")
	})
}
