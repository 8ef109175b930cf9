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

// ComboHandler xử lý CRUD sản phẩm combo và các cờ khuyến mãi
type ComboHandler struct {
	ComboService *catalogsvc.ComboService
	Uploader     *upload.Client
}

// NewComboHandler tạo ComboHandler mới
func NewComboHandler() (*ComboHandler, error) {
	svc, err := catalogsvc.NewComboService()
	if err != nil {
		return nil, fmt.Errorf("tạo ComboService: %w", err)
	}
	return &ComboHandler{
		ComboService: svc,
		Uploader:     upload.NewClient(global.MongoDB_ServerConfig),
	}, nil
}

// comboSchema là luật kiểm tra form combo
func comboSchema(requireImage bool) form.Schema {
	return form.Schema{
		"title":         {Required: true, Kind: form.KindText, Label: "tên combo"},
		"description":   {Required: true, Kind: form.KindText, Label: "mô tả combo"},
		"actualMRP":     {Required: true, Kind: form.KindNumber, Label: "giá gốc"},
		"offeredMRP":    {Required: true, Kind: form.KindNumber, Label: "giá bán"},
		"quantityValue": {Required: true, Kind: form.KindNumber, Label: "số lượng"},
		"quantityUnit":  {Required: false, Kind: form.KindText, Label: "đơn vị"},
		"image":         {Required: requireImage, Kind: form.KindImage, Label: "ảnh combo"},
	}
}

// parseComboForm đọc multipart form combo, validate và upload ảnh nếu có
func (h *ComboHandler) parseComboForm(c fiber.Ctx, requireImage bool) (catalogdto.ComboInput, error) {
	var input catalogdto.ComboInput

	values := form.Values{
		"title":         c.FormValue("title"),
		"description":   c.FormValue("description"),
		"actualMRP":     c.FormValue("actualMRP"),
		"offeredMRP":    c.FormValue("offeredMRP"),
		"quantityValue": c.FormValue("quantityValue"),
		"quantityUnit":  c.FormValue("quantityUnit"),
	}

	imageData, filename, err := basehdl.ReadFormFile(c, "image")
	if err != nil {
		return input, err
	}

	if err := comboSchema(requireImage).Validate(values, imageData != nil); err != nil {
		return input, err
	}

	input.Title = values["title"]
	input.Description = values["description"]
	input.QuantityUnit = values["quantityUnit"]
	if input.QuantityUnit == "" {
		input.QuantityUnit = catalogsvc.DefaultQuantityUnit
	}
	if input.ActualMRP, err = form.Number(values, "actualMRP"); err != nil {
		return input, err
	}
	if input.OfferedMRP, err = form.Number(values, "offeredMRP"); err != nil {
		return input, err
	}
	if input.QuantityValue, err = form.Number(values, "quantityValue"); err != nil {
		return input, err
	}

	if imageData != nil {
		imageURL, err := h.Uploader.Upload(c.Context(), imageData, filename)
		if err != nil {
			return input, err
		}
		input.ImageURL = imageURL
	}

	return input, nil
}

// respondWithList trả về danh sách combo mới nhất sau mỗi thao tác ghi
func (h *ComboHandler) respondWithList(c fiber.Ctx, message string) error {
	items, err := h.ComboService.List(c.Context())
	if err != nil {
		return basehdl.RespondError(c, err)
	}
	return basehdl.RespondSuccess(c, message, items)
}

// HandleListCombos xử lý GET /combo-products
func (h *ComboHandler) HandleListCombos(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		items, err := h.ComboService.List(c.Context())
		return basehdl.HandleResponse(c, items, err)
	})
}

// HandleGetComboForm xử lý GET /combo-products/:id/form - dữ liệu nạp vào form sửa
func (h *ComboHandler) HandleGetComboForm(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		buffer, err := h.ComboService.EditBuffer(c.Context(), id)
		return basehdl.HandleResponse(c, buffer, err)
	})
}

// HandleCreateCombo xử lý POST /combo-products (multipart form, ảnh bắt buộc)
func (h *ComboHandler) HandleCreateCombo(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input, err := h.parseComboForm(c, true)
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.ComboService.Create(c.Context(), input); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Thêm combo thành công")
	})
}

// HandleUpdateCombo xử lý PUT /combo-products/:id (multipart form, ảnh tùy chọn)
func (h *ComboHandler) HandleUpdateCombo(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		input, err := h.parseComboForm(c, false)
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.ComboService.Update(c.Context(), id, input); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Cập nhật combo thành công")
	})
}

// HandleDeleteCombo xử lý DELETE /combo-products/:id?confirm=true
func (h *ComboHandler) HandleDeleteCombo(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := basehdl.RequireConfirm(c, "xóa combo"); err != nil {
			return basehdl.RespondError(c, err)
		}
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if err := h.ComboService.Delete(c.Context(), id); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Xóa combo thành công")
	})
}

// HandleSetProductOfTheDay xử lý PUT /combo-products/:id/product-of-the-day?confirm=true.
// Bật cờ cho combo này đồng thời gỡ cờ khỏi combo đang giữ (nếu có) nên cần xác nhận.
func (h *ComboHandler) HandleSetProductOfTheDay(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := basehdl.RequireConfirm(c, "chọn sản phẩm của ngày"); err != nil {
			return basehdl.RespondError(c, err)
		}
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.ComboService.SetProductOfTheDay(c.Context(), id); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Đã chọn sản phẩm của ngày")
	})
}

// HandleUnsetProductOfTheDay xử lý DELETE /combo-products/:id/product-of-the-day
func (h *ComboHandler) HandleUnsetProductOfTheDay(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.ComboService.UnsetProductOfTheDay(c.Context(), id); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Đã bỏ chọn sản phẩm của ngày")
	})
}

// HandleSetBestSeller xử lý PUT /combo-products/:id/best-seller?confirm=true.
// Gắn cờ là thao tác ảnh hưởng trang chủ nên cần xác nhận trước khi ghi.
func (h *ComboHandler) HandleSetBestSeller(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := basehdl.RequireConfirm(c, "thêm vào danh sách bán chạy"); err != nil {
			return basehdl.RespondError(c, err)
		}
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.ComboService.SetBestSeller(c.Context(), id); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Đã thêm vào danh sách bán chạy")
	})
}

// HandleUnsetBestSeller xử lý DELETE /combo-products/:id/best-seller
func (h *ComboHandler) HandleUnsetBestSeller(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.ComboService.UnsetBestSeller(c.Context(), id); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Đã bỏ khỏi danh sách bán chạy")
	})
}

// HandleGetFeatured xử lý GET /combo-products/featured
func (h *ComboHandler) HandleGetFeatured(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		view, err := h.ComboService.Featured(c.Context())
		return basehdl.HandleResponse(c, view, err)
	})
}
