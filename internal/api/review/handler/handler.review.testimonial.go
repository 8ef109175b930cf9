// Package reviewhdl - Handler cho domain review (testimonials).
package reviewhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/arya-5990/devnaturaloiladmin/internal/api/base/handler"
	reviewdto "github.com/arya-5990/devnaturaloiladmin/internal/api/review/dto"
	reviewsvc "github.com/arya-5990/devnaturaloiladmin/internal/api/review/service"
	"github.com/arya-5990/devnaturaloiladmin/internal/common"
	"github.com/arya-5990/devnaturaloiladmin/internal/global"
)

// TestimonialHandler xử lý CRUD đánh giá của khách hàng
type TestimonialHandler struct {
	TestimonialService *reviewsvc.TestimonialService
}

// NewTestimonialHandler tạo TestimonialHandler mới
func NewTestimonialHandler() (*TestimonialHandler, error) {
	svc, err := reviewsvc.NewTestimonialService()
	if err != nil {
		return nil, fmt.Errorf("tạo TestimonialService: %w", err)
	}
	return &TestimonialHandler{TestimonialService: svc}, nil
}

// parseTestimonialBody đọc JSON body và validate (form đánh giá không có ảnh)
func parseTestimonialBody(c fiber.Ctx) (reviewdto.TestimonialInput, error) {
	var input reviewdto.TestimonialInput
	if err := c.Bind().Body(&input); err != nil {
		return input, common.NewError(
			common.ErrCodeValidationFormat,
			"Dữ liệu gửi lên không đúng định dạng JSON",
			common.StatusBadRequest,
			err,
		)
	}
	if err := global.Validate.Struct(input); err != nil {
		return input, common.NewError(
			common.ErrCodeValidationInput,
			"Vui lòng nhập đầy đủ tên người đánh giá và nội dung (rating từ 0 đến 5)",
			common.StatusBadRequest,
			err.Error(),
		)
	}
	return input, nil
}

// respondWithList trả về danh sách đánh giá mới nhất sau mỗi thao tác ghi
func (h *TestimonialHandler) respondWithList(c fiber.Ctx, message string) error {
	items, err := h.TestimonialService.List(c.Context())
	if err != nil {
		return basehdl.RespondError(c, err)
	}
	return basehdl.RespondSuccess(c, message, items)
}

// HandleListTestimonials xử lý GET /testimonials
func (h *TestimonialHandler) HandleListTestimonials(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		items, err := h.TestimonialService.List(c.Context())
		return basehdl.HandleResponse(c, items, err)
	})
}

// HandleCreateTestimonial xử lý POST /testimonials (JSON body)
func (h *TestimonialHandler) HandleCreateTestimonial(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		input, err := parseTestimonialBody(c)
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.TestimonialService.Create(c.Context(), input); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Thêm đánh giá thành công")
	})
}

// HandleUpdateTestimonial xử lý PUT /testimonials/:id (JSON body)
func (h *TestimonialHandler) HandleUpdateTestimonial(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		input, err := parseTestimonialBody(c)
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if _, err := h.TestimonialService.Update(c.Context(), id, input); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Cập nhật đánh giá thành công")
	})
}

// HandleDeleteTestimonial xử lý DELETE /testimonials/:id?confirm=true
func (h *TestimonialHandler) HandleDeleteTestimonial(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := basehdl.RequireConfirm(c, "xóa đánh giá"); err != nil {
			return basehdl.RespondError(c, err)
		}
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if err := h.TestimonialService.Delete(c.Context(), id); err != nil {
			return basehdl.RespondError(c, err)
		}
		return h.respondWithList(c, "Xóa đánh giá thành công")
	})
}
