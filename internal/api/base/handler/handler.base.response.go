// Package basehdl cung cấp các tiện ích chung cho handler: response envelope,
// recover wrapper và parse params.
package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arya-5990/devnaturaloiladmin/internal/common"
	"github.com/arya-5990/devnaturaloiladmin/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8.
// Đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ tiếng Việt đúng cách.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandlerWrapper bọc handler với recover để bắt panic và xử lý lỗi an toàn.
// Đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			logger.GetErrorLogger().WithField("panic", fmt.Sprintf("%v", r)).Error("Panic trong handler")

			_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"code":    common.ErrCodeInternalServer.Code,
				"message": fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				"status":  "error",
			})
		}
	}()
	return fn()
}

// RespondSuccess trả về envelope thành công thống nhất {code, message, data, status}.
func RespondSuccess(c fiber.Ctx, message string, data interface{}) error {
	if message == "" {
		message = common.MsgSuccess
	}
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": message,
		"data":    data,
		"status":  "success",
	})
}

// RespondError trả về envelope lỗi thống nhất.
// Lỗi thuộc taxonomy hệ thống giữ nguyên code và status; lỗi khác map sang 500.
func RespondError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		})
	}
	return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeDatabase.Code,
		"message": err.Error(),
		"status":  "error",
	})
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return RespondError(c, err)
	}
	return RespondSuccess(c, common.MsgSuccess, data)
}

// ParseObjectIDParam lấy và validate ObjectID từ URI params.
func ParseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id := c.Params(name)
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Thiếu %s trong URL params", name),
			common.StatusBadRequest,
			nil,
		)
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return objID, nil
}

// RequireConfirm kiểm tra query param confirm=true cho các thao tác cần xác nhận
// (xóa dữ liệu, bật cờ đặc biệt). Thiếu xác nhận trả về lỗi và thao tác không được thực hiện.
func RequireConfirm(c fiber.Ctx, action string) error {
	if c.Query("confirm") != "true" {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Thao tác %s cần xác nhận (confirm=true)", action),
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}
