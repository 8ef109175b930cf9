// Package accounthdl - Handler cho domain account (users).
package accounthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/arya-5990/devnaturaloiladmin/internal/api/base/handler"
	accountsvc "github.com/arya-5990/devnaturaloiladmin/internal/api/account/service"
)

// UserHandler xử lý danh sách và xóa người dùng
type UserHandler struct {
	UserService *accountsvc.UserService
}

// NewUserHandler tạo UserHandler mới
func NewUserHandler() (*UserHandler, error) {
	svc, err := accountsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("tạo UserService: %w", err)
	}
	return &UserHandler{UserService: svc}, nil
}

// HandleListUsers xử lý GET /users
func (h *UserHandler) HandleListUsers(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		items, err := h.UserService.List(c.Context())
		return basehdl.HandleResponse(c, items, err)
	})
}

// HandleDeleteUser xử lý DELETE /users/:id?confirm=true.
// Chỉ xóa bản ghi trong database, không thu hồi tài khoản đăng nhập phía client.
func (h *UserHandler) HandleDeleteUser(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		if err := basehdl.RequireConfirm(c, "xóa người dùng"); err != nil {
			return basehdl.RespondError(c, err)
		}
		id, err := basehdl.ParseObjectIDParam(c, "id")
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		if err := h.UserService.Delete(c.Context(), id); err != nil {
			return basehdl.RespondError(c, err)
		}
		items, err := h.UserService.List(c.Context())
		if err != nil {
			return basehdl.RespondError(c, err)
		}
		return basehdl.RespondSuccess(c, "Xóa người dùng thành công", items)
	})
}
