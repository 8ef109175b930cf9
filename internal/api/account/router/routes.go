// Package router đăng ký các route thuộc domain account: users.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	accounthdl "github.com/arya-5990/devnaturaloiladmin/internal/api/account/handler"
	apirouter "github.com/arya-5990/devnaturaloiladmin/internal/api/router"
)

// Register đăng ký tất cả route account lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := accounthdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("tạo UserHandler: %w", err)
	}

	middlewares := []fiber.Handler{}

	// Users - chỉ xem và xóa (có xác nhận), admin không tạo hay sửa người dùng
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/", middlewares, userHandler.HandleListUsers)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "DELETE", "/:id", middlewares, userHandler.HandleDeleteUser)

	return nil
}
