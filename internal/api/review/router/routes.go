// Package router đăng ký các route thuộc domain review: testimonials.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	reviewhdl "github.com/arya-5990/devnaturaloiladmin/internal/api/review/handler"
	apirouter "github.com/arya-5990/devnaturaloiladmin/internal/api/router"
)

// Register đăng ký tất cả route review lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	testimonialHandler, err := reviewhdl.NewTestimonialHandler()
	if err != nil {
		return fmt.Errorf("tạo TestimonialHandler: %w", err)
	}

	middlewares := []fiber.Handler{}

	// Testimonials - đánh giá của khách. DELETE cần ?confirm=true
	apirouter.RegisterRouteWithMiddleware(v1, "/testimonials", "GET", "/", middlewares, testimonialHandler.HandleListTestimonials)
	apirouter.RegisterRouteWithMiddleware(v1, "/testimonials", "POST", "/", middlewares, testimonialHandler.HandleCreateTestimonial)
	apirouter.RegisterRouteWithMiddleware(v1, "/testimonials", "PUT", "/:id", middlewares, testimonialHandler.HandleUpdateTestimonial)
	apirouter.RegisterRouteWithMiddleware(v1, "/testimonials", "DELETE", "/:id", middlewares, testimonialHandler.HandleDeleteTestimonial)

	return nil
}
