// Package router đăng ký các route thuộc domain content: blogs, banners, categories.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "github.com/arya-5990/devnaturaloiladmin/internal/api/content/handler"
	apirouter "github.com/arya-5990/devnaturaloiladmin/internal/api/router"
)

// Register đăng ký tất cả route content lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	blogHandler, err := contenthdl.NewBlogHandler()
	if err != nil {
		return fmt.Errorf("tạo BlogHandler: %w", err)
	}
	bannerHandler, err := contenthdl.NewBannerHandler()
	if err != nil {
		return fmt.Errorf("tạo BannerHandler: %w", err)
	}
	categoryHandler, err := contenthdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("tạo CategoryHandler: %w", err)
	}

	middlewares := []fiber.Handler{}

	// Blogs - bài viết. DELETE cần ?confirm=true
	apirouter.RegisterRouteWithMiddleware(v1, "/blogs", "GET", "/", middlewares, blogHandler.HandleListBlogs)
	apirouter.RegisterRouteWithMiddleware(v1, "/blogs", "POST", "/", middlewares, blogHandler.HandleCreateBlog)
	apirouter.RegisterRouteWithMiddleware(v1, "/blogs", "PUT", "/:id", middlewares, blogHandler.HandleUpdateBlog)
	apirouter.RegisterRouteWithMiddleware(v1, "/blogs", "DELETE", "/:id", middlewares, blogHandler.HandleDeleteBlog)

	// Banners - banner trang chủ
	apirouter.RegisterRouteWithMiddleware(v1, "/banners", "GET", "/", middlewares, bannerHandler.HandleListBanners)
	apirouter.RegisterRouteWithMiddleware(v1, "/banners", "POST", "/", middlewares, bannerHandler.HandleCreateBanner)
	apirouter.RegisterRouteWithMiddleware(v1, "/banners", "PUT", "/:id", middlewares, bannerHandler.HandleUpdateBanner)
	apirouter.RegisterRouteWithMiddleware(v1, "/banners", "DELETE", "/:id", middlewares, bannerHandler.HandleDeleteBanner)

	// Categories - danh mục sản phẩm
	apirouter.RegisterRouteWithMiddleware(v1, "/categories", "GET", "/", middlewares, categoryHandler.HandleListCategories)
	apirouter.RegisterRouteWithMiddleware(v1, "/categories", "POST", "/", middlewares, categoryHandler.HandleCreateCategory)
	apirouter.RegisterRouteWithMiddleware(v1, "/categories", "PUT", "/:id", middlewares, categoryHandler.HandleUpdateCategory)
	apirouter.RegisterRouteWithMiddleware(v1, "/categories", "DELETE", "/:id", middlewares, categoryHandler.HandleDeleteCategory)

	return nil
}
