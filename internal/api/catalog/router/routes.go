// Package router đăng ký các route thuộc domain catalog: products, combo-products.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/arya-5990/devnaturaloiladmin/internal/api/catalog/handler"
	apirouter "github.com/arya-5990/devnaturaloiladmin/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("tạo ProductHandler: %w", err)
	}
	comboHandler, err := cataloghdl.NewComboHandler()
	if err != nil {
		return fmt.Errorf("tạo ComboHandler: %w", err)
	}

	middlewares := []fiber.Handler{}

	// Products - sản phẩm đơn
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "GET", "/", middlewares, productHandler.HandleListProducts)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "POST", "/", middlewares, productHandler.HandleCreateProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "PUT", "/:id", middlewares, productHandler.HandleUpdateProduct)
	// DELETE cần ?confirm=true
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "DELETE", "/:id", middlewares, productHandler.HandleDeleteProduct)

	// Combo products - sản phẩm combo
	apirouter.RegisterRouteWithMiddleware(v1, "/combo-products", "GET", "/", middlewares, comboHandler.HandleListCombos)
	// /featured phải đăng ký trước /:id/form để không bị nuốt bởi param route
	apirouter.RegisterRouteWithMiddleware(v1, "/combo-products", "GET", "/featured", middlewares, comboHandler.HandleGetFeatured)
	apirouter.RegisterRouteWithMiddleware(v1, "/combo-products", "GET", "/:id/form", middlewares, comboHandler.HandleGetComboForm)
	apirouter.RegisterRouteWithMiddleware(v1, "/combo-products", "POST", "/", middlewares, comboHandler.HandleCreateCombo)
	apirouter.RegisterRouteWithMiddleware(v1, "/combo-products", "PUT", "/:id", middlewares, comboHandler.HandleUpdateCombo)
	apirouter.RegisterRouteWithMiddleware(v1, "/combo-products", "DELETE", "/:id", middlewares, comboHandler.HandleDeleteCombo)

	// Cờ khuyến mãi. Bật "sản phẩm của ngày" cần ?confirm=true vì gỡ cờ của combo khác.
	apirouter.RegisterRouteWithMiddleware(v1, "/combo-products", "PUT", "/:id/product-of-the-day", middlewares, comboHandler.HandleSetProductOfTheDay)
	apirouter.RegisterRouteWithMiddleware(v1, "/combo-products", "DELETE", "/:id/product-of-the-day", middlewares, comboHandler.HandleUnsetProductOfTheDay)
	apirouter.RegisterRouteWithMiddleware(v1, "/combo-products", "PUT", "/:id/best-seller", middlewares, comboHandler.HandleSetBestSeller)
	apirouter.RegisterRouteWithMiddleware(v1, "/combo-products", "DELETE", "/:id/best-seller", middlewares, comboHandler.HandleUnsetBestSeller)

	return nil
}
