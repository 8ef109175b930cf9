// Package cataloghdl - Test cổng xác nhận trên các thao tác gắn cờ combo.
package cataloghdl

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arya-5990/devnaturaloiladmin/internal/common"
)

// newFlagTestApp dựng app chỉ với hai route gắn cờ. Handler không có service:
// request bị chặn ở cổng xác nhận thì không đụng tới service, test chạy
// không cần database.
func newFlagTestApp() *fiber.App {
	h := &ComboHandler{}
	app := fiber.New()
	app.Put("/combo-products/:id/best-seller", h.HandleSetBestSeller)
	app.Put("/combo-products/:id/product-of-the-day", h.HandleSetProductOfTheDay)
	return app
}

func doFlagRequest(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("PUT", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env.Status
}

func TestHandleSetBestSeller_RequiresConfirm(t *testing.T) {
	app := newFlagTestApp()

	// Thiếu confirm: bị từ chối trước khi đụng tới service
	status, envStatus := doFlagRequest(t, app, "/combo-products/65f1a2b3c4d5e6f708192a3b/best-seller")
	assert.Equal(t, common.StatusBadRequest, status)
	assert.Equal(t, "error", envStatus)

	// confirm khác "true" vẫn bị từ chối
	status, _ = doFlagRequest(t, app, "/combo-products/65f1a2b3c4d5e6f708192a3b/best-seller?confirm=yes")
	assert.Equal(t, common.StatusBadRequest, status)
}

func TestHandleSetProductOfTheDay_RequiresConfirm(t *testing.T) {
	app := newFlagTestApp()

	status, envStatus := doFlagRequest(t, app, "/combo-products/65f1a2b3c4d5e6f708192a3b/product-of-the-day")
	assert.Equal(t, common.StatusBadRequest, status)
	assert.Equal(t, "error", envStatus)
}
