// Package basehdl - Test envelope response và xác nhận thao tác.
package basehdl

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

type envelope struct {
	Code    interface{} `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
}

func doRequest(t *testing.T, app *fiber.App, method, target string) (int, envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env
}

func TestRespondError_NotFoundKeepsStatusAndCode(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c fiber.Ctx) error {
		return RespondError(c, common.ErrNotFound)
	})

	status, env := doRequest(t, app, "GET", "/missing")
	assert.Equal(t, common.StatusNotFound, status)
	assert.Equal(t, "error", env.Status)

	var notFound *common.Error
	require.ErrorAs(t, common.ErrNotFound, &notFound)
	assert.Equal(t, notFound.Code.Code, env.Code)
}

func TestRespondSuccess_Envelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error {
		return RespondSuccess(c, "", fiber.Map{"hello": "world"})
	})

	status, env := doRequest(t, app, "GET", "/ok")
	assert.Equal(t, common.StatusOK, status)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, common.MsgSuccess, env.Message)
}

func TestRequireConfirm(t *testing.T) {
	app := fiber.New()
	app.Delete("/items/:id", func(c fiber.Ctx) error {
		if err := RequireConfirm(c, "xóa"); err != nil {
			return RespondError(c, err)
		}
		return RespondSuccess(c, "Đã xóa", nil)
	})

	// Thiếu confirm: bị từ chối, không có thao tác nào được thực hiện
	status, env := doRequest(t, app, "DELETE", "/items/abc")
	assert.Equal(t, common.StatusBadRequest, status)
	assert.Equal(t, "error", env.Status)

	// confirm khác "true" vẫn bị từ chối
	status, _ = doRequest(t, app, "DELETE", "/items/abc?confirm=yes")
	assert.Equal(t, common.StatusBadRequest, status)

	status, env = doRequest(t, app, "DELETE", "/items/abc?confirm=true")
	assert.Equal(t, common.StatusOK, status)
	assert.Equal(t, "success", env.Status)
}

func TestParseObjectIDParam(t *testing.T) {
	app := fiber.New()
	app.Get("/items/:id", func(c fiber.Ctx) error {
		id, err := ParseObjectIDParam(c, "id")
		if err != nil {
			return RespondError(c, err)
		}
		return RespondSuccess(c, "", fiber.Map{"id": id.Hex()})
	})

	status, _ := doRequest(t, app, "GET", "/items/not-a-hex-id")
	assert.Equal(t, common.StatusBadRequest, status)

	status, _ = doRequest(t, app, "GET", "/items/65f1a2b3c4d5e6f708192a3b")
	assert.Equal(t, common.StatusOK, status)
}
