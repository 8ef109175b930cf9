// Package upload cung cấp client upload ảnh lên dịch vụ lưu trữ ảnh
// (Cloudinary unsigned upload).
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/arya-5990/devnaturaloiladmin/config"
	"github.com/arya-5990/devnaturaloiladmin/internal/common"
	"github.com/arya-5990/devnaturaloiladmin/internal/logger"
)

// Client gọi API unsigned upload của dịch vụ lưu trữ ảnh.
// Endpoint dạng https://api.cloudinary.com/v1_1/<cloudName>/image/upload.
type Client struct {
	uploadURL    string
	uploadPreset string
	httpClient   *fasthttp.Client
}

// uploadResponse là phần response JSON mà client cần đọc
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient tạo client upload từ cấu hình ứng dụng
func NewClient(cfg *config.Configuration) *Client {
	return &Client{
		uploadURL:    fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cfg.CloudinaryCloudName),
		uploadPreset: cfg.CloudinaryUploadPreset,
		httpClient: &fasthttp.Client{
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

// NewClientWithURL tạo client với endpoint tùy chỉnh (dùng trong test)
func NewClientWithURL(uploadURL, uploadPreset string) *Client {
	return &Client{
		uploadURL:    uploadURL,
		uploadPreset: uploadPreset,
		httpClient: &fasthttp.Client{
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

// IsImage kiểm tra payload có phải định dạng ảnh hợp lệ không (sniff content type)
func IsImage(data []byte) bool {
	contentType := http.DetectContentType(data)
	return strings.HasPrefix(contentType, "image/")
}

// Upload đẩy file ảnh lên dịch vụ lưu trữ và trả về secure URL.
// File không phải ảnh bị từ chối trước khi gọi mạng (ErrInvalidAsset).
// Dịch vụ trả về non-2xx → ErrUploadFailed, không có ghi dữ liệu nào xảy ra sau đó.
func (cl *Client) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	if len(data) == 0 || !IsImage(data) {
		return "", common.ErrInvalidAsset
	}

	// Build multipart body: file + upload_preset
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", common.NewError(common.ErrCodeUploadRejected, "Không thể tạo request upload", common.StatusInternalServerError, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", common.NewError(common.ErrCodeUploadRejected, "Không thể tạo request upload", common.StatusInternalServerError, err)
	}
	if err := writer.WriteField("upload_preset", cl.uploadPreset); err != nil {
		return "", common.NewError(common.ErrCodeUploadRejected, "Không thể tạo request upload", common.StatusInternalServerError, err)
	}
	if err := writer.Close(); err != nil {
		return "", common.NewError(common.ErrCodeUploadRejected, "Không thể tạo request upload", common.StatusInternalServerError, err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(cl.uploadURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(writer.FormDataContentType())
	req.SetBody(body.Bytes())

	// fasthttp không nhận context trực tiếp; dùng deadline từ ctx nếu có
	var doErr error
	if deadline, ok := ctx.Deadline(); ok {
		doErr = cl.httpClient.DoDeadline(req, resp, deadline)
	} else {
		doErr = cl.httpClient.Do(req, resp)
	}
	if doErr != nil {
		logger.GetErrorLogger().WithError(doErr).Error("Upload ảnh thất bại: lỗi kết nối dịch vụ lưu trữ")
		return "", common.NewError(common.ErrCodeUploadRejected, "Không thể kết nối dịch vụ lưu trữ ảnh", common.StatusBadGateway, doErr)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		logger.GetErrorLogger().WithField("status_code", statusCode).Error("Dịch vụ lưu trữ ảnh từ chối upload")
		return "", common.NewError(
			common.ErrCodeUploadRejected,
			fmt.Sprintf("Dịch vụ lưu trữ ảnh từ chối upload (HTTP %d)", statusCode),
			common.StatusBadGateway,
			string(resp.Body()),
		)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", common.NewError(common.ErrCodeUploadRejected, "Response từ dịch vụ lưu trữ ảnh không hợp lệ", common.StatusBadGateway, err)
	}
	if parsed.SecureURL == "" {
		return "", common.NewError(common.ErrCodeUploadRejected, "Response từ dịch vụ lưu trữ ảnh thiếu secure_url", common.StatusBadGateway, parsed.Error.Message)
	}

	return parsed.SecureURL, nil
}
