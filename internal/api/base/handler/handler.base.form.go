package basehdl

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v3"

	"github.com/arya-5990/devnaturaloiladmin/internal/common"
)

// MaxUploadSize giới hạn kích thước file ảnh upload (10MB)
const MaxUploadSize = 10 << 20

// ReadFormFile đọc file từ multipart form.
// Form không có file ở field này trả về (nil, "", nil) - file là tùy chọn,
// caller tự quyết định có bắt buộc hay không.
func ReadFormFile(c fiber.Ctx, field string) ([]byte, string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		// Fiber trả lỗi khi field không tồn tại trong form
		return nil, "", nil
	}

	if fileHeader.Size > MaxUploadSize {
		return nil, "", common.NewError(
			common.ErrCodeUploadInvalidAsset,
			fmt.Sprintf("File ảnh vượt quá giới hạn %dMB", MaxUploadSize>>20),
			common.StatusBadRequest,
			nil,
		)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", common.NewError(common.ErrCodeUploadInvalidAsset, "Không thể đọc file upload", common.StatusBadRequest, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", common.NewError(common.ErrCodeUploadInvalidAsset, "Không thể đọc file upload", common.StatusBadRequest, err)
	}

	return data, fileHeader.Filename, nil
}
