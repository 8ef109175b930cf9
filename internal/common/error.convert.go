package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ConvertMongoError chuyển đổi lỗi MongoDB driver sang lỗi hệ thống.
// Phân biệt lỗi kết nối (503), lỗi quyền (403) và lỗi truy vấn chung (500).
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Không convert ErrNotFound - giữ nguyên để handler map sang 404
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}

	// Lỗi đã thuộc taxonomy hệ thống, giữ nguyên
	var sysErr *Error
	if errors.As(err, &sysErr) {
		return err
	}

	// Kiểm tra các loại lỗi MongoDB cụ thể
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		switch cmdErr.Code {
		case 13, 18, 31: // Unauthorized, AuthenticationFailed, RoleNotFound
			return ErrPermissionDenied
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return ErrConnection
	}

	// Lỗi truy vấn chung
	return NewError(ErrCodeDatabaseQuery, MsgDatabaseError, StatusInternalServerError, err)
}
