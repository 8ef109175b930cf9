// Package models - các model thuộc domain account (users).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User lưu tài khoản người dùng đã đăng ký (collection users).
// Bản ghi do hệ thống đăng nhập phía client tạo ra; admin console
// chỉ xem danh sách và xóa, không tạo hay sửa.
type User struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	DisplayName string `json:"displayName" bson:"displayName"`
	Email       string `json:"email" bson:"email"`
	PhoneNumber string `json:"phoneNumber" bson:"phoneNumber"`
	PhotoURL    string `json:"photoURL" bson:"photoURL"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
