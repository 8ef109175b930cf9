// Package contentdto - các cấu trúc input thuộc domain content.
package contentdto

// BlogInput là dữ liệu submit của form bài viết.
// ThumbnailURL rỗng khi sửa mà không chọn ảnh mới: giữ nguyên ảnh cũ.
type BlogInput struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// BannerInput là dữ liệu submit của form banner
type BannerInput struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
}

// CategoryInput là dữ liệu submit của form danh mục
type CategoryInput struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}
