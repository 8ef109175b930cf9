package upload

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arya-5990/devnaturaloiladmin/internal/common"
)

// pngBytes là header PNG tối thiểu để http.DetectContentType nhận diện image/png
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage(pngBytes))
	assert.False(t, IsImage([]byte("hello world, this is not an image")))
	assert.False(t, IsImage([]byte("{\"json\": true}")))
}

func TestUpload_RejectsNonImageBeforeNetwork(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL, "preset")
	_, err := client.Upload(context.Background(), []byte("not an image"), "file.txt")

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidAsset)
	assert.False(t, called, "không được gọi dịch vụ lưu trữ khi file không phải ảnh")
}

func TestUpload_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "my_preset", r.FormValue("upload_preset"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url": "https://res.example.com/image/upload/photo.png"}`))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL, "my_preset")
	url, err := client.Upload(context.Background(), pngBytes, "photo.png")

	require.NoError(t, err)
	assert.Equal(t, "https://res.example.com/image/upload/photo.png", url)
}

func TestUpload_RemoteRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "Invalid upload preset"}}`))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL, "bad_preset")
	_, err := client.Upload(context.Background(), pngBytes, "photo.png")

	require.Error(t, err)
	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrCodeUploadRejected.Code, customErr.Code.Code)
	assert.Equal(t, common.StatusBadGateway, customErr.StatusCode)
}

func TestUpload_MissingSecureURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL, "preset")
	_, err := client.Upload(context.Background(), pngBytes, "photo.png")

	require.Error(t, err)
	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrCodeUploadRejected.Code, customErr.Code.Code)
}
