package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("counter", 42)
	require.NoError(t, err)
	assert.True(t, isNew)

	value, exists := r.Get("counter")
	assert.True(t, exists)
	assert.Equal(t, 42, value)

	// Ghi đè item cũ
	isNew, err = r.Register("counter", 7)
	require.NoError(t, err)
	assert.False(t, isNew)

	value, _ = r.Get("counter")
	assert.Equal(t, 7, value)
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.Register("", "value")
	assert.Error(t, err)
}

func TestRegistry_GetMissing(t *testing.T) {
	r := NewRegistry[string]()

	value, exists := r.Get("missing")
	assert.False(t, exists)
	assert.Equal(t, "", value)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()

	created, err := r.GetOrCreate("key", func() (string, error) {
		return "created", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "created", created)

	// Lần gọi thứ hai trả về item đã tồn tại, creator không được gọi
	existing, err := r.GetOrCreate("key", func() (string, error) {
		return "other", errors.New("should not be called")
	})
	require.NoError(t, err)
	assert.Equal(t, "created", existing)
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("a", 1)

	cleaned := false
	deleted, err := r.Clear("a", func(int) error {
		cleaned = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, cleaned)

	_, exists := r.Get("a")
	assert.False(t, exists)

	// Clear item không tồn tại
	deleted, err = r.Clear("a", nil)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRegistry_ClearAll(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("a", 1)
	_, _ = r.Register("b", 2)

	count, err := r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, exists := r.Get("a")
	assert.False(t, exists)
}
