// Package basesvc - Test ToUpdateData: ngữ nghĩa $set merge cho partial update.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUpdateData_PassthroughUpdateData(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"title": "Dầu dừa"}}
	result, err := ToUpdateData(original)
	require.NoError(t, err)
	assert.Same(t, original, result)

	byValue := UpdateData{Unset: map[string]interface{}{"imageUrl": ""}}
	result, err = ToUpdateData(byValue)
	require.NoError(t, err)
	assert.Equal(t, byValue.Unset, result.Unset)
}

func TestToUpdateData_WrapsPlainMapInSet(t *testing.T) {
	result, err := ToUpdateData(map[string]interface{}{
		"title":    "Dầu dừa",
		"discount": 20.0,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Set)
	assert.Equal(t, "Dầu dừa", result.Set["title"])
	assert.Nil(t, result.Unset)
}

func TestToUpdateData_KeepsExistingOperators(t *testing.T) {
	result, err := ToUpdateData(map[string]interface{}{
		"$set":   map[string]interface{}{"title": "Dầu dừa"},
		"$unset": map[string]interface{}{"imageUrl": ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "Dầu dừa", result.Set["title"])
	_, hasUnset := result.Unset["imageUrl"]
	assert.True(t, hasUnset)
}

func TestToUpdateData_StructWrappedInSet(t *testing.T) {
	type patch struct {
		Title    string  `bson:"title"`
		Discount float64 `bson:"discount"`
	}
	result, err := ToUpdateData(patch{Title: "Combo dầu gội", Discount: 33.33})
	require.NoError(t, err)
	require.NotNil(t, result.Set)
	assert.Equal(t, "Combo dầu gội", result.Set["title"])
}
