package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arya-5990/devnaturaloiladmin/internal/common"
)

func productSchema() Schema {
	return Schema{
		"name":         {Required: true, Kind: KindText, Label: "tên sản phẩm"},
		"actualPrice":  {Required: true, Kind: KindNumber, Label: "giá gốc"},
		"offeredPrice": {Required: false, Kind: KindNumber, Label: "giá bán"},
		"image":        {Required: true, Kind: KindImage, Label: "ảnh sản phẩm"},
	}
}

func TestSchema_Validate_OK(t *testing.T) {
	values := Values{
		"name":         "Dầu dừa nguyên chất",
		"actualPrice":  "250",
		"offeredPrice": "200",
	}
	err := productSchema().Validate(values, true)
	assert.NoError(t, err)
}

func TestSchema_Validate_MissingRequiredText(t *testing.T) {
	values := Values{
		"name":        "   ",
		"actualPrice": "250",
	}
	err := productSchema().Validate(values, true)
	require.Error(t, err)

	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrCodeValidationInput.Code, customErr.Code.Code)
	assert.Contains(t, customErr.Message, "tên sản phẩm")
}

func TestSchema_Validate_MissingRequiredImage(t *testing.T) {
	values := Values{
		"name":        "Dầu dừa",
		"actualPrice": "250",
	}
	err := productSchema().Validate(values, false)
	require.Error(t, err)

	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Contains(t, customErr.Message, "ảnh sản phẩm")
}

func TestSchema_Validate_OptionalNumberEmpty(t *testing.T) {
	values := Values{
		"name":         "Dầu dừa",
		"actualPrice":  "250",
		"offeredPrice": "",
	}
	err := productSchema().Validate(values, true)
	assert.NoError(t, err)
}

func TestSchema_Validate_InvalidNumber(t *testing.T) {
	values := Values{
		"name":        "Dầu dừa",
		"actualPrice": "hai trăm",
	}
	err := productSchema().Validate(values, true)
	require.Error(t, err)

	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrCodeValidationFormat.Code, customErr.Code.Code)
}

func TestNumber_EmptyIsZero(t *testing.T) {
	n, err := Number(Values{"price": ""}, "price")
	require.NoError(t, err)
	assert.Equal(t, 0.0, n)
}

func TestNumber_Parse(t *testing.T) {
	n, err := Number(Values{"price": " 199.5 "}, "price")
	require.NoError(t, err)
	assert.Equal(t, 199.5, n)

	_, err = Number(Values{"price": "abc"}, "price")
	assert.Error(t, err)
}

func TestInt_Truncates(t *testing.T) {
	n, err := Int(Values{"rating": "4.9"}, "rating")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
