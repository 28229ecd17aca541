package request

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evlasov/eshop/internal/errors"
)

func TestParseFilterProduct(t *testing.T) {
	widget := "Widget"
	price := int32(10)

	tests := []struct {
		name        string
		values      url.Values
		expected    FilterProduct
		expectedErr bool
	}{
		{
			name:     "empty query means no filters",
			values:   url.Values{},
			expected: FilterProduct{},
		},
		{
			name:     "name filter",
			values:   url.Values{"name": []string{"Widget"}},
			expected: FilterProduct{Name: &widget},
		},
		{
			name:     "whole decimal price is accepted",
			values:   url.Values{"price": []string{"10.00"}},
			expected: FilterProduct{Price: &price},
		},
		{
			name:     "order_by is case insensitive",
			values:   url.Values{"order_by": []string{"PrIcE"}, "desc": []string{"true"}},
			expected: FilterProduct{OrderBy: "price", Desc: true},
		},
		{
			name: "name and price together",
			values: url.Values{
				"name":  []string{"Widget"},
				"price": []string{"10"},
			},
			expected: FilterProduct{Name: &widget, Price: &price},
		},
		{
			name:        "fractional price is rejected",
			values:      url.Values{"price": []string{"10.5"}},
			expectedErr: true,
		},
		{
			name:        "negative price is rejected",
			values:      url.Values{"price": []string{"-1"}},
			expectedErr: true,
		},
		{
			name:        "non numeric price is rejected",
			values:      url.Values{"price": []string{"ten"}},
			expectedErr: true,
		},
		{
			name:        "unknown order_by is rejected",
			values:      url.Values{"order_by": []string{"brand"}},
			expectedErr: true,
		},
		{
			name:        "non boolean desc is rejected",
			values:      url.Values{"desc": []string{"yes please"}},
			expectedErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			filter, err := ParseFilterProduct(test.values)
			if test.expectedErr {
				require.Error(t, err)
				assert.Equal(t, errors.KindValidation, errors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, filter)
		})
	}
}

func TestParseFindProductById(t *testing.T) {
	param, err := ParseFindProductById("42")
	require.NoError(t, err)
	assert.Equal(t, int32(42), param.ProductID)

	for _, raw := range []string{"", "abc", "0", "-5", "3000000000"} {
		_, err := ParseFindProductById(raw)
		require.Error(t, err)
		assert.Equal(t, errors.KindValidation, errors.KindOf(err))
	}
}
