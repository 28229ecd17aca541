package request

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evlasov/eshop/internal/errors"
	"github.com/evlasov/eshop/internal/validate"
)

func TestCreateCustomerValidation(t *testing.T) {
	tests := []struct {
		name        string
		reqBody     CreateCustomer
		expectedErr bool
	}{
		{
			name:        "latin letters are accepted",
			reqBody:     CreateCustomer{Name: "Alice"},
			expectedErr: false,
		},
		{
			name:        "cyrillic letters are accepted",
			reqBody:     CreateCustomer{Name: "Алиса"},
			expectedErr: false,
		},
		{
			name:        "hyphenated name is accepted",
			reqBody:     CreateCustomer{Name: "Anna-Maria"},
			expectedErr: false,
		},
		{
			name:        "empty name is rejected",
			reqBody:     CreateCustomer{Name: ""},
			expectedErr: true,
		},
		{
			name:        "digits are rejected",
			reqBody:     CreateCustomer{Name: "Alice2"},
			expectedErr: true,
		},
		{
			name:        "spaces are rejected",
			reqBody:     CreateCustomer{Name: "Alice Smith"},
			expectedErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validate.New().StructCtx(context.Background(), test.reqBody)
			if test.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseFindCustomerById(t *testing.T) {
	param, err := ParseFindCustomerById(url.Values{"customer_id": []string{"7"}})
	require.NoError(t, err)
	assert.Equal(t, int32(7), param.CustomerID)

	for _, raw := range []string{"", "abc", "0", "-1", "3000000000"} {
		values := url.Values{}
		if raw != "" {
			values.Set("customer_id", raw)
		}
		_, err := ParseFindCustomerById(values)
		require.Error(t, err)
		assert.Equal(t, errors.KindValidation, errors.KindOf(err))
	}
}
