package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evlasov/eshop/internal/validate"
)

func TestAddRemoveProductValidation(t *testing.T) {
	tests := []struct {
		name        string
		reqBody     AddRemoveProduct
		expectedErr bool
	}{
		{
			name:        "valid body is accepted",
			reqBody:     AddRemoveProduct{CustomerID: 1, ProductID: 2, Count: 3},
			expectedErr: false,
		},
		{
			name:        "zero count is rejected",
			reqBody:     AddRemoveProduct{CustomerID: 1, ProductID: 2, Count: 0},
			expectedErr: true,
		},
		{
			name:        "negative count is rejected",
			reqBody:     AddRemoveProduct{CustomerID: 1, ProductID: 2, Count: -1},
			expectedErr: true,
		},
		{
			name:        "missing customer id is rejected",
			reqBody:     AddRemoveProduct{ProductID: 2, Count: 3},
			expectedErr: true,
		},
		{
			name:        "missing product id is rejected",
			reqBody:     AddRemoveProduct{CustomerID: 1, Count: 3},
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
