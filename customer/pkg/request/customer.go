package request

import (
	"net/url"
	"strconv"

	"github.com/evlasov/eshop/internal/errors"
)

type CreateCustomer struct {
	Name string `validate:"required,max=128,letters" json:"name"`
}

type FindCustomerById struct {
	CustomerID int32 `validate:"required,gte=1" json:"customer_id"`
}

// ParseFindCustomerById reads the customer_id query parameter. Anything that
// does not fit a 32-bit signed integer is rejected before the store is
// touched.
func ParseFindCustomerById(values url.Values) (FindCustomerById, error) {
	raw := values.Get("customer_id")
	if raw == "" {
		return FindCustomerById{}, errors.New(
			errors.KindValidation,
			"customer_id is required",
		)
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return FindCustomerById{}, errors.Newf(
			errors.KindValidation,
			"id %s is not acceptable",
			raw,
		)
	}
	return FindCustomerById{CustomerID: int32(id)}, nil
}
