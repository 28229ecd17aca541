package request

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/evlasov/eshop/internal/errors"
)

type CreateProduct struct {
	Name         string          `validate:"required,max=128" json:"name"`
	Brand        string          `validate:"required,max=128" json:"brand"`
	Manufacturer string          `validate:"required,max=128" json:"manufacturer"`
	Price        decimal.Decimal `validate:"price"            json:"price"`
}

type FindProductById struct {
	ProductID int32 `validate:"required,gte=1" json:"product_id"`
}

// FilterProduct narrows and orders a product listing. Nil fields mean the
// filter is not applied; empty OrderBy means store-default order.
type FilterProduct struct {
	Name    *string
	Price   *int32
	OrderBy string
	Desc    bool
}

// ParseFilterProduct validates the listing query parameters without touching
// the store. order_by accepts only name or price, case-insensitive. The
// price filter must be a whole number inside the int32 range; decimal parse
// keeps "10.00" acceptable and "10.5" rejected exactly.
func ParseFilterProduct(values url.Values) (FilterProduct, error) {
	filter := FilterProduct{}

	if name := values.Get("name"); name != "" {
		filter.Name = &name
	}

	if raw := values.Get("price"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return FilterProduct{}, errors.Newf(
				errors.KindValidation,
				"price %s is not a number",
				raw,
			)
		}
		if !d.IsInteger() || d.IsNegative() ||
			d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) {
			return FilterProduct{}, errors.Newf(
				errors.KindValidation,
				"price %s is out of range",
				raw,
			)
		}
		price := int32(d.IntPart())
		filter.Price = &price
	}

	if raw := values.Get("order_by"); raw != "" {
		orderBy := strings.ToLower(raw)
		if orderBy != "name" && orderBy != "price" {
			return FilterProduct{}, errors.New(
				errors.KindValidation,
				"order_by should contains only 'price' or 'name'",
			)
		}
		filter.OrderBy = orderBy
	}

	if raw := values.Get("desc"); raw != "" {
		desc, err := strconv.ParseBool(raw)
		if err != nil {
			return FilterProduct{}, errors.Newf(
				errors.KindValidation,
				"desc %s is not a boolean",
				raw,
			)
		}
		filter.Desc = desc
	}

	return filter, nil
}

// ParseFindProductById reads the productId path value.
func ParseFindProductById(raw string) (FindProductById, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return FindProductById{}, errors.Newf(
			errors.KindValidation,
			"id %s is not acceptable",
			raw,
		)
	}
	return FindProductById{ProductID: int32(id)}, nil
}
