package validate

import (
	"math"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Names accept latin and cyrillic letters plus hyphen, nothing else.
var letterPattern = regexp.MustCompile(`^[а-яА-Яa-zA-Z-]+$`)

var maxPrice = decimal.NewFromInt(math.MaxInt32)

func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("letters", Letters)
	_ = v.RegisterValidation("order_by", OrderBy)
	_ = v.RegisterValidation("price", Price)
	return v
}

func Letters(fl validator.FieldLevel) bool {
	return letterPattern.MatchString(fl.Field().String())
}

// OrderBy allows only the sortable product columns, case-insensitive.
// Empty means store-default order and is accepted.
func OrderBy(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "", "name", "price":
		return true
	default:
		return false
	}
}

// Price must be a whole non-negative number that fits an int32 column.
func Price(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.IsInteger() && !d.IsNegative() && d.LessThanOrEqual(maxPrice)
}
