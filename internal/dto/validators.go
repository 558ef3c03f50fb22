package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DecimalGreaterThanZero implements the dgt0 binding tag: it validates that a
// shopspring decimal field is strictly positive. Registered against gin's
// validator engine at route-registration time.
var DecimalGreaterThanZero validator.Func = func(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.GreaterThan(decimal.Zero)
}
