package validators

import (
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// priceTolerance absorbs binary floating point noise, e.g. 19.99*100.
const priceTolerance = 1e-6

// pricePrecision accepts numbers with at most two fraction digits.
func pricePrecision(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	cents := v * 100
	return math.Abs(cents-math.Round(cents)) < priceTolerance
}

// integer accepts floats without a fractional part.
func integer(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}

// maxBytes caps the length of a string in bytes rather than runes. bcrypt
// refuses input longer than 72 bytes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
