package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrNotNumeric = errors.New("value is not numeric")

func RoundFloat(val float64, decimals int64) float64 {
	ratio := math.Pow(10, float64(decimals))
	return math.Round(val*ratio) / ratio
}

// ToDecimal coerces a decoded JSON value into a decimal. Quoted and bare
// numbers are both accepted; anything else fails with ErrNotNumeric.
func ToDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case json.Number:
		return parseDecimal(val.String())
	case string:
		return parseDecimal(val)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrNotNumeric, val)
		}
		return decimal.NewFromFloat(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int64:
		return decimal.NewFromInt(val), nil
	case nil:
		return decimal.Zero, fmt.Errorf("%w: null", ErrNotNumeric)
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", ErrNotNumeric, v)
	}
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty string", ErrNotNumeric)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return d, nil
}
