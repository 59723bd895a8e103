package indicator

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var ErrZeroPreviousClose = errors.New("previous close is zero")

var hundred = decimal.NewFromInt(100)

// CalculateReturnPct returns (last - prev) / prev * 100.
func CalculateReturnPct(last, prev decimal.Decimal) (float64, error) {
	if prev.IsZero() {
		return 0, ErrZeroPreviousClose
	}
	pct := last.Sub(prev).Div(prev).Mul(hundred).InexactFloat64()
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, fmt.Errorf("non-finite return: last %v prev %v", last, prev)
	}
	return pct, nil
}
