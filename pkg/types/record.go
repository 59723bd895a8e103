package types

import "github.com/shopspring/decimal"

// RawRecord is one element of the quote payload's `data` list as received.
// Numbers arrive as json.Number, strings as string.
type RawRecord map[string]any

const (
	FieldSymbol        = "symbol"
	FieldLastPrice     = "lastPrice"
	FieldPreviousClose = "previousClose"
)

type WindowStats struct {
	Volatility float64 // sample standard deviation of ReturnPct
	Skewness   float64 // NaN when the window has no variance
	Kurtosis   float64 // excess, NaN when the window has no variance
}

type DerivedRecord struct {
	Index         int // position in the fetched sequence
	Symbol        string
	LastPrice     decimal.Decimal
	PreviousClose decimal.Decimal
	ReturnPct     float64

	// nil until the trailing window is full
	Stats *WindowStats
}

func (r DerivedRecord) HasStats() bool {
	return r.Stats != nil
}
