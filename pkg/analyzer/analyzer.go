// Package analyzer derives return percentages and rolling dispersion
// statistics from a quote snapshot and ranks the most volatile entries.
//
// The rolling window runs over the snapshot in the order the upstream
// returned it. Each row is a different instrument, so "volatility" here is a
// dispersion of neighbouring instruments' daily returns rather than a per
// symbol time-series volatility.
package analyzer

import (
	"errors"
	"fmt"

	"volscan/pkg/indicator"
	"volscan/pkg/types"
	"volscan/pkg/utils"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultWindow = 5
	DefaultTopN   = 5
)

var ErrSchema = errors.New("required field missing from payload")

var requiredFields = []string{types.FieldLastPrice, types.FieldPreviousClose}

type Analyzer struct {
	window int
	topN   int
}

func New(window, topN int) *Analyzer {
	return &Analyzer{window: window, topN: topN}
}

// Analyze returns at most topN records ranked by volatility. It never fails;
// unusable input yields an empty result.
func (a *Analyzer) Analyze(records []types.RawRecord) []types.DerivedRecord {
	return a.Rank(a.Derive(records))
}

// Derive returns every valid record, in input order, with its return and
// rolling statistics.
func (a *Analyzer) Derive(records []types.RawRecord) []types.DerivedRecord {
	if len(records) == 0 {
		log.Warn("no records to analyze")
		return []types.DerivedRecord{}
	}
	if err := checkSchema(records); err != nil {
		log.Errorf("abort analysis: %v", err)
		return []types.DerivedRecord{}
	}

	derived := make([]types.DerivedRecord, 0, len(records))
	for i, rec := range records {
		d, err := deriveRecord(i, rec)
		if err != nil {
			log.Debugf("drop record %d (%v): %v", i, rec[types.FieldSymbol], err)
			continue
		}
		derived = append(derived, d)
	}
	if dropped := len(records) - len(derived); dropped > 0 {
		log.Warnf("dropped %d of %d records with unusable prices", dropped, len(records))
	}

	returns := make([]float64, len(derived))
	for i, d := range derived {
		returns[i] = d.ReturnPct
	}
	for i, s := range indicator.CalculateRollingStats(returns, a.window) {
		derived[i].Stats = s
	}

	log.Infof("derived %d records, mean return %.4f%%", len(derived), indicator.CalculateAverage(returns))
	return derived
}

// checkSchema fails only when a required field is absent from every record.
func checkSchema(records []types.RawRecord) error {
	for _, field := range requiredFields {
		found := false
		for _, rec := range records {
			if _, ok := rec[field]; ok {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrSchema, field)
		}
	}
	return nil
}

func deriveRecord(index int, rec types.RawRecord) (types.DerivedRecord, error) {
	last, errLast := utils.ToDecimal(rec[types.FieldLastPrice])
	prev, errPrev := utils.ToDecimal(rec[types.FieldPreviousClose])
	if err := errors.Join(errLast, errPrev); err != nil {
		return types.DerivedRecord{}, err
	}

	pct, err := indicator.CalculateReturnPct(last, prev)
	if err != nil {
		return types.DerivedRecord{}, err
	}

	return types.DerivedRecord{
		Index:         index,
		Symbol:        symbolOf(rec),
		LastPrice:     last,
		PreviousClose: prev,
		ReturnPct:     pct,
	}, nil
}

func symbolOf(rec types.RawRecord) string {
	switch v := rec[types.FieldSymbol].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
