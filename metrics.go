package patrimoine

import (
	"github.com/shopspring/decimal"
)

// This file is the metrics engine: pure functions from decimal and date
// inputs to an optional decimal result. A metric that is mathematically
// undefined for its inputs reports ok=false; it never substitutes zero or
// a sentinel value.

// powPrecision is the decimal precision used for fractional exponents (CAGR).
const powPrecision = 16

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)

// GrowthRate returns the simple growth rate (end-begin)/begin.
// It is undefined when begin is zero or negative.
func GrowthRate(begin, end decimal.Decimal) (decimal.Decimal, bool) {
	if !begin.IsPositive() {
		return decimal.Zero, false
	}
	return end.Sub(begin).Div(begin), true
}

// WeightedFlow is one aggregated external cash flow inside a measurement
// period: the summed amount of a snapshot's cash flows and the number of
// whole days between the period start and that snapshot.
type WeightedFlow struct {
	Amount decimal.Decimal
	Day    int // days since period start
}

// ModifiedDietz returns the Modified Dietz return of a period:
//
//	R = (end - begin - F) / (begin + Σ wi·Fi), wi = (totalDays - dayi) / totalDays
//
// A flow on day 0 weighs 1 (invested the whole period); a flow on the
// final day weighs 0. The result is undefined when begin is zero or
// negative, when totalDays is not positive, or when the weighted
// denominator is zero or negative.
func ModifiedDietz(begin, end decimal.Decimal, flows []WeightedFlow, totalDays int) (decimal.Decimal, bool) {
	if !begin.IsPositive() || totalDays <= 0 {
		return decimal.Zero, false
	}
	days := decimal.NewFromInt(int64(totalDays))
	var netFlow, weightedFlow decimal.Decimal
	for _, f := range flows {
		netFlow = netFlow.Add(f.Amount)
		weight := days.Sub(decimal.NewFromInt(int64(f.Day))).Div(days)
		weightedFlow = weightedFlow.Add(f.Amount.Mul(weight))
	}
	denominator := begin.Add(weightedFlow)
	if !denominator.IsPositive() {
		return decimal.Zero, false
	}
	return end.Sub(begin).Sub(netFlow).Div(denominator), true
}

// CumulativeTWR chains consecutive period returns geometrically:
// Π(1+ri) - 1. The empty chain is zero.
func CumulativeTWR(periodReturns []decimal.Decimal) decimal.Decimal {
	product := one
	for _, r := range periodReturns {
		product = product.Mul(one.Add(r))
	}
	return product.Sub(one)
}

// Rebase re-indexes a cumulative return series so index k becomes the new
// zero baseline: rebased[i-k] = (1+C[i])/(1+C[k]) - 1 for i >= k.
//
// This is a transform of the already-chained series. Re-chaining the
// window's period returns from scratch would drop the compounding
// structured around the window boundary and produce a different number.
// The result is undefined when k is out of range or the base point is a
// total loss (C[k] = -1).
func Rebase(series []decimal.Decimal, k int) ([]decimal.Decimal, bool) {
	if k < 0 || k >= len(series) {
		return nil, false
	}
	base := one.Add(series[k])
	if base.IsZero() {
		return nil, false
	}
	rebased := make([]decimal.Decimal, 0, len(series)-k)
	for _, c := range series[k:] {
		rebased = append(rebased, one.Add(c).Div(base).Sub(one))
	}
	return rebased, true
}

// CAGR returns the compound annual growth rate (end/begin)^(1/years) - 1.
// Fractional years are computed (and may yield extreme values for short
// periods); that is intentional. The result is undefined when begin is
// zero or negative, years is not positive, or the ratio has no real root
// (end negative).
func CAGR(begin, end decimal.Decimal, years float64) (decimal.Decimal, bool) {
	if !begin.IsPositive() || years <= 0 {
		return decimal.Zero, false
	}
	ratio := end.Div(begin)
	if !ratio.IsPositive() {
		return decimal.Zero, false
	}
	exponent := one.Div(decimal.NewFromFloat(years))
	grown, err := ratio.PowWithPrecision(exponent, powPrecision)
	if err != nil {
		return decimal.Zero, false
	}
	return grown.Sub(one), true
}

// CategoryAllocation returns the share of total held by a category, in
// percent. A zero total degrades to 0 rather than undefined: "0% of a
// zero-value portfolio" is a meaningful, displayable answer.
func CategoryAllocation(categoryValue, totalValue decimal.Decimal) decimal.Decimal {
	if totalValue.IsZero() {
		return decimal.Zero
	}
	return categoryValue.Div(totalValue).Mul(hundred)
}

// LookbackSnapshot selects the snapshot closest to the date one period
// before current, searching both earlier and later at unbounded distance.
// On an exact tie the earlier snapshot wins. There is no result when the
// history is empty.
func (h *History) LookbackSnapshot(current Date, p Period) (*Snapshot, bool) {
	target := current.AddMonths(-p.Months())
	var best *Snapshot
	bestDistance := 0
	for _, s := range h.snapshots {
		d := s.on.DistanceTo(target)
		// Snapshots come in ascending date order, so a strict improvement
		// is required: on equal distance the earlier one is kept.
		if best == nil || d < bestDistance {
			best, bestDistance = s, d
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// PeriodFlows aggregates the weighted cash flows of a measurement period
// delimited by two snapshots. Flows of snapshots strictly after begin and
// up to and including end are counted, each attributed to its snapshot's
// date; a flow recorded on the end date weighs zero but still reduces the
// Dietz numerator.
func (h *History) PeriodFlows(begin, end *Snapshot) []WeightedFlow {
	var flows []WeightedFlow
	for _, s := range h.snapshots {
		if !s.on.After(begin.on) || s.on.After(end.on) {
			continue
		}
		net := s.NetFlow()
		if net.IsZero() {
			continue
		}
		flows = append(flows, WeightedFlow{Amount: net.Amount(), Day: s.on.Sub(begin.on)})
	}
	return flows
}
