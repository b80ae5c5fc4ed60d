package patrimoine

import (
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// AllocationReport breaks the resolved portfolio down by category and,
// where targets are set, suggests the buy or sell amount to rebalance.
type AllocationReport struct {
	Date  Date
	Total Money
	Lines []AllocationLine
}

// AllocationLine is one category of the allocation report.
type AllocationLine struct {
	Category   string
	Value      Money
	Allocation decimal.Decimal // percent of total, 0 for a zero-value portfolio
	HasTarget  bool
	Target     decimal.Decimal // percent
	Adjustment Money           // positive buy, negative sell; zero without a target
}

// NewAllocationReport resolves the snapshot at or before the given date
// and computes per-category allocations and rebalancing adjustments.
// Categories without a target get an allocation line but no adjustment.
func NewAllocationReport(h *History, targets *Targets, on Date) (*AllocationReport, error) {
	end, ok := h.LastOnOrBefore(on)
	if !ok {
		return nil, fmt.Errorf("no snapshot recorded on or before %s", on)
	}
	view, _ := h.Resolve(end.On())

	report := &AllocationReport{Date: end.On(), Total: view.Total}

	totals := view.CategoryTotals()
	for _, key := range slices.Sorted(maps.Keys(totals)) {
		value := totals[key]
		line := AllocationLine{
			Category:   displayCategory(h, targets, key),
			Value:      value,
			Allocation: CategoryAllocation(value.Amount(), view.Total.Amount()),
		}
		if target, ok := targets.Get(key); ok {
			line.HasTarget = true
			line.Target = target
			adjustment := RebalanceAdjustment(line.Allocation, target, view.Total.Amount())
			line.Adjustment = M(adjustment, view.Total.Currency())
		}
		report.Lines = append(report.Lines, line)
	}
	return report, nil
}

// displayCategory recovers a display label for a normalized category key,
// preferring the target's label, then any asset's recorded spelling.
func displayCategory(h *History, targets *Targets, key string) string {
	if key == "" {
		return "(uncategorized)"
	}
	if _, ok := targets.Get(key); ok {
		return targets.Label(key)
	}
	for _, a := range h.Assets() {
		if a.CategoryKey() == key {
			return a.Category
		}
	}
	return key
}
