package patrimoine

import (
	"github.com/shopspring/decimal"
)

// RebalanceAdjustment returns the amount to trade in one category to move
// from its current allocation to its target allocation:
//
//	total·target/100 − total·current/100
//
// A positive result is a buy, a negative one a sell. The arithmetic has no
// undefined case; callers exclude categories without a target before
// calling, and the presentation layer suppresses immaterial amounts.
func RebalanceAdjustment(currentPct, targetPct, totalValue decimal.Decimal) decimal.Decimal {
	return totalValue.Mul(targetPct).Div(hundred).Sub(totalValue.Mul(currentPct).Div(hundred))
}

// Targets maps normalized category labels to target allocation percents.
type Targets struct {
	percents map[string]decimal.Decimal
	labels   map[string]string // normalized key to display label
}

// NewTargets creates an empty target allocation set.
func NewTargets() *Targets {
	return &Targets{
		percents: make(map[string]decimal.Decimal),
		labels:   make(map[string]string),
	}
}

// Set records the target percent for a category, replacing any previous one.
func (t *Targets) Set(category string, percent decimal.Decimal) {
	key := normalizeID(category)
	t.percents[key] = percent
	t.labels[key] = category
}

// Get returns the target percent for a category, if one is set.
func (t *Targets) Get(category string) (decimal.Decimal, bool) {
	pct, ok := t.percents[normalizeID(category)]
	return pct, ok
}

// Label returns the display label recorded for a normalized category key.
func (t *Targets) Label(key string) string {
	if label, ok := t.labels[key]; ok {
		return label
	}
	return key
}

// Len returns the number of categories with a target.
func (t *Targets) Len() int { return len(t.percents) }
