package patrimoine

import (
	"github.com/shopspring/decimal"
)

// Metric is an optional exact ratio: the result of a metric computation
// that may be mathematically undefined for its inputs. An undefined metric
// renders as "N/A"; it never pretends to be zero.
type Metric struct {
	value   decimal.Decimal
	defined bool
}

// DefinedMetric wraps a computed ratio.
func DefinedMetric(v decimal.Decimal) Metric { return Metric{value: v, defined: true} }

// MetricOf wraps the (value, ok) pair every metric function returns.
func MetricOf(v decimal.Decimal, ok bool) Metric { return Metric{value: v, defined: ok} }

// Defined reports whether the metric has a value.
func (m Metric) Defined() bool { return m.defined }

// Value returns the exact ratio. It is only meaningful when Defined.
func (m Metric) Value() decimal.Decimal { return m.value }

// Percent converts the ratio to a display percent (0.1 becomes 10%).
func (m Metric) Percent() Percent { return PercentOf(m.value) }

// String renders the metric as a signed percent, or "N/A" when undefined.
func (m Metric) String() string {
	if !m.defined {
		return "N/A"
	}
	return m.Percent().SignedString()
}
