package patrimoine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a display-oriented percentage value (100 means 100%).
type Percent float64

// PercentOf converts an exact ratio (0.1 means 10%) into a Percent.
func PercentOf(ratio decimal.Decimal) Percent {
	return Percent(100 * ratio.InexactFloat64())
}

// Equal compares two percents with display precision.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString returns the percent with an explicit sign, or "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
