package patrimoine

import (
	"fmt"
	"strings"
)

// Period is a calendar-month lookback horizon for period metrics.
type Period int

const (
	// Month looks back one calendar month.
	Month Period = iota
	// Quarter looks back three calendar months.
	Quarter
	// Year looks back twelve calendar months.
	Year
)

// Months returns the number of calendar months the period spans.
func (p Period) Months() int {
	switch p {
	case Month:
		return 1
	case Quarter:
		return 3
	case Year:
		return 12
	default:
		panic("unknown period")
	}
}

func (p Period) String() string {
	switch p {
	case Month:
		return "month"
	case Quarter:
		return "quarter"
	case Year:
		return "year"
	default:
		return "period"
	}
}

// ParsePeriod parses a string into a Period.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month", "monthly", "1m":
		return Month, nil
	case "quarter", "quarterly", "3m":
		return Quarter, nil
	case "year", "yearly", "12m", "1y":
		return Year, nil
	default:
		return Month, fmt.Errorf("unknown period %q", s)
	}
}
