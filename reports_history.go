package patrimoine

import (
	"github.com/shopspring/decimal"
)

// HistoryReport lists every resolved snapshot of a window with its
// composite total and its cumulative time-weighted return.
type HistoryReport struct {
	Range   Range
	Entries []HistoryEntry
}

// HistoryEntry is one resolved snapshot in the report.
type HistoryEntry struct {
	Date         Date
	Direct       Money
	Carried      Money
	Total        Money
	NetFlow      Money
	PeriodReturn Metric // Modified Dietz return since the previous snapshot
	Cumulative   Metric // chained TWR, rebased to the window start
}

// cumulativeChain is the cumulative TWR value per snapshot date, computed
// once over the full history.
type cumulativeChain struct {
	dates  []Date
	values []Metric
}

func (c cumulativeChain) at(on Date) (decimal.Decimal, bool) {
	for i, d := range c.dates {
		if d == on {
			return c.values[i].Value(), c.values[i].Defined()
		}
	}
	return decimal.Zero, false
}

// chainedReturns computes the cumulative TWR series over the whole
// history: the first snapshot is the zero baseline, and each later
// snapshot compounds the Modified Dietz return of the period since its
// predecessor. An undefined period return makes every later cumulative
// value undefined; a missing period is never treated as a zero return.
func chainedReturns(h *History, views map[Date]*CompositeView) cumulativeChain {
	snapshots := h.snapshots
	chain := cumulativeChain{
		dates:  make([]Date, 0, len(snapshots)),
		values: make([]Metric, 0, len(snapshots)),
	}

	var periodReturns []decimal.Decimal
	broken := false
	for i, s := range snapshots {
		if i > 0 {
			prev := snapshots[i-1]
			r, ok := ModifiedDietz(
				views[prev.On()].Total.Amount(),
				views[s.On()].Total.Amount(),
				h.PeriodFlows(prev, s),
				s.On().Sub(prev.On()),
			)
			if !ok {
				broken = true
			}
			if !broken {
				periodReturns = append(periodReturns, r)
			}
		}
		chain.dates = append(chain.dates, s.On())
		if broken {
			chain.values = append(chain.values, Metric{})
		} else {
			chain.values = append(chain.values, DefinedMetric(CumulativeTWR(periodReturns)))
		}
	}
	return chain
}

// NewHistoryReport resolves the full history and reports the snapshots
// inside the given range. Cumulative returns are computed over the whole
// history first and then rebased so the first snapshot in the window is
// the zero baseline; the windowed chain is never re-chained from scratch.
func NewHistoryReport(h *History, window Range) (*HistoryReport, error) {
	views := h.ResolveAll()
	chain := chainedReturns(h, views)

	report := &HistoryReport{Range: window}

	// Locate the rebase baseline: the first snapshot inside the window.
	baseIndex := -1
	for i, s := range h.snapshots {
		if window.Contains(s.On()) {
			baseIndex = i
			break
		}
	}
	if baseIndex < 0 {
		return report, nil
	}
	base := chain.values[baseIndex]

	for i, s := range h.snapshots[baseIndex:] {
		if !window.Contains(s.On()) {
			break
		}
		index := baseIndex + i
		view := views[s.On()]
		entry := HistoryEntry{
			Date:    s.On(),
			Direct:  view.DirectTotal(),
			Carried: view.CarriedTotal(),
			Total:   view.Total,
			NetFlow: s.NetFlow(),
		}

		if index > 0 {
			prev := h.snapshots[index-1]
			entry.PeriodReturn = MetricOf(ModifiedDietz(
				views[prev.On()].Total.Amount(),
				view.Total.Amount(),
				h.PeriodFlows(prev, s),
				s.On().Sub(prev.On()),
			))
		} else {
			entry.PeriodReturn = DefinedMetric(decimal.Zero)
		}

		if base.Defined() && chain.values[index].Defined() {
			rebased := one.Add(chain.values[index].Value()).
				Div(one.Add(base.Value())).
				Sub(one)
			entry.Cumulative = DefinedMetric(rebased)
		}

		report.Entries = append(report.Entries, entry)
	}
	return report, nil
}
