package patrimoine

import (
	"fmt"
)

// Summary provides an at-a-glance overview of the portfolio's resolved
// value and performance on a given date.
type Summary struct {
	Date          Date
	TotalValue    Money
	SnapshotCount int
	Periods       []PeriodPerformance // Month, Quarter, Year lookbacks
	Inception     InceptionPerformance
}

// PeriodPerformance compares the resolved value on the summary date with
// the snapshot closest to one lookback period before it.
type PeriodPerformance struct {
	Period Period
	From   Date  // date of the lookback snapshot
	Value  Performance
	Growth Metric // simple growth rate over the period
	Dietz  Metric // Modified Dietz return over the period
}

// InceptionPerformance covers the whole recorded history.
type InceptionPerformance struct {
	From  Date
	Value Performance
	TWR   Metric // cumulative time-weighted return since inception
	CAGR  Metric
}

// NewSummary resolves the history and computes the summary for the
// snapshot at or before the given date.
func NewSummary(h *History, on Date) (*Summary, error) {
	end, ok := h.LastOnOrBefore(on)
	if !ok {
		return nil, fmt.Errorf("no snapshot recorded on or before %s", on)
	}

	views := h.ResolveAll()
	endView := views[end.On()]

	summary := &Summary{
		Date:          end.On(),
		TotalValue:    endView.Total,
		SnapshotCount: h.Len(),
	}

	for _, p := range []Period{Month, Quarter, Year} {
		summary.Periods = append(summary.Periods, periodPerformance(h, views, end, p))
	}
	summary.Inception = inceptionPerformance(h, views, end)
	return summary, nil
}

func periodPerformance(h *History, views map[Date]*CompositeView, end *Snapshot, p Period) PeriodPerformance {
	perf := PeriodPerformance{Period: p}

	begin, ok := h.LookbackSnapshot(end.On(), p)
	if !ok || begin.On() == end.On() {
		// A single snapshot spans no period: every period metric is N/A.
		perf.Value = NewPerformance(Money{}, views[end.On()].Total)
		return perf
	}

	beginTotal := views[begin.On()].Total
	endTotal := views[end.On()].Total
	perf.From = begin.On()
	perf.Growth = MetricOf(GrowthRate(beginTotal.Amount(), endTotal.Amount()))
	perf.Dietz = MetricOf(ModifiedDietz(
		beginTotal.Amount(),
		endTotal.Amount(),
		h.PeriodFlows(begin, end),
		end.On().Sub(begin.On()),
	))
	perf.Value = NewPerformance(beginTotal, endTotal)
	if perf.Growth.Defined() {
		perf.Value = NewPerformanceWithReturn(beginTotal, endTotal, perf.Growth.Percent())
	}
	return perf
}

func inceptionPerformance(h *History, views map[Date]*CompositeView, end *Snapshot) InceptionPerformance {
	perf := InceptionPerformance{}

	first, ok := h.First()
	if !ok || first.On() == end.On() {
		perf.Value = NewPerformance(Money{}, views[end.On()].Total)
		return perf
	}

	firstTotal := views[first.On()].Total
	endTotal := views[end.On()].Total
	perf.From = first.On()
	perf.Value = NewPerformance(firstTotal, endTotal)
	perf.CAGR = MetricOf(CAGR(firstTotal.Amount(), endTotal.Amount(), end.On().Years(first.On())))

	// Cumulative TWR is the chained Modified Dietz return of every
	// consecutive snapshot pair; one undefined link makes the whole
	// chain undefined.
	chain := chainedReturns(h, views)
	if c, ok := chain.at(end.On()); ok {
		perf.TWR = DefinedMetric(c)
		perf.Value = NewPerformanceWithReturn(firstTotal, endTotal, perf.TWR.Percent())
	}
	return perf
}
