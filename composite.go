package patrimoine

import (
	"maps"
	"slices"
)

// CarriedValue is a platform value reused from an earlier snapshot: the
// asset and market value are those recorded on SourceDate, the most recent
// snapshot at or before the resolved one that recorded this platform.
type CarriedValue struct {
	Asset      Asset
	Value      Money
	SourceDate Date
}

// CompositeView is the resolved state of one snapshot: its direct values
// plus every platform carried forward from earlier snapshots. It is
// derived on demand and never persisted or cached.
//
// A platform is either entirely direct or entirely carried in a given
// view, never a mix.
type CompositeView struct {
	On      Date
	Direct  []AssetValue
	Carried []CarriedValue
	Total   Money // exact sum of direct and carried values
}

// DirectTotal returns the exact sum of the view's direct values.
func (v *CompositeView) DirectTotal() Money {
	var total Money
	for _, d := range v.Direct {
		total = total.Add(d.Value)
	}
	return total
}

// CarriedTotal returns the exact sum of the view's carried values.
func (v *CompositeView) CarriedTotal() Money {
	var total Money
	for _, c := range v.Carried {
		total = total.Add(c.Value)
	}
	return total
}

// CategoryTotals returns the view's value per normalized category label.
// Direct and carried values contribute alike; assets without a category
// fall under the empty label.
func (v *CompositeView) CategoryTotals() map[string]Money {
	totals := make(map[string]Money)
	add := func(a Asset, m Money) {
		key := a.CategoryKey()
		totals[key] = totals[key].Add(m)
	}
	for _, d := range v.Direct {
		add(d.Asset, d.Value)
	}
	for _, c := range v.Carried {
		add(c.Asset, c.Value)
	}
	return totals
}

// platformRecord is the most recent direct recording of one platform.
type platformRecord struct {
	sourceDate Date
	values     []AssetValue
}

// ResolveAll computes the composite view of every snapshot in the history.
//
// It processes snapshots in ascending date order with a running index of
// the latest direct recording per platform, so the whole pass is linear in
// the number of (snapshot, value) pairs: no snapshot ever rescans history.
// Carried entries are emitted in platform key order to keep the output
// deterministic.
func (h *History) ResolveAll() map[Date]*CompositeView {
	views := make(map[Date]*CompositeView, len(h.snapshots))

	// History keeps snapshots sorted, but re-sorting here keeps the
	// resolver correct on its own contract.
	snapshots := slices.Clone(h.snapshots)
	slices.SortStableFunc(snapshots, func(a, b *Snapshot) int { return a.on.Compare(b.on) })

	latest := make(map[string]platformRecord)
	for _, s := range snapshots {
		present := s.Platforms()

		view := &CompositeView{On: s.on, Direct: s.Values()}

		// A platform with direct values here suppresses its carried set
		// entirely; everything else in the index carries forward.
		for _, key := range slices.Sorted(maps.Keys(latest)) {
			if present[key] {
				continue
			}
			rec := latest[key]
			for _, v := range rec.values {
				view.Carried = append(view.Carried, CarriedValue{
					Asset:      v.Asset,
					Value:      v.Value,
					SourceDate: rec.sourceDate,
				})
			}
		}

		view.Total = view.DirectTotal().Add(view.CarriedTotal())
		views[s.on] = view

		// Platforms recorded here become the new carry-forward source;
		// absent platforms keep pointing at their true most recent one.
		byPlatform := make(map[string][]AssetValue, len(present))
		for _, v := range s.values {
			key := v.Asset.PlatformKey()
			byPlatform[key] = append(byPlatform[key], v)
		}
		for key, values := range byPlatform {
			latest[key] = platformRecord{sourceDate: s.on, values: values}
		}
	}
	return views
}

// Resolve computes the composite view of the snapshot on the given date.
// The result is identical to running ResolveAll and extracting this date's
// entry: the most recent direct values per platform at or before it.
func (h *History) Resolve(on Date) (*CompositeView, bool) {
	if _, ok := h.byDate[on]; !ok {
		return nil, false
	}
	view, ok := h.ResolveAll()[on]
	return view, ok
}
