package patrimoine

import (
	"fmt"
	"slices"
)

// History is the full, ordered set of snapshots for one portfolio.
//
// Snapshots are kept in chronological order and there is exactly one per
// date. The History owns its snapshots: removing one removes its values
// and cash flows with it.
type History struct {
	snapshots []*Snapshot
	byDate    map[Date]*Snapshot
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{byDate: make(map[Date]*Snapshot)}
}

// Len returns the number of snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Append adds snapshots to the history, keeping chronological order.
// A snapshot whose date is already present is a structural violation and
// is rejected.
func (h *History) Append(snapshots ...*Snapshot) error {
	for _, s := range snapshots {
		if _, dup := h.byDate[s.on]; dup {
			return fmt.Errorf("duplicate snapshot on %s", s.on)
		}
		h.byDate[s.on] = s
		h.snapshots = append(h.snapshots, s)
	}
	h.sort()
	return nil
}

func (h *History) sort() {
	slices.SortStableFunc(h.snapshots, func(a, b *Snapshot) int {
		return a.on.Compare(b.on)
	})
}

// On returns the snapshot recorded for the given date, if any.
func (h *History) On(d Date) (*Snapshot, bool) {
	s, ok := h.byDate[d]
	return s, ok
}

// Get returns the snapshot for the given date, creating and appending an
// empty one when none exists yet.
func (h *History) Get(d Date) *Snapshot {
	if s, ok := h.byDate[d]; ok {
		return s
	}
	s := NewSnapshot(d)
	h.byDate[d] = s
	h.snapshots = append(h.snapshots, s)
	h.sort()
	return s
}

// Remove deletes the snapshot for the given date, along with its values
// and cash flows. Composite views are never cached, so other snapshots'
// resolutions follow the new data set on the next call.
func (h *History) Remove(d Date) bool {
	s, ok := h.byDate[d]
	if !ok {
		return false
	}
	delete(h.byDate, d)
	h.snapshots = slices.DeleteFunc(h.snapshots, func(x *Snapshot) bool { return x == s })
	return true
}

// Snapshots returns the snapshots in chronological order.
func (h *History) Snapshots() []*Snapshot { return slices.Clone(h.snapshots) }

// First returns the earliest snapshot, if any.
func (h *History) First() (*Snapshot, bool) {
	if len(h.snapshots) == 0 {
		return nil, false
	}
	return h.snapshots[0], true
}

// Last returns the latest snapshot, if any.
func (h *History) Last() (*Snapshot, bool) {
	if len(h.snapshots) == 0 {
		return nil, false
	}
	return h.snapshots[len(h.snapshots)-1], true
}

// LastOnOrBefore returns the latest snapshot whose date is on or before d.
func (h *History) LastOnOrBefore(d Date) (*Snapshot, bool) {
	for i := len(h.snapshots) - 1; i >= 0; i-- {
		if !h.snapshots[i].on.After(d) {
			return h.snapshots[i], true
		}
	}
	return nil, false
}

// Assets returns every distinct asset recorded anywhere in the history,
// in first-appearance order. The latest recorded Category label wins for
// assets recorded multiple times.
func (h *History) Assets() []Asset {
	seen := make(map[AssetKey]int)
	assets := make([]Asset, 0, 16)
	for _, s := range h.snapshots {
		for _, v := range s.values {
			key := v.Asset.Key()
			if i, ok := seen[key]; ok {
				if v.Asset.Category != "" {
					assets[i].Category = v.Asset.Category
				}
				continue
			}
			seen[key] = len(assets)
			assets = append(assets, v.Asset)
		}
	}
	return assets
}
