package patrimoine

import (
	"fmt"
	"slices"
)

// AssetValue is the market value recorded for one asset in one snapshot.
// Values may be zero or negative (a liability is a negative value).
type AssetValue struct {
	Asset Asset
	Value Money
}

// CashFlow is an external cash movement recorded against a snapshot.
// A positive amount is an inflow into the portfolio, a negative amount an
// outflow. For time weighting the flow is treated as occurring exactly on
// its snapshot's date.
type CashFlow struct {
	Amount      Money
	Description string
}

// Snapshot is the portfolio state confirmed by the user on one calendar
// date: the direct asset values recorded that day plus the external cash
// flows attributed to it. A snapshot owns its values and flows; deleting
// the snapshot from a History deletes them with it.
type Snapshot struct {
	on     Date
	values []AssetValue
	flows  []CashFlow

	byAsset map[AssetKey]int // index into values
}

// NewSnapshot creates an empty snapshot for the given date.
func NewSnapshot(on Date) *Snapshot {
	return &Snapshot{on: on, byAsset: make(map[AssetKey]int)}
}

// On returns the date of the snapshot.
func (s *Snapshot) On() Date { return s.on }

// Values returns the direct asset values of the snapshot, in recording order.
func (s *Snapshot) Values() []AssetValue { return slices.Clone(s.values) }

// Flows returns the cash flows of the snapshot, in recording order.
func (s *Snapshot) Flows() []CashFlow { return slices.Clone(s.flows) }

// AddValue records a direct market value for an asset. At most one value
// may exist per asset (under identity normalization); a second one is a
// structural violation and is rejected.
func (s *Snapshot) AddValue(v AssetValue) error {
	key := v.Asset.Key()
	if _, dup := s.byAsset[key]; dup {
		return fmt.Errorf("duplicate value for asset %q on %s", v.Asset, s.on)
	}
	s.byAsset[key] = len(s.values)
	s.values = append(s.values, v)
	return nil
}

// SetValue records a direct market value for an asset, replacing any
// previously recorded value for the same asset.
func (s *Snapshot) SetValue(v AssetValue) {
	key := v.Asset.Key()
	if i, ok := s.byAsset[key]; ok {
		s.values[i] = v
		return
	}
	s.byAsset[key] = len(s.values)
	s.values = append(s.values, v)
}

// Value returns the direct value recorded for the given asset, if any.
func (s *Snapshot) Value(a Asset) (AssetValue, bool) {
	if i, ok := s.byAsset[a.Key()]; ok {
		return s.values[i], true
	}
	return AssetValue{}, false
}

// AddFlow records an external cash flow. Descriptions are unique within a
// snapshot under case folding; a duplicate is a structural violation.
func (s *Snapshot) AddFlow(f CashFlow) error {
	want := normalizeID(f.Description)
	for _, existing := range s.flows {
		if normalizeID(existing.Description) == want {
			return fmt.Errorf("duplicate cash flow %q on %s", f.Description, s.on)
		}
	}
	s.flows = append(s.flows, f)
	return nil
}

// NetFlow returns the summed cash flow of the snapshot.
func (s *Snapshot) NetFlow() Money {
	var total Money
	for _, f := range s.flows {
		total = total.Add(f.Amount)
	}
	return total
}

// DirectTotal returns the exact sum of the snapshot's direct values.
func (s *Snapshot) DirectTotal() Money {
	var total Money
	for _, v := range s.values {
		total = total.Add(v.Value)
	}
	return total
}

// Platforms returns the set of normalized platform keys present in the
// snapshot, i.e. platforms with at least one direct value here.
func (s *Snapshot) Platforms() map[string]bool {
	present := make(map[string]bool)
	for _, v := range s.values {
		present[v.Asset.PlatformKey()] = true
	}
	return present
}
