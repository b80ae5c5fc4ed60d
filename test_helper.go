package patrimoine

import "testing"

// helpers shared by tests in this package.

// record adds a direct value to the snapshot of the given date, failing
// the test on structural violations.
func record(t *testing.T, h *History, date, name, platform, category string, amount float64) {
	t.Helper()
	v := AssetValue{
		Asset: Asset{Name: name, Platform: platform, Category: category},
		Value: EUR(amount),
	}
	if err := h.Get(MustParseDate(date)).AddValue(v); err != nil {
		t.Fatalf("AddValue(%s, %s) error = %v", date, name, err)
	}
}

// deposit adds a cash flow to the snapshot of the given date.
func deposit(t *testing.T, h *History, date, description string, amount float64) {
	t.Helper()
	f := CashFlow{Amount: EUR(amount), Description: description}
	if err := h.Get(MustParseDate(date)).AddFlow(f); err != nil {
		t.Fatalf("AddFlow(%s, %s) error = %v", date, description, err)
	}
}

// resolveOn resolves one date, failing the test when the snapshot is missing.
func resolveOn(t *testing.T, h *History, date string) *CompositeView {
	t.Helper()
	view, ok := h.Resolve(MustParseDate(date))
	if !ok {
		t.Fatalf("Resolve(%s): no snapshot", date)
	}
	return view
}
