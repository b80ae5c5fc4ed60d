package patrimoine

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRebalanceAdjustment(t *testing.T) {
	total := d("100000")
	tests := []struct {
		name            string
		current, target string
		want            string
	}{
		{"underweight buys", "25", "40", "15000"},
		{"overweight sells", "75", "60", "-15000"},
		{"on target", "40", "40", "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RebalanceAdjustment(d(tc.current), d(tc.target), total)
			if !approxEqual(got, d(tc.want)) {
				t.Errorf("RebalanceAdjustment(%s, %s) = %s, want %s", tc.current, tc.target, got, tc.want)
			}
		})
	}
}

func TestTargets_Normalization(t *testing.T) {
	targets := NewTargets()
	targets.Set("Equity", decimal.NewFromInt(60))

	pct, ok := targets.Get("  EQUITY ")
	if !ok {
		t.Fatal("Get() did not match the normalized category")
	}
	if !pct.Equal(decimal.NewFromInt(60)) {
		t.Errorf("Get() = %s, want 60", pct)
	}
	if got, want := targets.Label("equity"), "Equity"; got != want {
		t.Errorf("Label() = %q, want the recorded spelling %q", got, want)
	}

	// Setting the same category under another spelling replaces it.
	targets.Set("equity", decimal.NewFromInt(55))
	if targets.Len() != 1 {
		t.Errorf("Len() = %d, want 1", targets.Len())
	}
	pct, _ = targets.Get("Equity")
	if !pct.Equal(decimal.NewFromInt(55)) {
		t.Errorf("Get() after replace = %s, want 55", pct)
	}
}
