package patrimoine

import "testing"

func TestHistory_Append_RejectsDuplicateDates(t *testing.T) {
	h := NewHistory()
	on := MustParseDate("2024-01-01")
	if err := h.Append(NewSnapshot(on)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := h.Append(NewSnapshot(on)); err == nil {
		t.Error("Append() accepted a duplicate snapshot date")
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHistory_Get_CreatesOnce(t *testing.T) {
	h := NewHistory()
	on := MustParseDate("2024-01-01")
	first := h.Get(on)
	second := h.Get(on)
	if first != second {
		t.Error("Get() created a second snapshot for the same date")
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHistory_KeepsChronologicalOrder(t *testing.T) {
	h := NewHistory()
	for _, d := range []string{"2024-03-01", "2024-01-01", "2024-02-01"} {
		h.Get(MustParseDate(d))
	}
	want := []string{"2024-01-01", "2024-02-01", "2024-03-01"}
	for i, s := range h.Snapshots() {
		if got := s.On().String(); got != want[i] {
			t.Errorf("Snapshots()[%d] = %s, want %s", i, got, want[i])
		}
	}
}

func TestHistory_Remove(t *testing.T) {
	h := NewHistory()
	record(t, h, "2024-01-01", "Checking", "Bank", "", 10000)
	record(t, h, "2024-02-01", "Checking", "Bank", "", 11000)

	if !h.Remove(MustParseDate("2024-01-01")) {
		t.Fatal("Remove() did not find the snapshot")
	}
	if h.Remove(MustParseDate("2024-01-01")) {
		t.Error("Remove() reported success twice")
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
	if _, ok := h.On(MustParseDate("2024-01-01")); ok {
		t.Error("On() still finds the removed snapshot")
	}
}

func TestHistory_LastOnOrBefore(t *testing.T) {
	h := NewHistory()
	record(t, h, "2024-01-01", "Checking", "Bank", "", 10000)
	record(t, h, "2024-02-01", "Checking", "Bank", "", 11000)

	tests := []struct {
		on   string
		want string
		ok   bool
	}{
		{"2024-02-15", "2024-02-01", true},
		{"2024-02-01", "2024-02-01", true},
		{"2024-01-31", "2024-01-01", true},
		{"2023-12-31", "", false},
	}
	for _, tc := range tests {
		s, ok := h.LastOnOrBefore(MustParseDate(tc.on))
		if ok != tc.ok {
			t.Errorf("LastOnOrBefore(%s) ok = %v, want %v", tc.on, ok, tc.ok)
			continue
		}
		if ok && s.On().String() != tc.want {
			t.Errorf("LastOnOrBefore(%s) = %s, want %s", tc.on, s.On(), tc.want)
		}
	}
}

func TestHistory_Assets(t *testing.T) {
	h := NewHistory()
	record(t, h, "2024-01-01", "Checking", "Bank", "", 10000)
	record(t, h, "2024-01-01", "World ETF", "Broker", "Equity", 5000)
	// Re-recording the same asset later with a category updates the label
	// but keeps the first-appearance position.
	record(t, h, "2024-02-01", "Checking", "Bank", "Cash", 11000)

	assets := h.Assets()
	if len(assets) != 2 {
		t.Fatalf("len(Assets()) = %d, want 2", len(assets))
	}
	if got, want := assets[0].Name, "Checking"; got != want {
		t.Errorf("Assets()[0].Name = %q, want %q", got, want)
	}
	if got, want := assets[0].Category, "Cash"; got != want {
		t.Errorf("Assets()[0].Category = %q, want %q (latest label wins)", got, want)
	}
	if got, want := assets[1].Name, "World ETF"; got != want {
		t.Errorf("Assets()[1].Name = %q, want %q", got, want)
	}
}
