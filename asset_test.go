package patrimoine

import "testing"

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Bank", "bank"},
		{"  My   Broker  ", "my broker"},
		{"GROSSE Straße", "grosse strasse"}, // ß case-folds to ss
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range tests {
		if got := normalizeID(tc.in); got != tc.want {
			t.Errorf("normalizeID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAsset_Same(t *testing.T) {
	a := Asset{Name: "World ETF", Platform: "My Broker"}
	tests := []struct {
		b    Asset
		want bool
	}{
		{Asset{Name: "world etf", Platform: "MY  BROKER"}, true},
		{Asset{Name: "World ETF", Platform: "My Broker", Category: "Equity"}, true}, // category is not identity
		{Asset{Name: "World ETF", Platform: "Other Broker"}, false},
		{Asset{Name: "Bond ETF", Platform: "My Broker"}, false},
	}
	for _, tc := range tests {
		if got := a.Same(tc.b); got != tc.want {
			t.Errorf("Same(%v) = %v, want %v", tc.b, got, tc.want)
		}
	}
}

func TestAsset_PlatformKey(t *testing.T) {
	// The empty platform is a valid key of its own, distinct from any
	// named platform.
	noPlatform := Asset{Name: "Old car"}
	if got := noPlatform.PlatformKey(); got != "" {
		t.Errorf("PlatformKey() = %q, want empty", got)
	}
	named := Asset{Name: "Checking", Platform: "Bank"}
	if noPlatform.PlatformKey() == named.PlatformKey() {
		t.Error("empty platform must differ from a named one")
	}
}

func TestAsset_String(t *testing.T) {
	if got, want := (Asset{Name: "Checking", Platform: "Bank"}).String(), "Checking @ Bank"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := (Asset{Name: "Old car"}).String(), "Old car"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
