package patrimoine

import "testing"

func TestSnapshot_AddValue_RejectsDuplicates(t *testing.T) {
	s := NewSnapshot(MustParseDate("2024-01-01"))
	v := AssetValue{Asset: Asset{Name: "World ETF", Platform: "My Broker"}, Value: EUR(5000)}
	if err := s.AddValue(v); err != nil {
		t.Fatalf("AddValue() error = %v", err)
	}

	// The duplicate check runs under identity normalization.
	dup := AssetValue{Asset: Asset{Name: "WORLD  ETF", Platform: "my broker"}, Value: EUR(6000)}
	if err := s.AddValue(dup); err == nil {
		t.Error("AddValue() accepted a duplicate asset")
	}
	if len(s.Values()) != 1 {
		t.Errorf("len(Values()) = %d, want 1 after rejected duplicate", len(s.Values()))
	}
}

func TestSnapshot_SetValue_Replaces(t *testing.T) {
	s := NewSnapshot(MustParseDate("2024-01-01"))
	a := Asset{Name: "World ETF", Platform: "My Broker"}
	s.SetValue(AssetValue{Asset: a, Value: EUR(5000)})
	s.SetValue(AssetValue{Asset: a, Value: EUR(5500)})

	if len(s.Values()) != 1 {
		t.Fatalf("len(Values()) = %d, want 1", len(s.Values()))
	}
	got, ok := s.Value(a)
	if !ok {
		t.Fatal("Value() not found")
	}
	if want := EUR(5500); !got.Value.Equal(want) {
		t.Errorf("Value() = %v, want %v", got.Value, want)
	}
}

func TestSnapshot_AddFlow_RejectsDuplicateDescriptions(t *testing.T) {
	s := NewSnapshot(MustParseDate("2024-01-01"))
	if err := s.AddFlow(CashFlow{Amount: EUR(1000), Description: "January salary"}); err != nil {
		t.Fatalf("AddFlow() error = %v", err)
	}
	if err := s.AddFlow(CashFlow{Amount: EUR(500), Description: "  january  SALARY "}); err == nil {
		t.Error("AddFlow() accepted a case-folded duplicate description")
	}
	if err := s.AddFlow(CashFlow{Amount: EUR(500), Description: "bonus"}); err != nil {
		t.Errorf("AddFlow() with a distinct description error = %v", err)
	}
}

func TestSnapshot_NetFlow(t *testing.T) {
	s := NewSnapshot(MustParseDate("2024-01-01"))
	if !s.NetFlow().IsZero() {
		t.Errorf("NetFlow() of empty snapshot = %v, want zero", s.NetFlow())
	}
	s.AddFlow(CashFlow{Amount: EUR(1000), Description: "salary"})
	s.AddFlow(CashFlow{Amount: EUR(-300), Description: "withdrawal"})
	if got, want := s.NetFlow(), EUR(700); !got.Equal(want) {
		t.Errorf("NetFlow() = %v, want %v", got, want)
	}
}

func TestSnapshot_DirectTotal(t *testing.T) {
	s := NewSnapshot(MustParseDate("2024-01-01"))
	s.SetValue(AssetValue{Asset: Asset{Name: "Checking", Platform: "Bank"}, Value: EUR(10000)})
	s.SetValue(AssetValue{Asset: Asset{Name: "Loan"}, Value: EUR(-2000)})
	if got, want := s.DirectTotal(), EUR(8000); !got.Equal(want) {
		t.Errorf("DirectTotal() = %v, want %v", got, want)
	}
}

func TestSnapshot_Platforms(t *testing.T) {
	s := NewSnapshot(MustParseDate("2024-01-01"))
	s.SetValue(AssetValue{Asset: Asset{Name: "Checking", Platform: "Bank"}, Value: EUR(10000)})
	s.SetValue(AssetValue{Asset: Asset{Name: "Savings", Platform: "BANK"}, Value: EUR(5000)})
	s.SetValue(AssetValue{Asset: Asset{Name: "Old car"}, Value: EUR(3000)})

	got := s.Platforms()
	if len(got) != 2 {
		t.Fatalf("Platforms() = %v, want 2 entries", got)
	}
	if !got["bank"] {
		t.Error(`Platforms() missing "bank"`)
	}
	if !got[""] {
		t.Error("Platforms() missing the empty platform")
	}
}
