package patrimoine

import "testing"

func TestMoney_Add(t *testing.T) {
	if got, want := EUR(10.50).Add(EUR(4.50)), EUR(15); !got.Equal(want) {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

func TestMoney_WeakCurrency(t *testing.T) {
	// The zero Money has no currency label and adopts the other operand's.
	var zero Money
	got := zero.Add(EUR(100))
	if got.Currency() != "EUR" {
		t.Errorf("Currency() = %q, want EUR", got.Currency())
	}
	if !got.Equal(EUR(100)) {
		t.Errorf("zero.Add(EUR 100) = %v, want EUR 100", got)
	}
}

func TestMoney_MismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding EUR to USD should panic")
		}
	}()
	EUR(1).Add(USD(1))
}

func TestMoney_ExactArithmetic(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3 in decimal arithmetic.
	if got, want := EUR(0.1).Add(EUR(0.2)), EUR(0.3); !got.Equal(want) {
		t.Errorf("0.1 + 0.2 = %v, want %v", got, want)
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := EUR(0).SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q, want -", got)
	}
	if got := EUR(100).SignedString(); got[0] != '+' {
		t.Errorf("SignedString() of a positive amount = %q, want a leading +", got)
	}
}

func TestPercent_SignedString(t *testing.T) {
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q, want -", got)
	}
	if got, want := Percent(4.69).SignedString(), "+4.69%"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := Percent(-2.5).SignedString(), "-2.50%"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
}
