package patrimoine

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an exact monetary value with an optional currency label.
//
// The currency is a passthrough label: it selects the display format and
// guards against mixing two labeled currencies in one operation, but no
// conversion ever happens. The empty currency is weak and adopts the other
// operand's label.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from any common numeric type and a currency label.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// EUR is a shorthand constructor used pervasively in tests.
func EUR[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return M(value, "EUR")
}

// USD is a shorthand constructor used pervasively in tests.
func USD[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return M(value, "USD")
}

// currency returns the full go-money currency for formatting purposes.
func (m Money) currency() money.Currency {
	// the Money constructor guarantees a non-nil currency even for "".
	return *money.New(0, m.cur).Currency()
}

// String renders the value with its currency's conventional formatting.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the money value with an explicit sign, or "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string { return m.cur }

// Amount returns the exact decimal value in major units.
func (m Money) Amount() decimal.Decimal { return m.value }

func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) IsPositive() bool          { return m.value.IsPositive() }
func (m Money) IsNegative() bool          { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool     { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool  { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Add(n Money) Money         { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money         { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// cur resolves the currency of a binary operation: the "" currency is weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}
