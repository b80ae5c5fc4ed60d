package patrimoine

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewDate_Normalizes(t *testing.T) {
	// time.Date rules: day 0 is the last day of the previous month.
	if got, want := NewDate(2024, time.March, 0), NewDate(2024, time.February, 29); got != want {
		t.Errorf("NewDate(2024, March, 0) = %v, want %v", got, want)
	}
	if got, want := NewDate(2024, time.January, 32), NewDate(2024, time.February, 1); got != want {
		t.Errorf("NewDate(2024, January, 32) = %v, want %v", got, want)
	}
}

func TestDate_Sub(t *testing.T) {
	tests := []struct {
		d, x string
		want int
	}{
		{"2024-01-31", "2024-01-01", 30},
		{"2024-03-31", "2024-01-01", 90}, // leap year
		{"2024-01-01", "2024-01-31", -30},
		{"2024-01-01", "2024-01-01", 0},
	}
	for _, tc := range tests {
		if got := MustParseDate(tc.d).Sub(MustParseDate(tc.x)); got != tc.want {
			t.Errorf("%s.Sub(%s) = %d, want %d", tc.d, tc.x, got, tc.want)
		}
	}
}

func TestDate_DistanceTo(t *testing.T) {
	a, b := MustParseDate("2024-01-01"), MustParseDate("2024-01-31")
	if got := a.DistanceTo(b); got != 30 {
		t.Errorf("DistanceTo = %d, want 30", got)
	}
	if got := b.DistanceTo(a); got != 30 {
		t.Errorf("DistanceTo is not symmetric: %d, want 30", got)
	}
}

func TestDate_Years(t *testing.T) {
	// Exactly 365.25 days on the average-year basis is one year.
	from := MustParseDate("2020-01-01")
	to := from.Add(731) // two years with one leap day

	got := to.Years(from)
	want := 731.0 / 365.25
	if got != want {
		t.Errorf("Years() = %v, want %v", got, want)
	}
}

func TestDate_AddMonths(t *testing.T) {
	tests := []struct {
		start  string
		months int
		want   string
	}{
		{"2024-03-15", -1, "2024-02-15"},
		{"2024-01-15", -3, "2023-10-15"},
		{"2024-03-31", -1, "2024-03-02"}, // Feb 31 normalizes forward (leap year)
		{"2024-11-30", 3, "2025-03-02"},  // Feb 30 normalizes forward too
	}
	for _, tc := range tests {
		got := MustParseDate(tc.start).AddMonths(tc.months)
		if want := MustParseDate(tc.want); got != want {
			t.Errorf("%s.AddMonths(%d) = %v, want %v", tc.start, tc.months, got, want)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		ok   bool
	}{
		{"2024-01-02", NewDate(2024, time.January, 2), true},
		{"2024-1-2", NewDate(2024, time.January, 2), true},
		{" 2024-01-02 ", NewDate(2024, time.January, 2), true},
		{"02/01/2024", Date{}, false},
		{"not a date", Date{}, false},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseDate(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDate_Relative(t *testing.T) {
	today := Today()
	tests := []struct {
		in   string
		want Date
	}{
		{"0d", today},
		{"-1d", today.Add(-1)},
		{"+2w", today.Add(14)},
		{"-1m", today.AddMonths(-1)},
		{"-1y", NewDate(today.Year()-1, today.Month(), today.Day())},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	in := MustParseDate("2024-01-02")
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if got, want := string(data), `"2024-01-02"`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
	var out Date
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %v, want %v", out, in)
	}

	// Data files are strict: no relative offsets.
	if err := json.Unmarshal([]byte(`"-1m"`), &out); err == nil {
		t.Error("Unmarshal of a relative date should fail")
	}
}

func TestRange(t *testing.T) {
	r := NewRange(MustParseDate("2024-03-01"), MustParseDate("2024-01-01"))
	if r.From.After(r.To) {
		t.Errorf("NewRange did not swap the boundaries: %v", r)
	}
	for _, tc := range []struct {
		d    string
		want bool
	}{
		{"2024-01-01", true},
		{"2024-02-15", true},
		{"2024-03-01", true},
		{"2023-12-31", false},
		{"2024-03-02", false},
	} {
		if got := r.Contains(MustParseDate(tc.d)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.d, got, tc.want)
		}
	}
}
