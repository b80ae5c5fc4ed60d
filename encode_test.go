package patrimoine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const recordFixture = `{"record":"target","category":"Cash","percent":40}
{"record":"target","category":"Equity","percent":60}
{"record":"snapshot","date":"2024-01-01"}
{"record":"value","date":"2024-01-01","name":"Checking","platform":"Bank","category":"Cash","amount":10000,"currency":"EUR"}
{"record":"flow","date":"2024-01-01","amount":10000,"currency":"EUR","description":"initial funding"}
{"record":"snapshot","date":"2024-02-01"}
{"record":"value","date":"2024-02-01","name":"World ETF","platform":"Broker","category":"Equity","amount":5000,"currency":"EUR"}
`

func TestDecodeHistory(t *testing.T) {
	h, targets, err := DecodeHistory(strings.NewReader(recordFixture))
	if err != nil {
		t.Fatalf("DecodeHistory() error = %v", err)
	}
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}

	s, ok := h.On(MustParseDate("2024-01-01"))
	if !ok {
		t.Fatal("missing snapshot 2024-01-01")
	}
	v, ok := s.Value(Asset{Name: "Checking", Platform: "Bank"})
	if !ok {
		t.Fatal("missing value for Checking @ Bank")
	}
	if want := EUR(10000); !v.Value.Equal(want) {
		t.Errorf("value = %v, want %v", v.Value, want)
	}
	if got, want := s.NetFlow(), EUR(10000); !got.Equal(want) {
		t.Errorf("NetFlow() = %v, want %v", got, want)
	}

	pct, ok := targets.Get("equity")
	if !ok {
		t.Fatal("missing equity target")
	}
	if !pct.Equal(decimal.NewFromInt(60)) {
		t.Errorf("equity target = %s, want 60", pct)
	}
}

func TestEncodeHistory_Canonical(t *testing.T) {
	// Decoding the canonical form and re-encoding it is the identity.
	h, targets, err := DecodeHistory(strings.NewReader(recordFixture))
	if err != nil {
		t.Fatalf("DecodeHistory() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeHistory(&buf, h, targets); err != nil {
		t.Fatalf("EncodeHistory() error = %v", err)
	}
	if got := buf.String(); got != recordFixture {
		t.Errorf("EncodeHistory() is not canonical:\ngot:\n%s\nwant:\n%s", got, recordFixture)
	}
}

func TestEncodeHistory_SkipsEmptyFields(t *testing.T) {
	h := NewHistory()
	record(t, h, "2024-01-01", "Old car", "", "", 3000)

	var buf bytes.Buffer
	if err := EncodeHistory(&buf, h, NewTargets()); err != nil {
		t.Fatalf("EncodeHistory() error = %v", err)
	}
	got := buf.String()
	if strings.Contains(got, "platform") || strings.Contains(got, "category") {
		t.Errorf("empty fields should be omitted, got:\n%s", got)
	}
}

func TestDecodeHistory_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // substring of the error
	}{
		{
			"unknown kind",
			`{"record":"wat"}`,
			`unknown record kind`,
		},
		{
			"broken json",
			"{'record':'value'}",
			"line 1",
		},
		{
			"duplicate value",
			`{"record":"value","date":"2024-01-01","name":"X","amount":1}` + "\n" +
				`{"record":"value","date":"2024-01-01","name":"x","amount":2}`,
			"line 2",
		},
		{
			"duplicate flow",
			`{"record":"flow","date":"2024-01-01","amount":1,"description":"salary"}` + "\n" +
				`{"record":"flow","date":"2024-01-01","amount":2,"description":"SALARY"}`,
			"line 2",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeHistory(strings.NewReader(tc.in))
			if err == nil {
				t.Fatal("DecodeHistory() accepted invalid input")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestDecodeHistory_SkipsBlankLines(t *testing.T) {
	in := "\n" + `{"record":"snapshot","date":"2024-01-01"}` + "\n\n"
	h, _, err := DecodeHistory(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeHistory() error = %v", err)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}
