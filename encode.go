package patrimoine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The record file is a JSONL journal: one JSON object per line, with a
// "record" discriminator. It stays human readable, sorts cleanly, and is
// trivial to append to.

// RecordKind discriminates the line types of a record file.
type RecordKind string

const (
	// RecordSnapshot declares a snapshot date, possibly empty.
	RecordSnapshot RecordKind = "snapshot"
	// RecordValue is a direct asset value inside a snapshot.
	RecordValue RecordKind = "value"
	// RecordFlow is an external cash flow inside a snapshot.
	RecordFlow RecordKind = "flow"
	// RecordTarget is a category target allocation.
	RecordTarget RecordKind = "target"
)

type valueRecord struct {
	Date     Date            `json:"date"`
	Name     string          `json:"name"`
	Platform string          `json:"platform"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type flowRecord struct {
	Date        Date            `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
}

type targetRecord struct {
	Category string          `json:"category"`
	Percent  decimal.Decimal `json:"percent"`
}

// DecodeHistory reads a record file and materializes the full history and
// the target allocations. Structural violations in the file (duplicate
// values, duplicate flow descriptions) surface as errors with the
// offending line.
func DecodeHistory(r io.Reader) (*History, *Targets, error) {
	history := NewHistory()
	targets := NewTargets()

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(strings.TrimSpace(string(raw))) == 0 {
			continue
		}

		var identifier struct {
			Record RecordKind `json:"record"`
		}
		if err := json.Unmarshal(raw, &identifier); err != nil {
			return nil, nil, fmt.Errorf("line %d: could not identify record in %q: %w", line, string(raw), err)
		}

		switch identifier.Record {
		case RecordSnapshot:
			var rec struct {
				Date Date `json:"date"`
			}
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, nil, fmt.Errorf("line %d: invalid snapshot record: %w", line, err)
			}
			history.Get(rec.Date)

		case RecordValue:
			var rec valueRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, nil, fmt.Errorf("line %d: invalid value record: %w", line, err)
			}
			snapshot := history.Get(rec.Date)
			v := AssetValue{
				Asset: Asset{Name: rec.Name, Platform: rec.Platform, Category: rec.Category},
				Value: M(rec.Amount, rec.Currency),
			}
			if err := snapshot.AddValue(v); err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", line, err)
			}

		case RecordFlow:
			var rec flowRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, nil, fmt.Errorf("line %d: invalid flow record: %w", line, err)
			}
			snapshot := history.Get(rec.Date)
			f := CashFlow{Amount: M(rec.Amount, rec.Currency), Description: rec.Description}
			if err := snapshot.AddFlow(f); err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", line, err)
			}

		case RecordTarget:
			var rec targetRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, nil, fmt.Errorf("line %d: invalid target record: %w", line, err)
			}
			targets.Set(rec.Category, rec.Percent)

		default:
			return nil, nil, fmt.Errorf("line %d: unknown record kind %q", line, identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading record file: %w", err)
	}
	return history, targets, nil
}

// EncodeHistory writes the canonical form of a history and its targets:
// targets first (sorted by category), then snapshots chronologically, each
// snapshot line followed by its value and flow lines.
func EncodeHistory(w io.Writer, h *History, targets *Targets) error {
	categories := make([]string, 0, targets.Len())
	for key := range targets.percents {
		categories = append(categories, key)
	}
	slices.Sort(categories)
	for _, key := range categories {
		if err := EncodeTarget(w, targets.Label(key), targets.percents[key]); err != nil {
			return err
		}
	}

	for _, s := range h.Snapshots() {
		if err := EncodeSnapshot(w, s.On()); err != nil {
			return err
		}
		for _, v := range s.Values() {
			if err := EncodeValue(w, s.On(), v); err != nil {
				return err
			}
		}
		for _, f := range s.Flows() {
			if err := EncodeFlow(w, s.On(), f); err != nil {
				return err
			}
		}
	}
	return nil
}

// EncodeSnapshot appends one snapshot declaration line.
func EncodeSnapshot(w io.Writer, on Date) error {
	var obj jsonObjectWriter
	obj.Append("record", RecordSnapshot).Append("date", on)
	return writeLine(w, &obj)
}

// EncodeValue appends one value record line.
func EncodeValue(w io.Writer, on Date, v AssetValue) error {
	var obj jsonObjectWriter
	obj.Append("record", RecordValue).
		Append("date", on).
		Append("name", v.Asset.Name).
		Optional("platform", v.Asset.Platform).
		Optional("category", v.Asset.Category).
		Append("amount", v.Value.Amount()).
		Optional("currency", v.Value.Currency())
	return writeLine(w, &obj)
}

// EncodeFlow appends one flow record line.
func EncodeFlow(w io.Writer, on Date, f CashFlow) error {
	var obj jsonObjectWriter
	obj.Append("record", RecordFlow).
		Append("date", on).
		Append("amount", f.Amount.Amount()).
		Optional("currency", f.Amount.Currency()).
		Append("description", f.Description)
	return writeLine(w, &obj)
}

// EncodeTarget appends one target record line.
func EncodeTarget(w io.Writer, category string, percent decimal.Decimal) error {
	var obj jsonObjectWriter
	obj.Append("record", RecordTarget).
		Append("category", category).
		Append("percent", percent)
	return writeLine(w, &obj)
}

func writeLine(w io.Writer, obj *jsonObjectWriter) error {
	data, err := obj.MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}
