package patrimoine

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file handles importing direct values from platform exports. Most
// brokerages can export the current positions as JSON; the shape varies,
// so the caller describes where to find names and values with jsonpath
// expressions instead of the importer knowing every format.

// ImportSpec describes how to read one platform's JSON export.
type ImportSpec struct {
	Platform string // platform label recorded on every imported asset
	Category string // optional category label applied to every imported asset
	Currency string // currency label for the imported amounts
	Names    string // jsonpath of the position names, e.g. $.positions[*].name
	Values   string // jsonpath of the position market values, matching Names one to one
}

// ImportValues extracts the (name, value) pairs of a platform export.
// The two jsonpath expressions must select the same number of items, in
// matching order. Returned values carry the spec's platform, category and
// currency labels; identity normalization happens later, at recording time,
// with the same rules as everywhere else.
func ImportValues(r io.Reader, spec ImportSpec) ([]AssetValue, error) {
	var document any
	if err := json.NewDecoder(r).Decode(&document); err != nil {
		return nil, fmt.Errorf("cannot parse export: %w", err)
	}

	names, err := selectAll(document, spec.Names)
	if err != nil {
		return nil, fmt.Errorf("selecting names %q: %w", spec.Names, err)
	}
	values, err := selectAll(document, spec.Values)
	if err != nil {
		return nil, fmt.Errorf("selecting values %q: %w", spec.Values, err)
	}
	if len(names) != len(values) {
		return nil, fmt.Errorf("names and values mismatch: %d names for %d values", len(names), len(values))
	}

	imported := make([]AssetValue, 0, len(names))
	for i := range names {
		name, ok := names[i].(string)
		if !ok {
			return nil, fmt.Errorf("name %d: want a string, got %T", i, names[i])
		}
		amount, err := toDecimal(values[i])
		if err != nil {
			return nil, fmt.Errorf("value for %q: %w", name, err)
		}
		imported = append(imported, AssetValue{
			Asset: Asset{Name: name, Platform: spec.Platform, Category: spec.Category},
			Value: M(amount, spec.Currency),
		})
	}
	return imported, nil
}

// selectAll evaluates a jsonpath expression and always returns a list:
// jsonpath is never clear about whether it returns a list of one answer or
// a single answer, so both are normalized here.
func selectAll(document any, path string) ([]any, error) {
	result, err := jsonpath.Get(path, document)
	if err != nil {
		return nil, err
	}
	if list, ok := result.([]any); ok {
		return list, nil
	}
	return []any{result}, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, fmt.Errorf("not a number: %q", n)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("want a number, got %T", v)
	}
}
