package patrimoine

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a specific field
// order, so encoded record files stay diff-friendly. Its zero value is
// ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a key-value pair to the object.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	data, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal field %q: %w", key, err)
		return w
	}
	fmt.Fprintf(&w.Buffer, "%q:%s,", key, data)
	return w
}

// Optional adds a key-value pair only when the string value is non-empty.
func (w *jsonObjectWriter) Optional(key, value string) *jsonObjectWriter {
	if value == "" {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON assembles the accumulated fields into one JSON object.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	inner := bytes.TrimSuffix(w.Bytes(), []byte(","))
	var out bytes.Buffer
	out.WriteByte('{')
	out.Write(inner)
	out.WriteByte('}')
	return out.Bytes(), nil
}
