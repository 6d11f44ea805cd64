package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SeriesPoint is one (label, value) pair handed to a chart or a balance card.
type SeriesPoint struct {
	Label string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// AmountSeries is a label -> amount mapping that keeps the key order of the
// JSON object it was decoded from.
type AmountSeries []SeriesPoint

// UnmarshalJSON decodes a JSON object of numbers, preserving key order.
func (s *AmountSeries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode amount series: %w", err)
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode amount series: expected object, got %v", tok)
	}

	out := AmountSeries{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode amount series key: %w", err)
		}
		label, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decode amount series: unexpected key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode amount series value for %q: %w", label, err)
		}
		var value decimal.Decimal
		if err := value.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("decode amount series value for %q: %w", label, err)
		}
		out = append(out, SeriesPoint{Label: label, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode amount series: %w", err)
	}

	*s = out
	return nil
}

// MarshalJSON encodes the series back into an object in the same order.
func (s AmountSeries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(p.Value.String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value for label and whether it was present.
func (s AmountSeries) Get(label string) (decimal.Decimal, bool) {
	for _, p := range s {
		if p.Label == label {
			return p.Value, true
		}
	}
	return decimal.Zero, false
}

// Points returns a copy of the ordered pairs.
func (s AmountSeries) Points() []SeriesPoint {
	out := make([]SeriesPoint, len(s))
	copy(out, s)
	return out
}

// Label accepts either a JSON string or a JSON number and keeps its text.
// The report API is loose about the type of day keys.
type Label string

func (l *Label) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Label(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode label: %w", err)
	}
	*l = Label(n.String())
	return nil
}

// DailyPoint is one point of the daily expense line.
type DailyPoint struct {
	Day    Label           `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}
