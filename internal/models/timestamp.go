package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// timestampLayouts are tried in order for string timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// Timestamp is a point in time sent by the finance API. It decodes RFC 3339,
// date-only and space-separated strings as well as epoch milliseconds. An
// empty or unrecognised string decodes to the zero time so one odd record
// never fails a whole payload.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("decode timestamp: %w", err)
		}
		t.Time = ParseTimestamp(s)
		return nil
	}

	var millis json.Number
	if err := json.Unmarshal(trimmed, &millis); err != nil {
		return fmt.Errorf("decode timestamp: %w", err)
	}
	ms, err := millis.Int64()
	if err != nil {
		f, ferr := millis.Float64()
		if ferr != nil {
			return fmt.Errorf("decode timestamp %s: %w", millis, ferr)
		}
		ms = int64(f)
	}
	t.Time = time.UnixMilli(ms).UTC()
	return nil
}

// ParseTimestamp returns the zero time when s matches no known layout.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
