package pokemon

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayouts are tried in order when decoding a [Date].
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Date is a birth date on the wire. It accepts RFC 3339 timestamps, timestamps
// without an offset and plain calendar dates, and always holds UTC.
type Date struct {
	time.Time
}

// UnmarshalJSON decodes a JSON string or null. An empty string is the zero date.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("pokemon: date must be a string: %w", err)
	}

	if raw == "" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			d.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("pokemon: unsupported date %q", raw)
}

// MarshalJSON encodes the date as an RFC 3339 timestamp in UTC.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339))
}
