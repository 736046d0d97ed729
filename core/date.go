package core

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Date is a yyyy-mm-dd date that also accepts timestamps on input:
// epoch milliseconds, or objects like {"seconds": n} / {"_seconds": n}.
// It always marshals back to a yyyy-mm-dd string (empty when unset).
type Date string

type timestamp struct {
	Seconds     *int64 `json:"seconds"`
	LegacySecs  *int64 `json:"_seconds"`
	Nanoseconds int64  `json:"nanoseconds"`
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*d = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = Date(normalizeDateString(s))
		return nil
	case '{':
		var ts timestamp
		if err := json.Unmarshal(b, &ts); err != nil {
			return errors.Wrap(err, "decoding timestamp")
		}
		secs := ts.Seconds
		if secs == nil {
			secs = ts.LegacySecs
		}
		if secs == nil {
			return errors.Errorf("unsupported date object %s", b)
		}
		*d = Date(time.Unix(*secs, ts.Nanoseconds).UTC().Format(DateLayout))
		return nil
	default:
		var ms float64
		if err := json.Unmarshal(b, &ms); err != nil {
			return errors.Wrapf(err, "unsupported date %s", b)
		}
		*d = Date(time.UnixMilli(int64(ms)).UTC().Format(DateLayout))
		return nil
	}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

func (d Date) String() string { return string(d) }

// normalizeDateString keeps yyyy-mm-dd strings as is and reduces RFC 3339 timestamps to their date.
func normalizeDateString(s string) string {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC().Format(DateLayout)
	}
	return s
}
