package store

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Time scans a timestamp from aggregate rows. Postgres hands back time.Time,
// sqlite hands back text once the column type is lost in an expression.
type Time struct {
	time.Time
}

var textLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

func (t *Time) Scan(v any) error {
	switch x := v.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = x.UTC()
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	default:
		return fmt.Errorf("store.Time: cannot scan %T", v)
	}
}

func (t *Time) parse(s string) error {
	s = strings.TrimSpace(s)
	for _, layout := range textLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("store.Time: unrecognized timestamp %q", s)
}

func (t Time) Value() (driver.Value, error) {
	return t.Time, nil
}

// GormDataType lets gorm map the field to a column when scanning rows.
func (Time) GormDataType() string {
	return "time"
}
