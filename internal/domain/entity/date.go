package entity

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout formato de las columnas DATE (operation_date, payment_date).
const DateLayout = "2006-01-02"

// Date fecha de calendario sin hora. Se serializa como "2006-01-02" y acepta
// también timestamps RFC 3339 (la fila puede llegar desde row_to_json o desde el cliente).
type Date struct {
	time.Time
}

// NewDate trunca t al día (en su propia zona).
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate interpreta "2006-01-02" o RFC 3339.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return NewDate(t), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

// String devuelve la fecha en formato ISO.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON serializa como "2006-01-02" (null si vacía).
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON acepta null, "2006-01-02" o RFC 3339.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
