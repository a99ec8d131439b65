package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// DateOnly เก็บเฉพาะวันที่ (ไม่มีเวลา) สำหรับ due date
// JSON: "2006-01-02", SQL: date
type DateOnly struct {
	time.Time
}

func NewDateOnly(t time.Time) DateOnly {
	y, m, d := t.Date()
	return DateOnly{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly{Time: t}, nil
}

// Today วันที่ปัจจุบัน (UTC) ใช้คำนวณ overdue
func Today() DateOnly {
	return NewDateOnly(time.Now().UTC())
}

func (d DateOnly) String() string {
	return d.Format(dateOnlyLayout)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateOnlyLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	// "" ต้อง error ไม่ใช่ zero date (จะกลายเป็น 0001-01-01 แล้วถูกนับ overdue)
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDateOnly(s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	*d = parsed
	return nil
}

func (d DateOnly) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = NewDateOnly(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	case nil:
		return nil
	}
	return fmt.Errorf("cannot scan %T into DateOnly", value)
}

func (d *DateOnly) scanString(s string) error {
	// บาง driver คืน date มาเป็น string พร้อมส่วนเวลา
	if len(s) > len(dateOnlyLayout) {
		s = s[:len(dateOnlyLayout)]
	}
	parsed, err := ParseDateOnly(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (DateOnly) GormDataType() string {
	return "date"
}
