package atom

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

const (
	SQLDateFormat          = "2006-01-02"
	SQLDateTimeFormat      = "2006-01-02 15:04:05.999999"
	SQLDateTimeFormatWithT = "2006-01-02T15:04:05.999999"
)

var dateParseFormats = []string{
	SQLDateFormat,
	time.RFC3339Nano,
	SQLDateTimeFormat,
	SQLDateTimeFormatWithT,
}

// Calendar date.
//
// The zero value represents an absent date, use [Date.IsZero] to check.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Create Date, values out of range are normalized the same way [time.Date] does, e.g., Oct 32 becomes Nov 1.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today in loc.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return DateOf(time.Now().In(loc))
}

// Parse date using Go reference layout, any time of day in value is dropped.
func ParseDate(layout string, value string) (Date, error) {
	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Midnight of the date in loc.
func (d Date) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Midnight of the date in UTC.
func (d Date) UTC() time.Time {
	return d.In(time.UTC)
}

// Format using Go reference layout, time of day fields are formatted as midnight.
func (d Date) Format(layout string) string {
	return d.UTC().Format(layout)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.UTC().AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool {
	return d.UTC().Before(o.UTC())
}

func (d Date) After(o Date) bool {
	return d.UTC().After(o.UTC())
}

func (d Date) Equal(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

// Format as 2006-01-02
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(SQLDateFormat)
}

func (d Date) GoString() string {
	return d.String()
}

// Implements gorm's GormDataTypeInterface.
func (Date) GormDataType() string {
	return "date"
}

// Implements driver.Valuer in database/sql.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Implements sql.Scanner in database/sql.
func (d *Date) Scan(value interface{}) error {
	if value == nil {
		*d = Date{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = DateOf(v)
	case *time.Time:
		if v == nil {
			*d = Date{}
			return nil
		}
		*d = DateOf(*v)
	case []byte:
		return d.scanStr(string(v))
	case string:
		return d.scanStr(v)
	case *string:
		if v == nil {
			*d = Date{}
			return nil
		}
		return d.scanStr(*v)
	default:
		return fmt.Errorf("invalid field type '%v' for Date, unable to convert, %#v", reflect.TypeOf(value), v)
	}
	return nil
}

func (d *Date) scanStr(s string) error {
	if s == "" {
		*d = Date{}
		return nil
	}
	t, err := FuzzParseTime(dateParseFormats, s)
	if err != nil {
		return err
	}
	*d = DateOf(t)
	return nil
}

// Implements encoding/json Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.String())), nil
}

// Implements encoding/json Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	if uq, err := strconv.Unquote(s); err == nil {
		s = uq
	}
	if err := d.scanStr(s); err != nil {
		return fmt.Errorf("failed to UnmarshalJSON, %w", err)
	}
	return nil
}

// Try each format in order, value is parsed in UTC.
func FuzzParseTime(formats []string, value string) (time.Time, error) {
	if len(formats) < 1 {
		return time.Time{}, errors.New("formats is empty")
	}
	for _, f := range formats {
		t, err := time.ParseInLocation(f, value, time.UTC)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date '%s'", value)
}
