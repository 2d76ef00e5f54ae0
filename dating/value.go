package dating

import (
	"database/sql"
	"time"

	"github.com/curtisnewbie/dating/util/atom"
)

// Normalize the stored value to either atom.Date or time.Time.
//
// present is false for nil, nil pointers, invalid sql.NullTime and zero values.
func normalizeValue(v any) (val any, present bool, err error) {
	switch t := v.(type) {
	case nil:
		return nil, false, nil
	case time.Time:
		return t, !t.IsZero(), nil
	case *time.Time:
		if t == nil {
			return nil, false, nil
		}
		return *t, !t.IsZero(), nil
	case sql.NullTime:
		return t.Time, t.Valid && !t.Time.IsZero(), nil
	case *sql.NullTime:
		if t == nil {
			return nil, false, nil
		}
		return t.Time, t.Valid && !t.Time.IsZero(), nil
	case atom.Date:
		return t, !t.IsZero(), nil
	case *atom.Date:
		if t == nil {
			return nil, false, nil
		}
		return *t, !t.IsZero(), nil
	}
	return nil, false, ErrUnsupportedValue.WithInternalMsg("value of type %T is not a date or time", v)
}

// Calendar date of a normalized value, time.Time keeps the date in its own location.
func asDate(v any) atom.Date {
	switch t := v.(type) {
	case atom.Date:
		return t
	case time.Time:
		return atom.DateOf(t)
	}
	return atom.Date{}
}

// Instant of a normalized value, atom.Date becomes midnight UTC.
func asInstant(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case atom.Date:
		return t.UTC()
	}
	return time.Time{}
}
