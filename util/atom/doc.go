// Package for calendar date values.
//
// The core type in this package is [Date], a calendar date without time of day and without zone.
//
// [Date] implements [sql.Scanner] and [driver.Valuer] for database values, [json.Marshaler] and [json.Unmarshaler] for json processing,
// and gorm's data type interface so it can be used as a column type directly, e.g.,
//
//	type Person struct {
//		Id     int
//		BornOn *atom.Date
//	}
//
// [Date] can be scanned from [time.Time] values and from strings in following formats:
//   - `2006-01-02`
//   - [time.RFC3339Nano]
//   - `2006-01-02 15:04:05.999999`
//   - `2006-01-02T15:04:05.999999`
package atom
