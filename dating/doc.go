// Package dating adds locale text accessors to date, time and datetime attributes of persisted records.
//
// A Record[T] is the accessor table of a struct type T. Registering an attribute attaches a getter
// that renders the stored value as text using a locale format, and a setter that parses such text
// back into the attribute:
//
//	people := dating.MustNewRecord[Person]()
//	people.MustLocaleDate([]string{"born_on"})                          // born_on_as_text
//	people.MustLocaleDateTime([]string{"last_seen_at"}, dating.WithFormat("long")) // last_seen_at_as_long
//
//	err := people.Set(&p, "born_on_as_text=", "12/30/2000")
//	text, err := people.Get(&p, "born_on_as_text")
//
// Time and datetime conversions use the current zone (see package zone), date conversions never do.
// Formats are looked up in the catalog (see package catalog) on every conversion.
package dating
