package catalog

import (
	"strings"

	"github.com/curtisnewbie/dating/util/errs"
)

// Category of a value, decides which catalog section a pattern is looked up in and which zone rules apply.
type Category int

const (
	Date Category = iota + 1
	Time
	DateTime
)

var categoryNames = map[Category]string{
	Date:     "date",
	Time:     "time",
	DateTime: "datetime",
}

// Name of the catalog section, e.g., "date".
func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "unknown"
}

func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Whether conversions of this category depend on the current zone.
func (c Category) ZoneAware() bool {
	return c == Time || c == DateTime
}

func Categories() []Category {
	return []Category{Date, Time, DateTime}
}

// Parse category name, case-insensitive.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, n := range categoryNames {
		if n == s {
			return c, nil
		}
	}
	return 0, errs.ErrIllegalArgument.WithInternalMsg("unknown category '%v', expected one of date, time, datetime", s)
}
