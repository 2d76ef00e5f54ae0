package dating

import (
	"strings"
	"time"
)

var (
	// Zero padded month, day and 12-hour clock fields to their unpadded counterparts.
	//
	// Longer tokens sharing the same digits are listed first and map to themselves, a Replacer
	// prefers the earliest matching argument at each position.
	unpadder = strings.NewReplacer(
		"2006", "2006",
		"002", "002",
		"-07", "-07",
		"Z07", "Z07",
		"01", "1",
		"02", "2",
		"03", "3",
	)

	dateProbeA = time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	dateProbeB = time.Date(2009, 11, 25, 4, 5, 6, 0, time.UTC)
)

// Same layout but accepting values without zero padding, e.g., "3:04pm" for "03:04pm".
func relaxLayout(layout string) string {
	return unpadder.Replace(layout)
}

// Whether layout renders any date component.
func layoutHasDate(layout string) bool {
	return dateProbeA.Format(layout) != dateProbeB.Format(layout)
}

// Parse value as a naive wall clock read in UTC.
//
// The layout is tried as is first, then relaxed on zero padding, then with the meridiem
// case folded to the layout's. The error of the first attempt is returned when all of them fail.
func parseWallClock(layout string, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err == nil {
		return t, nil
	}

	relaxed := relaxLayout(layout)
	values := []string{value}
	if folded, ok := foldMeridiem(layout, value); ok {
		values = append(values, folded)
	}
	for _, l := range []string{layout, relaxed} {
		for i, v := range values {
			if l == layout && i == 0 {
				continue
			}
			if pt, perr := time.ParseInLocation(l, v, time.UTC); perr == nil {
				return pt, nil
			}
		}
	}
	return time.Time{}, err
}

func foldMeridiem(layout string, value string) (string, bool) {
	var folded string
	switch {
	case strings.Contains(layout, "pm"):
		folded = strings.ToLower(value)
	case strings.Contains(layout, "PM"):
		folded = strings.ToUpper(value)
	default:
		return value, false
	}
	return folded, folded != value
}
