package zone

import (
	"sort"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/curtisnewbie/dating/util/hash"
)

// Display names commonly used by applications, mapped to IANA names.
var aliases = map[string]string{
	"International Date Line West": "Etc/GMT+12",
	"Midway Island":                "Pacific/Midway",
	"Hawaii":                       "Pacific/Honolulu",
	"Alaska":                       "America/Juneau",
	"Pacific Time (US & Canada)":   "America/Los_Angeles",
	"Arizona":                      "America/Phoenix",
	"Mountain Time (US & Canada)":  "America/Denver",
	"Central Time (US & Canada)":   "America/Chicago",
	"Mexico City":                  "America/Mexico_City",
	"Saskatchewan":                 "America/Regina",
	"Eastern Time (US & Canada)":   "America/New_York",
	"Indiana (East)":               "America/Indiana/Indianapolis",
	"Atlantic Time (Canada)":       "America/Halifax",
	"Newfoundland":                 "America/St_Johns",
	"Brasilia":                     "America/Sao_Paulo",
	"Buenos Aires":                 "America/Argentina/Buenos_Aires",
	"UTC":                          "UTC",
	"London":                       "Europe/London",
	"Dublin":                       "Europe/Dublin",
	"Lisbon":                       "Europe/Lisbon",
	"Berlin":                       "Europe/Berlin",
	"Paris":                        "Europe/Paris",
	"Madrid":                       "Europe/Madrid",
	"Rome":                         "Europe/Rome",
	"Amsterdam":                    "Europe/Amsterdam",
	"Stockholm":                    "Europe/Stockholm",
	"Athens":                       "Europe/Athens",
	"Helsinki":                     "Europe/Helsinki",
	"Istanbul":                     "Europe/Istanbul",
	"Moscow":                       "Europe/Moscow",
	"Cairo":                        "Africa/Cairo",
	"Nairobi":                      "Africa/Nairobi",
	"Abu Dhabi":                    "Asia/Muscat",
	"Karachi":                      "Asia/Karachi",
	"Mumbai":                       "Asia/Kolkata",
	"New Delhi":                    "Asia/Kolkata",
	"Kathmandu":                    "Asia/Kathmandu",
	"Bangkok":                      "Asia/Bangkok",
	"Jakarta":                      "Asia/Jakarta",
	"Beijing":                      "Asia/Shanghai",
	"Hong Kong":                    "Asia/Hong_Kong",
	"Singapore":                    "Asia/Singapore",
	"Taipei":                       "Asia/Taipei",
	"Seoul":                        "Asia/Seoul",
	"Tokyo":                        "Asia/Tokyo",
	"Adelaide":                     "Australia/Adelaide",
	"Brisbane":                     "Australia/Brisbane",
	"Sydney":                       "Australia/Sydney",
	"Auckland":                     "Pacific/Auckland",
}

// lower-cased alias -> IANA name
var foldedAliases = func() *hash.RWMap[string, string] {
	m := hash.NewRWMap[string, string]()
	for k, v := range aliases {
		m.Put(strings.ToLower(k), v)
	}
	return m
}()

// Load zone by name.
//
// Accepts display names such as "Central Time (US & Canada)" (case-insensitive), "Local",
// and IANA names such as "America/Chicago". The tz database is embedded, so IANA names
// resolve without a system zoneinfo.
func Load(name string) (*time.Location, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, ErrUnknownZone.WithInternalMsg("zone name is empty")
	}
	if strings.EqualFold(n, "Local") {
		return time.Local, nil
	}
	if iana, ok := foldedAliases.Get(strings.ToLower(n)); ok {
		n = iana
	}
	loc, err := time.LoadLocation(n)
	if err != nil {
		return nil, ErrUnknownZone.Wrapf(err, "zone: '%v'", name)
	}
	return loc, nil
}

// Resolve display name to IANA name, names that are not display names are returned as is.
func IANAName(name string) string {
	if iana, ok := foldedAliases.Get(strings.ToLower(strings.TrimSpace(name))); ok {
		return iana
	}
	return name
}

// Sorted display names accepted by [Load].
func Names() []string {
	names := make([]string, 0, len(aliases))
	for k := range aliases {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
