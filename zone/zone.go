package zone

import (
	"sync/atomic"
	"time"

	"github.com/curtisnewbie/dating/util/dlog"
	"github.com/curtisnewbie/dating/util/errs"
)

var (
	ErrUnknownZone = errs.NewErrfCode(errs.ErrCodeUnknownZone, "Unknown Time Zone")
)

var current atomic.Pointer[time.Location]

func init() {
	current.Store(time.UTC)
}

// Naive local date and time of day, no zone attached.
type WallClock struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// Wall clock read from t as is, t's location is not changed.
func WallClockOf(t time.Time) WallClock {
	y, m, d := t.Date()
	return WallClock{
		Year:       y,
		Month:      m,
		Day:        d,
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}
}

// Wall clock read as if in UTC, used for Go time parsed without zone.
func (w WallClock) UTC() time.Time {
	return time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second, w.Nanosecond, time.UTC)
}

// Replace date part.
func (w WallClock) WithDate(year int, month time.Month, day int) WallClock {
	w.Year = year
	w.Month = month
	w.Day = day
	return w
}

// Convert the wall clock in loc to an instant, the returned time is in UTC.
//
// Wall clocks that fall into a DST gap or overlap are resolved the way [time.Date] does.
func ToInstant(w WallClock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second, w.Nanosecond, loc).UTC()
}

// Convert the instant to the wall clock in loc.
func ToWallClock(t time.Time, loc *time.Location) WallClock {
	if loc == nil {
		loc = time.UTC
	}
	return WallClockOf(t.In(loc))
}

// Get current zone.
func Current() *time.Location {
	return current.Load()
}

// Set current zone, nil resets to UTC.
func SetCurrent(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	prev := current.Swap(loc)
	if prev != loc {
		dlog.Debugf("Current zone changed from '%v' to '%v'", prev, loc)
	}
}

// Set current zone by name, see [Load] for accepted names.
func SetCurrentName(name string) error {
	loc, err := Load(name)
	if err != nil {
		return err
	}
	SetCurrent(loc)
	return nil
}

// Switch current zone and return a func that restores the previous one.
func Use(name string) (restore func(), err error) {
	loc, err := Load(name)
	if err != nil {
		return func() {}, err
	}
	prev := Current()
	SetCurrent(loc)
	return func() { SetCurrent(prev) }, nil
}

// Source of the zone used for a conversion, consulted on every call.
type Source interface {
	Location() *time.Location
}

type ambientSource struct{}

func (ambientSource) Location() *time.Location {
	return Current()
}

func (ambientSource) String() string {
	return "ambient"
}

// Source that reads the process-wide current zone.
func Ambient() Source {
	return ambientSource{}
}

type fixedSource struct {
	loc *time.Location
}

func (f fixedSource) Location() *time.Location {
	return f.loc
}

func (f fixedSource) String() string {
	return f.loc.String()
}

// Source that always returns loc.
func Fixed(loc *time.Location) Source {
	if loc == nil {
		loc = time.UTC
	}
	return fixedSource{loc: loc}
}
