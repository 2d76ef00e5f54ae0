// Package zone converts between naive local wall clocks and absolute instants, and holds the
// process-wide current zone used for time and datetime conversions.
//
// The current zone is ambient state with an explicit lifecycle:
//
//	zone.SetCurrentName("Central Time (US & Canada)")
//	loc := zone.Current()
//
//	restore, err := zone.Use("Mountain Time (US & Canada)")
//	defer restore()
//
// Callers that need consistent output across goroutines must not change the current zone
// while conversions are running. Code that wants to opt out of the ambient zone can pass
// [Fixed] wherever a [Source] is accepted.
package zone
