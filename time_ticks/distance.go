/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package timeticks computes calendar-aligned ticks for time axes.  A
// Distance describes one tick granularity (milliseconds through years); the
// Calculator selects a Distance for a requested minimum spacing and walks it
// across a time range in a given timezone.
package timeticks

import (
	"math"
	"time"
)

const (
	// MinSupportedMillis is 0001-01-01T00:00:00Z in epoch milliseconds.
	MinSupportedMillis = -62135596800000
	// MaxSupportedMillis is 9999-12-31T23:59:59.999Z in epoch milliseconds.
	MaxSupportedMillis = 253402300799999
)

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
	day             = 24 * time.Hour
)

// Magnitude orders the tick granularities from finest to coarsest.
type Magnitude int

const (
	MagnitudeMillis Magnitude = iota
	MagnitudeSeconds
	MagnitudeMinutes
	MagnitudeHours
	MagnitudeDays
	MagnitudeMonths
	MagnitudeYears
)

var magnitudeNames = [...]string{"millis", "seconds", "minutes", "hours", "days", "months", "years"}

func (m Magnitude) String() string {
	if m < 0 || int(m) >= len(magnitudeNames) {
		return "unknown"
	}
	return magnitudeNames[m]
}

// Distance is a calendar tick granularity.  All instants passed to or
// returned from a Distance carry the location whose wall clock the ticks
// align to.  Distance is implemented only by the types in this package.
type Distance interface {
	// Magnitude returns the granularity of the receiver.
	Magnitude() Magnitude
	// Span returns the nominal length of one step, used for ordering.
	Span() time.Duration
	// FirstTick returns the latest aligned tick not after t.  It returns false
	// if that tick lies before year 1.
	FirstTick(t time.Time) (time.Time, bool)
	// NextTick returns the tick following the aligned tick t.
	NextTick(t time.Time) time.Time
	// FormatAsOffset returns the offset label of t.
	FormatAsOffset(t time.Time, l Locale) string
	// EstimatedIndex returns a cheap, inexact bucket for t, usable to
	// alternate styling.  It is not suitable for counting ticks.
	EstimatedIndex(t time.Time) int
	// SmallestPossibleTickDistance returns the finest granularity that may be
	// nested beneath the receiver.
	SmallestPossibleTickDistance() Distance
	String() string

	distance()
}

// Compare orders Distances by magnitude, then by nominal span.  It returns a
// negative number when a is finer than b, a positive one when a is coarser,
// and zero otherwise.
func Compare(a, b Distance) int {
	if a.Magnitude() != b.Magnitude() {
		return int(a.Magnitude()) - int(b.Magnitude())
	}
	switch as, bs := a.Span(), b.Span(); {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}

// ToTime converts epoch milliseconds to an instant in zone.  A nil zone is
// UTC.
func ToTime(ms float64, zone *time.Location) time.Time {
	if zone == nil {
		zone = time.UTC
	}
	sec := math.Floor(ms / millisPerSecond)
	nanos := math.Round((ms - sec*millisPerSecond) * 1e6)
	if nanos >= 1e9 {
		sec++
		nanos -= 1e9
	}
	return time.Unix(int64(sec), int64(nanos)).In(zone)
}

// ToMillis converts an instant to epoch milliseconds.
func ToMillis(t time.Time) float64 {
	return float64(t.Unix()*millisPerSecond) + float64(t.Nanosecond())/1e6
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// monthOfEpoch returns the number of months between January 1970 and t's
// month.
func monthOfEpoch(t time.Time) int64 {
	return int64(t.Year()-1970)*12 + int64(t.Month()-1)
}

// startOfSecond truncates t to its second.  Zone offsets are whole seconds,
// so this is the same in every location.
func startOfSecond(t time.Time) time.Time {
	return t.Add(-time.Duration(t.Nanosecond()))
}

// midnight returns the first instant of the local date y-m-d in loc,
// normalizing the date as time.Date does.  Where a zone transition skips
// midnight, that is the instant of the transition.
func midnight(y int, m time.Month, d int, loc *time.Location) time.Time {
	wy, wm, wd := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Date()
	ret := time.Date(wy, wm, wd, 0, 0, 0, 0, loc)
	if ry, rm, rd := ret.Date(); ry != wy || rm != wm || rd != wd {
		// Resolved to the previous day, before the transition.
		if _, end := ret.ZoneBounds(); !end.IsZero() {
			return end
		}
	} else if ret.Hour() != 0 || ret.Minute() != 0 || ret.Second() != 0 {
		// Resolved past the transition.
		if start, _ := ret.ZoneBounds(); !start.IsZero() {
			return start
		}
	}
	return ret
}

// supported reports whether t lies in year 1 or later in its location.
func supported(t time.Time) bool {
	return t.Year() >= 1
}

// notAfter returns aligned if it is not after t, and otherwise the result of
// subtracting fallback from t.  It covers wall-clock times a DST transition
// skips.
func notAfter(aligned, t time.Time, fallback time.Duration) time.Time {
	if aligned.After(t) {
		return t.Add(-fallback)
	}
	return aligned
}
