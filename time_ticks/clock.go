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

package timeticks

import (
	"fmt"
	"math"
	"time"
)

// Millis ticks every Step milliseconds, aligned within each second.  Step
// may be fractional, such as 2.5.
type Millis struct {
	Step float64
}

func (m Millis) distance() {}

// Magnitude returns MagnitudeMillis.
func (m Millis) Magnitude() Magnitude { return MagnitudeMillis }

// Span returns the step.
func (m Millis) Span() time.Duration { return time.Duration(m.Step * float64(time.Millisecond)) }

func (m Millis) String() string { return fmt.Sprintf("Millis(%v)", m.Step) }

// FirstTick returns the latest multiple of Step within t's second not after
// t.  Steps longer than a second align to the epoch instead.
func (m Millis) FirstTick(t time.Time) (time.Time, bool) {
	var ret time.Time
	if m.Step > millisPerSecond {
		ret = ToTime(math.Floor(ToMillis(t)/m.Step)*m.Step, t.Location())
	} else {
		msOfSecond := float64(t.Nanosecond()) / 1e6
		aligned := math.Floor(msOfSecond/m.Step) * m.Step
		ret = startOfSecond(t).Add(time.Duration(aligned * float64(time.Millisecond)))
	}
	return ret, supported(ret)
}

// NextTick returns t plus one step.
func (m Millis) NextTick(t time.Time) time.Time {
	return t.Add(m.Span())
}

// FormatAsOffset returns t's date and time to the millisecond.
func (m Millis) FormatAsOffset(t time.Time, l Locale) string {
	return l.format(t, func(f labelFormats) string { return f.second }) +
		fmt.Sprintf("%s%03d", l.formats().millisSeparator, t.Nanosecond()/1e6)
}

// EstimatedIndex returns the number of steps since the epoch, wrapped to the
// int32 range.
func (m Millis) EstimatedIndex(t time.Time) int {
	return int(floorMod(int64(math.Floor(ToMillis(t)/m.Step)), math.MaxInt32))
}

// SmallestPossibleTickDistance returns Millis{1}.
func (m Millis) SmallestPossibleTickDistance() Distance { return Millis{Step: 1} }

// Seconds ticks every N seconds, aligned to multiples of N within the
// minute.
type Seconds struct {
	N int
}

func (s Seconds) distance() {}

// Magnitude returns MagnitudeSeconds.
func (s Seconds) Magnitude() Magnitude { return MagnitudeSeconds }

// Span returns N seconds.
func (s Seconds) Span() time.Duration { return time.Duration(s.N) * time.Second }

func (s Seconds) String() string { return fmt.Sprintf("Seconds(%d)", s.N) }

// FirstTick returns the latest multiple of N seconds within the minute not
// after t.
func (s Seconds) FirstTick(t time.Time) (time.Time, bool) {
	ret := startOfSecond(t).Add(-time.Duration(t.Second()%s.N) * time.Second)
	return ret, supported(ret)
}

// NextTick returns t plus N seconds.
func (s Seconds) NextTick(t time.Time) time.Time {
	return t.Add(s.Span())
}

// FormatAsOffset returns t's date and time to the second.
func (s Seconds) FormatAsOffset(t time.Time, l Locale) string {
	return l.format(t, func(f labelFormats) string { return f.second })
}

// EstimatedIndex returns the number of seconds since the epoch, wrapped to
// the int32 range, divided by N.
func (s Seconds) EstimatedIndex(t time.Time) int {
	secs := floorMod(floorDiv(t.UnixMilli(), millisPerSecond), math.MaxInt32)
	return int(secs / int64(s.N))
}

// SmallestPossibleTickDistance returns Millis{1}.
func (s Seconds) SmallestPossibleTickDistance() Distance { return Millis{Step: 1} }

// Minutes ticks every N minutes, aligned to multiples of N within the hour.
type Minutes struct {
	N int
}

func (m Minutes) distance() {}

// Magnitude returns MagnitudeMinutes.
func (m Minutes) Magnitude() Magnitude { return MagnitudeMinutes }

// Span returns N minutes.
func (m Minutes) Span() time.Duration { return time.Duration(m.N) * time.Minute }

func (m Minutes) String() string { return fmt.Sprintf("Minutes(%d)", m.N) }

// FirstTick returns the latest multiple of N minutes within the hour not
// after t.
func (m Minutes) FirstTick(t time.Time) (time.Time, bool) {
	ret := startOfSecond(t).Add(
		-time.Duration(t.Minute()%m.N)*time.Minute - time.Duration(t.Second())*time.Second)
	return ret, supported(ret)
}

// NextTick returns t plus N minutes.
func (m Minutes) NextTick(t time.Time) time.Time {
	return t.Add(m.Span())
}

// FormatAsOffset returns t's date and time to the minute.
func (m Minutes) FormatAsOffset(t time.Time, l Locale) string {
	return l.format(t, func(f labelFormats) string { return f.minute })
}

// EstimatedIndex returns the number of minutes since the epoch divided by N.
func (m Minutes) EstimatedIndex(t time.Time) int {
	return int(floorDiv(t.UnixMilli(), millisPerMinute) / int64(m.N))
}

// SmallestPossibleTickDistance returns Millis{1}.
func (m Minutes) SmallestPossibleTickDistance() Distance { return Millis{Step: 1} }

// Hours ticks every N hours, aligned to multiples of N of the local hour of
// day.
type Hours struct {
	N int
}

func (h Hours) distance() {}

// Magnitude returns MagnitudeHours.
func (h Hours) Magnitude() Magnitude { return MagnitudeHours }

// Span returns N hours.
func (h Hours) Span() time.Duration { return time.Duration(h.N) * time.Hour }

func (h Hours) String() string { return fmt.Sprintf("Hours(%d)", h.N) }

// FirstTick returns the latest local hour of day that is a multiple of N and
// not after t.
func (h Hours) FirstTick(t time.Time) (time.Time, bool) {
	y, mo, d := t.Date()
	aligned := time.Date(y, mo, d, (t.Hour()/h.N)*h.N, 0, 0, 0, t.Location())
	ret := notAfter(aligned, t, time.Duration(t.Minute())*time.Minute+
		time.Duration(t.Second())*time.Second+time.Duration(t.Nanosecond()))
	return ret, supported(ret)
}

// NextTick returns the local wall-clock time N hours after t, or t plus N
// hours where that wall-clock time does not lie after t.  When clocks fall
// back, an aligned hour that repeats is ticked both times.
func (h Hours) NextTick(t time.Time) time.Time {
	y, mo, d := t.Date()
	next := time.Date(y, mo, d, t.Hour()+h.N, 0, 0, 0, t.Location())
	elapsed := t.Add(h.Span())
	if !next.After(t) {
		return elapsed
	}
	if elapsed.Before(next) && elapsed.Hour()%h.N == 0 && elapsed.Minute() == 0 && elapsed.Second() == 0 {
		return elapsed
	}
	return next
}

// FormatAsOffset returns t's date and time to the minute.
func (h Hours) FormatAsOffset(t time.Time, l Locale) string {
	return l.format(t, func(f labelFormats) string { return f.minute })
}

// EstimatedIndex returns the number of hours since the epoch divided by N.
func (h Hours) EstimatedIndex(t time.Time) int {
	return int(floorDiv(t.UnixMilli(), millisPerHour) / int64(h.N))
}

// SmallestPossibleTickDistance returns Millis{1}.
func (h Hours) SmallestPossibleTickDistance() Distance { return Millis{Step: 1} }
