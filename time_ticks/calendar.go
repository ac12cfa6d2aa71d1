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
	"time"
)

// Days ticks at local midnight, or at the first instant of a day whose
// midnight a zone transition skips, on a fixed grid of days of the month.  Days{1}
// ticks every day.  Coarser values tick on the grid for N:
//
//	N <= 5:  1, 5, 10, 15, 20, 25
//	N <= 10: 1, 10, 20
//	else:    1, 15
//
// each followed by the 1st of the next month, so ticks stay on the same days
// whatever the length of the month.
type Days struct {
	N int
}

var (
	grid5  = []int{1, 5, 10, 15, 20, 25}
	grid10 = []int{1, 10, 20}
	grid15 = []int{1, 15}
)

// grid returns the days of the month the receiver ticks on, or nil if it
// ticks every day.
func (d Days) grid() []int {
	switch {
	case d.N <= 1:
		return nil
	case d.N <= 5:
		return grid5
	case d.N <= 10:
		return grid10
	default:
		return grid15
	}
}

func (d Days) distance() {}

// Magnitude returns MagnitudeDays.
func (d Days) Magnitude() Magnitude { return MagnitudeDays }

// Span returns the longest gap between two ticks on the receiver's grid.
func (d Days) Span() time.Duration {
	grid := d.grid()
	if grid == nil {
		return day
	}
	// From the last grid day of a 31-day month to the 1st of the next.
	return time.Duration(32-grid[len(grid)-1]) * day
}

func (d Days) String() string { return fmt.Sprintf("Days(%d)", d.N) }

// FirstTick returns local midnight of the latest grid day not after t.
func (d Days) FirstTick(t time.Time) (time.Time, bool) {
	y, mo, dom := t.Date()
	aligned := dom
	for _, g := range d.grid() {
		if g <= dom {
			aligned = g
		}
	}
	ret := midnight(y, mo, aligned, t.Location())
	return ret, supported(ret)
}

// NextTick returns local midnight of the grid day following t, or of the 1st
// of the following month.
func (d Days) NextTick(t time.Time) time.Time {
	y, mo, dom := t.Date()
	grid := d.grid()
	if grid == nil {
		return midnight(y, mo, dom+1, t.Location())
	}
	for _, g := range grid {
		if g > dom {
			return midnight(y, mo, g, t.Location())
		}
	}
	return midnight(y, mo+1, 1, t.Location())
}

// FormatAsOffset returns t's date.
func (d Days) FormatAsOffset(t time.Time, l Locale) string {
	return l.format(t, func(f labelFormats) string { return f.date })
}

// EstimatedIndex buckets t by month and by its position on the grid.
func (d Days) EstimatedIndex(t time.Time) int {
	var ticksPerMonth, typicalDays int64
	switch {
	case d.N <= 1:
		ticksPerMonth, typicalDays = 31, 1
	case d.N <= 5:
		ticksPerMonth, typicalDays = 6, 5
	case d.N <= 10:
		ticksPerMonth, typicalDays = 3, 10
	default:
		ticksPerMonth, typicalDays = 2, 15
	}
	return int(monthOfEpoch(t)*ticksPerMonth + int64(t.Day())/typicalDays)
}

// SmallestPossibleTickDistance returns Minutes{1}.
func (d Days) SmallestPossibleTickDistance() Distance { return Minutes{N: 1} }

// Months ticks at local midnight of the 1st, every N months starting in
// January.
type Months struct {
	N int
}

func (m Months) distance() {}

// Magnitude returns MagnitudeMonths.
func (m Months) Magnitude() Magnitude { return MagnitudeMonths }

// Span returns N times 30 days.
func (m Months) Span() time.Duration { return time.Duration(m.N) * 30 * day }

func (m Months) String() string { return fmt.Sprintf("Months(%d)", m.N) }

// FirstTick returns the 1st of the latest month not after t whose zero-based
// index in the year is a multiple of N.
func (m Months) FirstTick(t time.Time) (time.Time, bool) {
	month := (int(t.Month()-1)/m.N)*m.N + 1
	ret := midnight(t.Year(), time.Month(month), 1, t.Location())
	return ret, supported(ret)
}

// NextTick returns the 1st of the month N months after t.
func (m Months) NextTick(t time.Time) time.Time {
	return midnight(t.Year(), t.Month()+time.Month(m.N), 1, t.Location())
}

// FormatAsOffset returns t's month and year.
func (m Months) FormatAsOffset(t time.Time, l Locale) string {
	return l.format(t, func(f labelFormats) string { return f.month })
}

// EstimatedIndex returns the number of months since January 1970 divided by
// N.
func (m Months) EstimatedIndex(t time.Time) int {
	return int(floorDiv(monthOfEpoch(t), int64(m.N)))
}

// SmallestPossibleTickDistance returns Days{1}.
func (m Months) SmallestPossibleTickDistance() Distance { return Days{N: 1} }

// Years ticks at local midnight of January 1st of every year that is a
// multiple of N.
type Years struct {
	N int
}

func (y Years) distance() {}

// Magnitude returns MagnitudeYears.
func (y Years) Magnitude() Magnitude { return MagnitudeYears }

// Span returns N times 365 days.
func (y Years) Span() time.Duration { return time.Duration(y.N) * 365 * day }

func (y Years) String() string { return fmt.Sprintf("Years(%d)", y.N) }

func (y Years) alignedYear(t time.Time) int {
	return int(floorDiv(int64(t.Year()), int64(y.N))) * y.N
}

// FirstTick returns January 1st of the latest multiple of N not after t.  It
// returns false if that year precedes year 1.
func (y Years) FirstTick(t time.Time) (time.Time, bool) {
	year := y.alignedYear(t)
	if year < 1 {
		return time.Time{}, false
	}
	ret := midnight(year, time.January, 1, t.Location())
	return ret, supported(ret)
}

// NextTick returns January 1st, N years after t.
func (y Years) NextTick(t time.Time) time.Time {
	return midnight(t.Year()+y.N, time.January, 1, t.Location())
}

// FormatAsOffset returns the multiple of N years t falls in.
func (y Years) FormatAsOffset(t time.Time, l Locale) string {
	t = l.in(t)
	aligned := time.Date(y.alignedYear(t), time.January, 1, 0, 0, 0, 0, t.Location())
	return l.format(aligned, func(f labelFormats) string { return f.year })
}

// EstimatedIndex returns the year divided by N.
func (y Years) EstimatedIndex(t time.Time) int {
	return y.alignedYear(t) / y.N
}

// SmallestPossibleTickDistance returns Days{1}.
func (y Years) SmallestPossibleTickDistance() Distance { return Days{N: 1} }
