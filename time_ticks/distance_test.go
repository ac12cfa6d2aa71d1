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
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	tickerrors "github.com/ilhamster/traceviz/ticks/tick_errors"
	testutil "github.com/ilhamster/traceviz/ticks/test_util"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/text/language"
)

func TestForTicks(t *testing.T) {
	for _, test := range []struct {
		minMillis float64
		want      Distance
	}{
		{0, Millis{Step: 1}},
		{1, Millis{Step: 1}},
		{201, Millis{Step: 250}},
		{240, Millis{Step: 250}},
		{251, Millis{Step: 500}},
		{500, Millis{Step: 500}},
		{501, Seconds{N: 1}},
		{3000, Seconds{N: 5}},
		{60000, Seconds{N: 60}},
		{60001, Minutes{N: 2}},
		{30 * 60000, Minutes{N: 30}},
		{30*60000 + 1, Hours{N: 1}},
		{12 * 3600000, Hours{N: 12}},
		{12*3600000 + 1, Days{N: 1}},
		{15 * dayMillis, Days{N: 15}},
		{15*dayMillis + 1, Months{N: 1}},
		{168 * dayMillis, Months{N: 6}},
		{168*dayMillis + 1, Years{N: 1}},
		{365 * dayMillis, Years{N: 1}},
		{400 * dayMillis, Years{N: 2}},
		{4000 * dayMillis, Years{N: 20}},
	} {
		if diff := cmp.Diff(test.want, ForTicks(test.minMillis)); diff != "" {
			t.Errorf("ForTicks(%v), diff (-want +got):\n%s", test.minMillis, diff)
		}
	}
}

func TestForOffsets(t *testing.T) {
	for _, test := range []struct {
		minMillis float64
		want      Distance
	}{
		{0, Millis{Step: 1}},
		{240, Millis{Step: 1000}},
		{501, Seconds{N: 1}},
		{2001, Minutes{N: 1}},
		{121000, Hours{N: 1}},
		{3 * 3600000, Days{N: 1}},
		{3 * dayMillis, Months{N: 1}},
		{61 * dayMillis, Years{N: 1}},
		{4000 * dayMillis, Years{N: 100}},
	} {
		if diff := cmp.Diff(test.want, ForOffsets(test.minMillis)); diff != "" {
			t.Errorf("ForOffsets(%v), diff (-want +got):\n%s", test.minMillis, diff)
		}
	}
}

func TestCompare(t *testing.T) {
	want := []Distance{
		Millis{Step: 1}, Millis{Step: 250}, Seconds{N: 1}, Seconds{N: 30}, Minutes{N: 1},
		Hours{N: 12}, Days{N: 1}, Days{N: 5}, Days{N: 15}, Months{N: 1}, Months{N: 6},
		Years{N: 1}, Years{N: 5},
	}
	got := []Distance{
		Years{N: 5}, Days{N: 15}, Millis{Step: 250}, Months{N: 1}, Seconds{N: 30},
		Days{N: 1}, Hours{N: 12}, Years{N: 1}, Millis{Step: 1}, Minutes{N: 1},
		Months{N: 6}, Seconds{N: 1}, Days{N: 5},
	}
	slices.SortFunc(got, Compare)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sorted distances, diff (-want +got):\n%s", diff)
	}
	if Compare(Hours{N: 2}, Hours{N: 2}) != 0 {
		t.Errorf("Compare() of equal distances is not zero")
	}
}

func TestFormatAsOffset(t *testing.T) {
	ts := ToTime(testutil.Millis(t, "2001-09-01T00:00:00.250Z"), time.UTC)
	us := DefaultLocale()
	gb := Locale{Language: language.BritishEnglish, Location: time.UTC}
	de := Locale{Language: language.MustParse("de-CH"), Location: time.UTC}
	for _, test := range []struct {
		description string
		distance    Distance
		locale      Locale
		want        string
	}{
		{"millis", Millis{Step: 250}, us, "09/01/2001 00:00:00.250"},
		{"seconds", Seconds{N: 1}, us, "09/01/2001 00:00:00"},
		{"minutes", Minutes{N: 1}, us, "09/01/2001 00:00"},
		{"hours", Hours{N: 1}, us, "09/01/2001 00:00"},
		{"days", Days{N: 1}, us, "09/01/2001"},
		{"months", Months{N: 1}, us, "September 2001"},
		{"years", Years{N: 5}, us, "2000"},
		{"british days", Days{N: 1}, gb, "01/09/2001"},
		{"german days", Days{N: 1}, de, "01.09.2001"},
		{"german months", Months{N: 1}, de, "09.2001"},
		{"german millis", Millis{Step: 250}, de, "01.09.2001 00:00:00,250"},
		{"unknown language", Days{N: 1}, Locale{Language: language.Japanese}, "09/01/2001"},
	} {
		t.Run(test.description, func(t *testing.T) {
			if got := test.distance.FormatAsOffset(ts, test.locale); got != test.want {
				t.Errorf("FormatAsOffset() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestMonthLabelsInNewYork(t *testing.T) {
	ny := mustLoadLocation(t, "America/New_York")
	start := ToTime(1546875919123, ny)
	end := start.AddDate(0, 11, 0)
	var got []string
	for _, tick := range CalculateTicks(Months{N: 6}, start, end, false) {
		got = append(got, Months{N: 6}.FormatAsOffset(tick, Locale{Language: language.AmericanEnglish, Location: ny}))
	}
	if diff := cmp.Diff([]string{"January 2019", "July 2019"}, got); diff != "" {
		t.Errorf("Got labels %v, diff (-want +got):\n%s", got, diff)
	}
}

func TestEstimatedIndex(t *testing.T) {
	at := func(ts string) time.Time {
		return ToTime(testutil.Millis(t, ts), time.UTC)
	}
	for _, test := range []struct {
		description string
		distance    Distance
		t           time.Time
		want        int
	}{
		{"millis wrap", Millis{Step: 250}, ToTime(1593510070250, time.UTC), 2079072987},
		{"seconds", Seconds{N: 5}, ToTime(10000, time.UTC), 2},
		{"hours", Hours{N: 1}, ToTime(3600000, time.UTC), 1},
		{"hours before epoch", Hours{N: 1}, ToTime(-1, time.UTC), -1},
		{"days", Days{N: 1}, at("2001-09-01T00:00:00Z"), 380*31 + 1},
		{"five days", Days{N: 5}, at("2001-09-10T00:00:00Z"), 380*6 + 2},
		{"months", Months{N: 6}, at("2019-07-01T00:00:00Z"), 99},
		{"years", Years{N: 7}, at("2016-01-01T00:00:00Z"), 288},
	} {
		t.Run(test.description, func(t *testing.T) {
			if got := test.distance.EstimatedIndex(test.t); got != test.want {
				t.Errorf("EstimatedIndex() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestSmallestPossibleTickDistance(t *testing.T) {
	for _, test := range []struct {
		distance Distance
		want     Distance
	}{
		{Years{N: 10}, Days{N: 1}},
		{Months{N: 3}, Days{N: 1}},
		{Days{N: 5}, Minutes{N: 1}},
		{Hours{N: 6}, Millis{Step: 1}},
		{Minutes{N: 5}, Millis{Step: 1}},
		{Seconds{N: 5}, Millis{Step: 1}},
		{Millis{Step: 10}, Millis{Step: 1}},
	} {
		if diff := cmp.Diff(test.want, test.distance.SmallestPossibleTickDistance()); diff != "" {
			t.Errorf("%s.SmallestPossibleTickDistance(), diff (-want +got):\n%s", test.distance, diff)
		}
	}
}

func TestFirstTickUnsupported(t *testing.T) {
	ts := time.Date(0, time.December, 31, 12, 0, 0, 0, time.UTC)
	for _, d := range []Distance{Years{N: 1}, Months{N: 1}, Days{N: 1}, Hours{N: 1}, Seconds{N: 1}} {
		if _, ok := d.FirstTick(ts); ok {
			t.Errorf("%s.FirstTick(%s) succeeded, want no tick", d, ts)
		}
	}
	if _, ok := (Years{N: 5}).FirstTick(time.Date(3, time.June, 1, 0, 0, 0, 0, time.UTC)); ok {
		t.Errorf("Years{5}.FirstTick() in year 3 succeeded, want no tick")
	}
}

func TestOffsets(t *testing.T) {
	calc := New(DefaultOptions())
	start := testutil.Millis(t, "2019-01-07T15:45:19.123Z")
	got, err := calc.Offsets(start, start+3*dayMillis, 3*3600000, DefaultLocale())
	if err != nil {
		t.Fatalf("Offsets() yielded unexpected error %s", err)
	}
	base := 588*31 + 7
	want := []Offset{
		{Millis: testutil.Millis(t, "2019-01-07T00:00:00Z"), Label: "01/07/2019", Index: base},
		{Millis: testutil.Millis(t, "2019-01-08T00:00:00Z"), Label: "01/08/2019", Index: base + 1},
		{Millis: testutil.Millis(t, "2019-01-09T00:00:00Z"), Label: "01/09/2019", Index: base + 2},
		{Millis: testutil.Millis(t, "2019-01-10T00:00:00Z"), Label: "01/10/2019", Index: base + 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Got offsets %v, diff (-want +got):\n%s", got, diff)
	}
}

// lateDistance places its first tick after the instant it aligns.
type lateDistance struct {
	Days
}

func (ld lateDistance) FirstTick(t time.Time) (time.Time, bool) {
	return t.Add(time.Hour), true
}

// stuckDistance never advances.
type stuckDistance struct {
	Days
}

func (sd stuckDistance) NextTick(t time.Time) time.Time {
	return t
}

func TestWalkInvariants(t *testing.T) {
	start := testutil.Millis(t, "2001-09-01T12:00:00Z")
	end := start + 3*dayMillis
	for _, test := range []struct {
		description string
		distance    Distance
		wantLevel   log.Level
		wantTicks   int
	}{
		{"late first tick", lateDistance{Days{N: 1}}, log.WarnLevel, 4},
		{"non-advancing distance", stuckDistance{Days{N: 1}}, log.ErrorLevel, 1},
	} {
		t.Run(test.description, func(t *testing.T) {
			logger, hook := logtest.NewNullLogger()
			var ticks int
			err := New(Options{Logger: logger}).walk(test.distance, start, end, time.UTC, false, func(time.Time) { ticks++ })
			if err != nil {
				t.Fatalf("walk() yielded unexpected error %s", err)
			}
			if ticks != test.wantTicks {
				t.Errorf("walk() yielded %d ticks, want %d", ticks, test.wantTicks)
			}
			entry := hook.LastEntry()
			if entry == nil || entry.Level != test.wantLevel {
				t.Fatalf("Got log entry %v, want one at level %s", entry, test.wantLevel)
			}
			if entry.Data["distance"] != "Days(1)" {
				t.Errorf("Got distance field %v, want Days(1)", entry.Data["distance"])
			}

			strict := New(Options{Logger: logger, Strict: true})
			err = strict.walk(test.distance, start, end, time.UTC, false, func(time.Time) {})
			if !errors.Is(err, tickerrors.ErrInternalInvariant) {
				t.Errorf("strict walk() yielded %v, wanted ErrInternalInvariant", err)
			}
		})
	}
}
