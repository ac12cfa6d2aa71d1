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

// Package testutil provides types and methods facilitating testing tick
// computation.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// MillisLayout renders epoch-millisecond ticks in diffs.
const MillisLayout = "2006-01-02T15:04:05.000Z07:00"

// TickComparator facilitates testing of tick sequences, comparing a 'got' set
// of ticks-under-test against a 'want' set.
type TickComparator struct {
	got, want []float64
	opts      []cmp.Option
}

// NewTickComparator returns a new, empty TickComparator.
func NewTickComparator() *TickComparator {
	return &TickComparator{}
}

// WithTestTicks specifies the receiver's ticks-under-test.
func (tc *TickComparator) WithTestTicks(got ...float64) *TickComparator {
	tc.got = got
	return tc
}

// WithWantTicks specifies the ticks the receiver's test ticks should equal.
func (tc *TickComparator) WithWantTicks(want ...float64) *TickComparator {
	tc.want = want
	return tc
}

// Approximately permits each tick to differ from its counterpart by the
// provided fraction.
func (tc *TickComparator) Approximately(fraction float64) *TickComparator {
	tc.opts = append(tc.opts, cmpopts.EquateApprox(fraction, 0))
	return tc
}

// Compare the receiver's 'got' and 'want' ticks, returning a difference
// message (empty if no difference) and a boolean indicating whether the two
// are different (true) or not (false).  Tick order must be preserved.
func (tc *TickComparator) Compare() (string, bool) {
	if diff := cmp.Diff(tc.want, tc.got, append([]cmp.Option{cmpopts.EquateEmpty()}, tc.opts...)...); diff != "" {
		return fmt.Sprintf("Got ticks %v, diff (-want +got):\n%s", tc.got, diff), true
	}
	return "", false
}

// Millis parses an RFC3339 timestamp into epoch milliseconds, failing the test
// if it is malformed.
func Millis(t *testing.T, timestamp string) float64 {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		t.Fatalf("failed to parse timestamp '%s': %s", timestamp, err)
	}
	return float64(ts.UnixMilli())
}

// AllMillis is like Millis, for several timestamps.
func AllMillis(t *testing.T, timestamps ...string) []float64 {
	t.Helper()
	ret := make([]float64, len(timestamps))
	for i, ts := range timestamps {
		ret[i] = Millis(t, ts)
	}
	return ret
}

// Timestamps renders epoch-millisecond ticks in zone.
func Timestamps(ticks []float64, zone *time.Location) []string {
	ret := make([]string, len(ticks))
	for i, tick := range ticks {
		ret[i] = time.UnixMilli(int64(tick)).In(zone).Format(MillisLayout)
	}
	return ret
}

// CompareTimestamps compares epoch-millisecond ticks with the expected
// timestamps in zone, raising an error on t if they differ.
func CompareTimestamps(t *testing.T, zone *time.Location, got []float64, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, Timestamps(got, zone), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Got timestamps %v, diff (-want +got):\n%s", Timestamps(got, zone), diff)
	}
}
