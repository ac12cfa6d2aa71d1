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

	tickerrors "github.com/ilhamster/traceviz/ticks/tick_errors"
)

// CalculateTicks returns the ticks of d within [start, end], in start's
// location.  If skipBeforeStart is false, the result begins with the first
// tick, which may precede start.  Ranges whose alignment falls before year 1
// have no ticks.
func CalculateTicks(d Distance, start, end time.Time, skipBeforeStart bool) []time.Time {
	return AppendTicks(nil, d, start, end, skipBeforeStart)
}

// AppendTicks is like CalculateTicks, but appends the ticks to dst.
func AppendTicks(dst []time.Time, d Distance, start, end time.Time, skipBeforeStart bool) []time.Time {
	iterate(d, start, end.In(start.Location()), skipBeforeStart, nil, func(t time.Time) {
		dst = append(dst, t)
	})
	return dst
}

// iterate calls yield with each tick of d up to end.  If checkFirst is
// non-nil, it is called with the first tick before any are yielded, and a
// returned error stops the iteration.  iterate returns an error wrapping
// ErrUnsupportedRange if no first tick exists, and one wrapping
// ErrInternalInvariant if d fails to advance.
func iterate(d Distance, start, end time.Time, skipBeforeStart bool,
	checkFirst func(first time.Time) error, yield func(time.Time)) error {
	t, ok := d.FirstTick(start)
	if !ok {
		return fmt.Errorf("%w: %s cannot align %s", tickerrors.ErrUnsupportedRange, d, start)
	}
	if checkFirst != nil {
		if err := checkFirst(t); err != nil {
			return err
		}
	}
	next := func(cur time.Time) (time.Time, error) {
		n := d.NextTick(cur)
		if !n.After(cur) {
			return cur, fmt.Errorf("%w: %s did not advance past %s", tickerrors.ErrInternalInvariant, d, cur)
		}
		return n, nil
	}
	var err error
	if skipBeforeStart {
		for t.Before(start) {
			if t, err = next(t); err != nil {
				return err
			}
		}
	}
	for !t.After(end) {
		yield(t)
		if t, err = next(t); err != nil {
			return err
		}
	}
	return nil
}
