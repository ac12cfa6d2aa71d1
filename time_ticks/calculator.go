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
	"fmt"
	"math"
	"os"
	"time"

	tickerrors "github.com/ilhamster/traceviz/ticks/tick_errors"
	log "github.com/sirupsen/logrus"
)

// Options configures a Calculator.
type Options struct {
	// Logger receives reports of recovered failures.
	Logger log.FieldLogger
	// Strict turns a first tick after the start of the range into an error
	// wrapping ErrInternalInvariant instead of a logged warning.
	Strict bool
}

// DefaultOptions returns non-strict options logging warnings to stderr.
func DefaultOptions() Options {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(log.WarnLevel)
	return Options{Logger: logger}
}

// Offset is an offset label position on a time axis.
type Offset struct {
	// Millis is the position of the offset in epoch milliseconds.
	Millis float64
	Label  string
	// Index is a coarse bucket for alternating the styling of neighboring
	// offsets.
	Index int
}

// Calculator computes ticks and offsets for time axes whose values are epoch
// milliseconds.  A Calculator holds no mutable state and may be shared.
type Calculator struct {
	logger log.FieldLogger
	strict bool
}

// New returns a Calculator configured by opts.
func New(opts Options) *Calculator {
	if opts.Logger == nil {
		opts.Logger = DefaultOptions().Logger
	}
	return &Calculator{
		logger: opts.Logger,
		strict: opts.Strict,
	}
}

func validateRange(start, end, minDistance float64) error {
	for _, v := range []float64{start, end} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: time range bounds must be finite, got [%v, %v]", tickerrors.ErrInvalidArgument, start, end)
		}
		if v < MinSupportedMillis || v > MaxSupportedMillis {
			return fmt.Errorf("%w: %v lies outside the supported range [%d, %d]", tickerrors.ErrInvalidArgument, v, int64(MinSupportedMillis), int64(MaxSupportedMillis))
		}
	}
	if !(start < end) {
		return fmt.Errorf("%w: start %v must be before end %v", tickerrors.ErrInvalidArgument, start, end)
	}
	if !(minDistance >= 0) || math.IsInf(minDistance, 0) {
		return fmt.Errorf("%w: min distance must be finite and >= 0, got %v", tickerrors.ErrInvalidArgument, minDistance)
	}
	return nil
}

// TickValues returns the ticks within [start, end], both epoch milliseconds,
// that lie at least minTickDistance milliseconds apart and align to the wall
// clock of zone.  A nil zone is UTC.
func (c *Calculator) TickValues(start, end, minTickDistance float64, zone *time.Location) ([]float64, error) {
	return c.AppendTickValues(nil, start, end, minTickDistance, zone)
}

// AppendTickValues is like TickValues, but appends the ticks to dst.
func (c *Calculator) AppendTickValues(dst []float64, start, end, minTickDistance float64, zone *time.Location) ([]float64, error) {
	if err := validateRange(start, end, minTickDistance); err != nil {
		return dst, err
	}
	d := ForTicks(minTickDistance)
	from := len(dst)
	err := c.walk(d, start, end, zone, true, func(t time.Time) {
		dst = append(dst, ToMillis(t))
	})
	if err != nil {
		return dst[:from], err
	}
	return dst, nil
}

// Offsets returns the offset labels within [start, end] spaced at least
// minOffsetDistance milliseconds apart, rendered per l.  The first offset
// may precede start.
func (c *Calculator) Offsets(start, end, minOffsetDistance float64, l Locale) ([]Offset, error) {
	if err := validateRange(start, end, minOffsetDistance); err != nil {
		return nil, err
	}
	d := ForOffsets(minOffsetDistance)
	var ret []Offset
	err := c.walk(d, start, end, l.Location, false, func(t time.Time) {
		ret = append(ret, Offset{
			Millis: ToMillis(t),
			Label:  d.FormatAsOffset(t, l),
			Index:  d.EstimatedIndex(t),
		})
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// walk yields the ticks of d over [start, end].  Ranges that cannot be
// aligned yield nothing.
func (c *Calculator) walk(d Distance, start, end float64, zone *time.Location, skipBeforeStart bool, yield func(time.Time)) error {
	startTime, endTime := ToTime(start, zone), ToTime(end, zone)
	logger := c.logger.WithField("distance", d.String())
	err := iterate(d, startTime, endTime, skipBeforeStart, func(first time.Time) error {
		// Calendar arithmetic may round by up to a millisecond.
		if ToMillis(first) <= start+1 {
			return nil
		}
		if c.strict {
			return fmt.Errorf("%w: %s placed first tick %s after start %s", tickerrors.ErrInternalInvariant, d, first, startTime)
		}
		logger.WithFields(log.Fields{
			"start":      startTime,
			"first_tick": first,
		}).Warn("first tick lies after the start of the range")
		return nil
	}, yield)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tickerrors.ErrUnsupportedRange):
		logger.WithField("start", startTime).Debug(err)
		return nil
	case c.strict:
		return err
	default:
		logger.Error(err)
		return nil
	}
}
