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

// Package continuousaxis provides helpers for defining continuous axes and
// computing their ticks.  An axis has a name, a type which describes that
// axis' domain, and minimum and maximum points along that domain.
package continuousaxis

import (
	"context"
	"math"
	"time"

	axisconfig "github.com/ilhamster/traceviz/ticks/axis_config"
	numericticks "github.com/ilhamster/traceviz/ticks/numeric_ticks"
	tickcache "github.com/ilhamster/traceviz/ticks/tick_cache"
	timeticks "github.com/ilhamster/traceviz/ticks/time_ticks"
	"golang.org/x/sync/errgroup"
)

const (
	timestampAxisType = "timestamp"
	durationAxisType  = "duration"
	doubleAxisType    = "double"
	logAxisType       = "log"
)

// TickSettings configures tick computation for axes.
type TickSettings struct {
	// Linear configures double and duration axes.  Duration axes measure
	// MinTickDistance in milliseconds.
	Linear numericticks.LinearOptions
	// LogMaxTickCount and LogMinTickDistance configure log axes; the
	// distance is in decades.
	LogMaxTickCount    int
	LogMinTickDistance float64
	// MinTickDistanceMs and MinOffsetDistanceMs configure timestamp axes.
	MinTickDistanceMs   float64
	MinOffsetDistanceMs float64
	Locale              timeticks.Locale
	// Calculator computes timestamp ticks.  If nil, a default Calculator is
	// used.
	Calculator *timeticks.Calculator
	// If non-nil, Cache memoizes all tick computations.
	Cache *tickcache.Cache
}

// SettingsFromConfig returns the TickSettings c describes, sharing one
// cache across all axes.
func SettingsFromConfig(c *axisconfig.Config) (TickSettings, error) {
	linear, err := c.LinearOptions()
	if err != nil {
		return TickSettings{}, err
	}
	locale, err := c.Locale()
	if err != nil {
		return TickSettings{}, err
	}
	calc, err := c.Calculator()
	if err != nil {
		return TickSettings{}, err
	}
	cache, err := tickcache.New(c.Engine.CacheSize, calc)
	if err != nil {
		return TickSettings{}, err
	}
	return TickSettings{
		Linear:              linear,
		LogMaxTickCount:     linear.MaxTickCount,
		MinTickDistanceMs:   c.Time.MinTickDistanceMs,
		MinOffsetDistanceMs: c.Time.MinOffsetDistanceMs,
		Locale:              locale,
		Calculator:          calc,
		Cache:               cache,
	}, nil
}

func (s TickSettings) calculator() *timeticks.Calculator {
	if s.Calculator == nil {
		return timeticks.New(timeticks.DefaultOptions())
	}
	return s.Calculator
}

func linearTicks(s TickSettings, lower, upper float64) ([]float64, error) {
	if s.Cache != nil {
		return s.Cache.LinearTicks(lower, upper, s.Linear)
	}
	return numericticks.CalculateTicks(lower, upper, s.Linear)
}

func logTicks(s TickSettings, lower, upper float64) ([]float64, error) {
	if s.Cache != nil {
		return s.Cache.LogTicks(lower, upper, s.LogMaxTickCount, s.LogMinTickDistance)
	}
	return numericticks.CalculateLogTicks(lower, upper, s.LogMaxTickCount, s.LogMinTickDistance)
}

func timestampTicks(s TickSettings, lower, upper float64) ([]float64, error) {
	if s.Cache != nil {
		return s.Cache.TimeTicks(lower, upper, s.MinTickDistanceMs, s.Locale.Location)
	}
	return s.calculator().TickValues(lower, upper, s.MinTickDistanceMs, s.Locale.Location)
}

// Ticker is implemented by axes that can produce ticks.
type Ticker interface {
	Name() string
	// TickValues returns the receiver's ticks as domain values: plain values
	// for double axes, epoch milliseconds for timestamps and milliseconds
	// for durations.
	TickValues(s TickSettings) ([]float64, error)
}

// Axis is implemented by types that can act as axes.
type Axis[T float64 | time.Duration | time.Time] struct {
	axisType   string
	name       string
	min, max   T
	toDomain   func(T) float64
	fromDomain func(float64) T
	ticks      func(s TickSettings, lower, upper float64) ([]float64, error)
}

func newAxis[T float64 | time.Duration | time.Time](
	axisType string,
	name string,
	toDomain func(T) float64,
	fromDomain func(float64) T,
	ticks func(s TickSettings, lower, upper float64) ([]float64, error),
	min, max T) *Axis[T] {
	return &Axis[T]{
		axisType:   axisType,
		name:       name,
		min:        min,
		max:        max,
		toDomain:   toDomain,
		fromDomain: fromDomain,
		ticks:      ticks,
	}
}

// Name returns the name of the receiving Axis.
func (a *Axis[T]) Name() string {
	return a.name
}

// Type returns the domain type of the receiving Axis.
func (a *Axis[T]) Type() string {
	return a.axisType
}

// Extents returns the minimum and maximum of the receiving Axis.
func (a *Axis[T]) Extents() (min, max T) {
	return a.min, a.max
}

// TickValues returns the receiver's ticks as domain values.
func (a *Axis[T]) TickValues(s TickSettings) ([]float64, error) {
	return a.ticks(s, a.toDomain(a.min), a.toDomain(a.max))
}

// Ticks returns the receiver's ticks.
func (a *Axis[T]) Ticks(s TickSettings) ([]T, error) {
	vals, err := a.TickValues(s)
	if err != nil {
		return nil, err
	}
	ret := make([]T, len(vals))
	for i, v := range vals {
		ret[i] = a.fromDomain(v)
	}
	return ret, nil
}

// TimestampOffsets returns the offset labels of a timestamp axis.
func TimestampOffsets(a *Axis[time.Time], s TickSettings) ([]timeticks.Offset, error) {
	lower, upper := a.toDomain(a.min), a.toDomain(a.max)
	if s.Cache != nil {
		return s.Cache.TimeOffsets(lower, upper, s.MinOffsetDistanceMs, s.Locale)
	}
	return s.calculator().Offsets(lower, upper, s.MinOffsetDistanceMs, s.Locale)
}

// NewTimestampAxis returns a new TimestampAxis with the specified name.
// If the optional extents are provided, the axis' minimum and maximum extents
// will be initialized to the lowest and highest of those extents.
func NewTimestampAxis(name string, extents ...time.Time) *Axis[time.Time] {
	var min, max time.Time
	for _, extent := range extents {
		if min.IsZero() || min.After(extent) {
			min = extent
		}
		if max.IsZero() || max.Before(extent) {
			max = extent
		}
	}
	return newAxis[time.Time](
		timestampAxisType, name,
		timeticks.ToMillis,
		func(v float64) time.Time {
			return timeticks.ToTime(v, time.UTC)
		},
		timestampTicks, min, max)
}

// NewDurationAxis returns a new DurationAxis with the specified name.
// If the optional extents are provided, the axis' minimum and maximum extents
// will be initialized to the lowest and highest of those extents.
func NewDurationAxis(name string, extents ...time.Duration) *Axis[time.Duration] {
	var min, max time.Duration = time.Duration(math.MaxInt64), time.Duration(math.MinInt64)
	for _, extent := range extents {
		if extent < min {
			min = extent
		}
		if extent > max {
			max = extent
		}
	}
	return newAxis[time.Duration](
		durationAxisType, name,
		func(d time.Duration) float64 {
			return float64(d) / float64(time.Millisecond)
		},
		func(v float64) time.Duration {
			return time.Duration(math.Round(v * float64(time.Millisecond)))
		},
		linearTicks, min, max)
}

func identity(v float64) float64 { return v }

func doubleExtents(extents []float64) (min, max float64) {
	min, max = math.MaxFloat64, -math.MaxFloat64
	for _, extent := range extents {
		if min > extent {
			min = extent
		}
		if max < extent {
			max = extent
		}
	}
	return min, max
}

// NewDoubleAxis returns a new DoubleAxis with the specified name.
// If the optional extents are provided, the axis' minimum and maximum extents
// will be initialized to the lowest and highest of those extents.
func NewDoubleAxis(name string, extents ...float64) *Axis[float64] {
	min, max := doubleExtents(extents)
	return newAxis[float64](doubleAxisType, name, identity, identity, linearTicks, min, max)
}

// NewLogAxis returns a new logarithmic DoubleAxis with the specified name.
// Its extents must be positive.
func NewLogAxis(name string, extents ...float64) *Axis[float64] {
	min, max := doubleExtents(extents)
	return newAxis[float64](logAxisType, name, identity, identity, logTicks, min, max)
}

// ComputeAll computes the ticks of all provided axes concurrently, returning
// them in axis order.  If any axis fails, ComputeAll returns the first error.
func ComputeAll(ctx context.Context, s TickSettings, axes ...Ticker) ([][]float64, error) {
	ret := make([][]float64, len(axes))
	errg, ctx := errgroup.WithContext(ctx)
	for idx, axis := range axes {
		idx, axis := idx, axis
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ticks, err := axis.TickValues(s)
			if err != nil {
				return err
			}
			ret[idx] = ticks
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}
