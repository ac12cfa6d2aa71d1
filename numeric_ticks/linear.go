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

// Package numericticks computes tick values for numeric axes: "round" linear
// ticks, decade ticks for logarithmic axes, and the offset split used to
// label ticks far from zero.
package numericticks

import (
	"fmt"
	"math"
	"strings"

	tickerrors "github.com/ilhamster/traceviz/ticks/tick_errors"
)

// maxDecimalPlaces is the precision bounds are rounded to before the range
// is measured, so an upper bound of 99.99999999999999 ticks like 100.
const maxDecimalPlaces = 10

// degenerateDistance is the tick distance used for single-point ranges.
var degenerateDistance = math.Pow10(-maxDecimalPlaces)

// EndPolicy controls the first and last ticks of a linear axis.
type EndPolicy int

const (
	// EndPolicyDefault only emits ticks at natural grid positions.
	EndPolicyDefault EndPolicy = iota
	// EndPolicyExact replaces the first and last tick with the exact lower
	// and upper bounds.
	EndPolicyExact
)

func (ep EndPolicy) String() string {
	switch ep {
	case EndPolicyDefault:
		return "default"
	case EndPolicyExact:
		return "exact"
	default:
		return fmt.Sprintf("EndPolicy(%d)", int(ep))
	}
}

// ParseEndPolicy returns the EndPolicy with the provided name.
func ParseEndPolicy(s string) (EndPolicy, error) {
	switch strings.ToLower(s) {
	case "default":
		return EndPolicyDefault, nil
	case "exact":
		return EndPolicyExact, nil
	}
	return 0, fmt.Errorf("%w: unknown end policy '%s'", tickerrors.ErrInvalidArgument, s)
}

// LinearOptions holds the constraints for a linear tick computation.
type LinearOptions struct {
	// MaxTickCount is the maximum number of ticks to produce.  Zero yields no
	// ticks.
	MaxTickCount int
	// MinTickDistance is the minimum distance between two consecutive
	// ticks, in domain units.
	MinTickDistance float64
	EndPolicy       EndPolicy
	Factors         Factors
}

// DefaultLinearOptions returns options for at most maxTickCount ticks with
// exact ends and 2, 5 and 10 steps.
func DefaultLinearOptions(maxTickCount int) LinearOptions {
	return LinearOptions{
		MaxTickCount: maxTickCount,
		EndPolicy:    EndPolicyExact,
		Factors:      FactorsDefault,
	}
}

func (o LinearOptions) validate(lower, upper float64) error {
	if o.MinTickDistance < 0 || math.IsNaN(o.MinTickDistance) {
		return fmt.Errorf("%w: min tick distance must be >= 0, got %v", tickerrors.ErrInvalidArgument, o.MinTickDistance)
	}
	if math.IsNaN(lower) || math.IsInf(lower, 0) {
		return fmt.Errorf("%w: lower bound must be finite, got %v", tickerrors.ErrInvalidArgument, lower)
	}
	if math.IsNaN(upper) || math.IsInf(upper, 0) {
		return fmt.Errorf("%w: upper bound must be finite, got %v", tickerrors.ErrInvalidArgument, upper)
	}
	if lower > upper {
		return fmt.Errorf("%w: lower bound %v exceeds upper bound %v", tickerrors.ErrInvalidArgument, lower, upper)
	}
	return nil
}

// CalculateTicks returns ascending, "round" tick values within [lower, upper]
// honoring the provided options.
func CalculateTicks(lower, upper float64, opts LinearOptions) ([]float64, error) {
	return AppendTicks(nil, lower, upper, opts)
}

// AppendTicks is like CalculateTicks, but appends the ticks to dst and returns
// the extended slice.  On error, dst is returned unchanged.
func AppendTicks(dst []float64, lower, upper float64, opts LinearOptions) ([]float64, error) {
	if opts.MaxTickCount < 0 {
		return dst, fmt.Errorf("%w: max tick count must be >= 0, got %d", tickerrors.ErrInvalidArgument, opts.MaxTickCount)
	}
	if opts.MaxTickCount == 0 {
		return dst, nil
	}
	if err := opts.validate(lower, upper); err != nil {
		return dst, err
	}
	lowerRounded := roundDecimalPlaces(lower)
	upperRounded := roundDecimalPlaces(upper)
	start := len(dst)
	deltaRounded := upperRounded - lowerRounded
	if deltaRounded == 0 {
		// A single-point range has exactly one tick, whatever the distance.
		dst = append(dst, lowerRounded)
	} else {
		if math.IsInf(deltaRounded, 0) {
			return dst, fmt.Errorf("%w: span of [%v, %v] overflows", tickerrors.ErrInvalidArgument, lower, upper)
		}
		distance := math.Max(TickDistance(lowerRounded, upperRounded, opts.MaxTickCount, opts.Factors), opts.MinTickDistance)
		base := math.Ceil(lowerRounded/distance) * distance
		if base == 0 {
			base = 0
		}
		if !(distance > 0) || math.IsInf(distance, 0) || math.IsNaN(base) || math.IsInf(base, 0) {
			return dst, fmt.Errorf("%w: no usable tick distance for [%v, %v], got %v", tickerrors.ErrInternalInvariant, lower, upper, distance)
		}
		if n := int((upperRounded-base)/distance) + 1; n > 0 && n <= opts.MaxTickCount+1 {
			dst = grow(dst, n)
		}
		for i := 0; ; i++ {
			v := base + float64(i)*distance
			if v > upperRounded {
				break
			}
			dst = append(dst, v)
		}
	}
	if opts.EndPolicy == EndPolicyExact && len(dst) > start {
		dst[start] = lower
		dst[len(dst)-1] = upper
	}
	return dst, nil
}

// TickDistance returns the distance between ticks that yields at most
// maxTickCount ticks over [lower, upper].  The distance is a power of ten,
// optionally refined by the intermediate steps f allows.  For an empty range
// it returns the degenerate distance, and for a span too wide to represent it
// returns +Inf.
func TickDistance(lower, upper float64, maxTickCount int, f Factors) float64 {
	delta := upper - lower
	if delta <= 0 || maxTickCount <= 0 {
		return degenerateDistance
	}
	if math.IsInf(delta, 0) {
		return math.Inf(1)
	}
	minDistance := delta / float64(maxTickCount)
	exp := int(math.Floor(math.Log10(minDistance)))
	candidate := math.Pow10(exp)
	if candidate < minDistance {
		candidate = math.Pow10(exp + 1)
	}

	ratio := candidate / minDistance
	switch {
	case ratio > 10:
		return candidate / 10
	case f.allows2() && ratio > 5:
		return candidate / 5
	case f.allows2_5() && ratio > 4:
		return candidate / 4
	case f.allows5() && ratio > 2:
		return candidate / 2
	}
	return candidate
}

// roundDecimalPlaces rounds v to maxDecimalPlaces, leaving values too large
// to carry that precision untouched.  The result is never -0.
func roundDecimalPlaces(v float64) float64 {
	const scale = 1e10
	if math.Abs(v)*scale < 1<<52 {
		v = math.Round(v*scale) / scale
	}
	if v == 0 {
		return 0
	}
	return v
}

func grow(s []float64, n int) []float64 {
	if cap(s)-len(s) >= n {
		return s
	}
	ret := make([]float64, len(s), len(s)+n)
	copy(ret, s)
	return ret
}
