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
	"math"

	numericticks "github.com/ilhamster/traceviz/ticks/numeric_ticks"
)

const maxYears = 10000

var (
	monthSteps  = []int{1, 2, 3, 6}
	daySteps    = []int{1, 5, 10, 15}
	hourSteps   = []int{1, 2, 3, 4, 6, 12}
	minuteSteps = []int{1, 2, 5, 10, 15, 30}
	secondSteps = []int{1, 2, 5, 10, 15, 30, 60}
)

// firstAtLeast returns the first step not less than min, or the last step.
func firstAtLeast(steps []int, min float64) int {
	for _, s := range steps {
		if float64(s) >= min {
			return s
		}
	}
	return steps[len(steps)-1]
}

// MillisAtLeast returns the smallest Millis of at least min milliseconds that
// is a power of ten scaled by one of f's values.  The step is never below one
// millisecond.
func MillisAtLeast(min float64, f numericticks.Factors) Millis {
	if !(min > 0) {
		return Millis{Step: 1}
	}
	magnitude := math.Pow10(int(math.Floor(math.Log10(min))))
	return Millis{Step: math.Max(1, magnitude*f.AtLeast(min/magnitude))}
}

// YearsAtLeast returns the smallest Years of at least min years that is a
// power of ten scaled by one of f's values.
func YearsAtLeast(min float64, f numericticks.Factors) Years {
	if !(min > 1) {
		return Years{N: 1}
	}
	magnitude := math.Pow10(int(math.Floor(math.Log10(min))))
	n := math.Ceil(magnitude * f.AtLeast(min/magnitude))
	if n > maxYears {
		n = maxYears
	}
	return Years{N: int(n)}
}

// ForTicks returns the Distance to tick with when ticks must be at least
// minMillis milliseconds apart.
func ForTicks(minMillis float64) Distance {
	switch {
	case minMillis > 365*millisPerDay:
		return YearsAtLeast(minMillis/(365*millisPerDay), numericticks.FactorsAll)
	case minMillis > 168*millisPerDay:
		return Years{N: 1}
	case minMillis > 15*millisPerDay:
		return Months{N: firstAtLeast(monthSteps, minMillis/(28*millisPerDay))}
	case minMillis > 12*millisPerHour:
		return Days{N: firstAtLeast(daySteps, minMillis/millisPerDay)}
	case minMillis > 30*millisPerMinute:
		return Hours{N: firstAtLeast(hourSteps, minMillis/millisPerHour)}
	case minMillis > millisPerMinute:
		return Minutes{N: firstAtLeast(minuteSteps, minMillis/millisPerMinute)}
	case minMillis > 500:
		return Seconds{N: firstAtLeast(secondSteps, minMillis/millisPerSecond)}
	default:
		return MillisAtLeast(minMillis, numericticks.FactorsAll)
	}
}

// ForOffsets returns the Distance to place offset labels with when they must
// be at least minMillis milliseconds apart.  Offsets only grow by powers of
// ten.
func ForOffsets(minMillis float64) Distance {
	switch {
	case minMillis > 60*millisPerDay:
		return YearsAtLeast(minMillis/(365*millisPerDay), numericticks.FactorsOnly10)
	case minMillis > 2*millisPerDay:
		return Months{N: 1}
	case minMillis > 2*millisPerHour:
		return Days{N: 1}
	case minMillis > 2*millisPerMinute:
		return Hours{N: 1}
	case minMillis > 2*millisPerSecond:
		return Minutes{N: 1}
	case minMillis > 500:
		return Seconds{N: 1}
	default:
		return MillisAtLeast(minMillis, numericticks.FactorsOnly10)
	}
}
