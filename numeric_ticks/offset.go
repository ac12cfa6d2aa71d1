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

package numericticks

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CalculateOffsets returns, for each bound, the largest multiple of
// 10^exponent not exceeding it.
func CalculateOffsets(lower, upper float64, exponent int) (startOffset, endOffset float64) {
	p := math.Pow10(exponent)
	return math.Floor(lower/p) * p, math.Floor(upper/p) * p
}

// TickValueForOffset returns the remainder of value past its offset at
// 10^exponent.  The remainder is never negative, so the offset returned by
// CalculateOffsets plus the remainder is the value itself.
func TickValueForOffset(value float64, exponent int) float64 {
	p := math.Pow10(exponent)
	return value - math.Floor(value/p)*p
}

// OffsetForNumber rounds value toward zero to a multiple of
// 10^integerDigits.
func OffsetForNumber(value float64, integerDigits int) float64 {
	p := math.Pow10(integerDigits)
	var ret float64
	if value >= 0 {
		ret = math.Floor(value/p) * p
	} else {
		ret = math.Ceil(value/p) * p
	}
	if ret == 0 {
		return 0
	}
	return ret
}

// OffsetLayout describes how tick labels split into a shared offset and a
// short remainder.
type OffsetLayout struct {
	// IntegerDigits and FractionDigits partition the available label digits.
	IntegerDigits, FractionDigits int
	// Offsets holds the distinct offsets of the ticks, preceded by the offset
	// one step before the first tick.
	Offsets []float64
	// Step is the distance between two consecutive offsets.
	Step float64

	deltaMagnitude int
}

// ComputeOffsetLayout lays out offsets for ticks over [lower, upper] when
// spaceForDigits digits are available per label.
func ComputeOffsetLayout(ticks []float64, lower, upper float64, spaceForDigits int) OffsetLayout {
	if spaceForDigits < 1 {
		spaceForDigits = 1
	}
	deltaMagnitude := 1 - spaceForDigits
	if r := math.Abs(upper - lower); r > 0 && !math.IsInf(r, 0) {
		deltaMagnitude = int(math.Floor(math.Log10(r)))
	}
	fractionDigits := min(max(1-deltaMagnitude, 0), spaceForDigits-1)
	ol := OffsetLayout{
		IntegerDigits:  spaceForDigits - fractionDigits,
		FractionDigits: fractionDigits,
		deltaMagnitude: deltaMagnitude,
	}
	var offsets []float64
	for _, tick := range ticks {
		o := OffsetForNumber(tick, ol.IntegerDigits)
		if len(offsets) == 0 || offsets[len(offsets)-1] != o {
			offsets = append(offsets, o)
		}
	}
	if len(offsets) == 0 {
		return ol
	}
	if len(offsets) > 1 {
		ol.Step = math.Abs(offsets[1] - offsets[0])
	} else {
		ol.Step = math.Pow10(deltaMagnitude + 2)
	}
	ol.Offsets = append([]float64{offsets[0] - ol.Step}, offsets...)
	return ol
}

// Index returns a coarse bucket for value, suitable for alternating the
// styling of neighboring offsets.
func (ol OffsetLayout) Index(value float64) int {
	if ol.deltaMagnitude < ol.IntegerDigits {
		return int(value / math.Pow10(ol.IntegerDigits))
	}
	if ol.Step == 0 {
		return 0
	}
	return int(value / ol.Step)
}

// FormatOffset renders value grouped per tag's conventions, with exactly
// fractionDigits fraction digits.
func FormatOffset(tag language.Tag, value float64, fractionDigits int) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(value,
		number.MinFractionDigits(fractionDigits),
		number.MaxFractionDigits(fractionDigits)))
}
