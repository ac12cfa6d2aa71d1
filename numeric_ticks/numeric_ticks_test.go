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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	tickerrors "github.com/ilhamster/traceviz/ticks/tick_errors"
	"golang.org/x/text/language"
)

func TestFactorsAtLeast(t *testing.T) {
	for _, test := range []struct {
		factors Factors
		min     float64
		want    float64
	}{
		{FactorsAll, 0.5, 1},
		{FactorsAll, 1, 1},
		{FactorsAll, 2.4, 2.5},
		{FactorsAll, 2.51, 5},
		{FactorsAll, 3.0000000000317, 5},
		{FactorsAll, 7, 10},
		{FactorsAll, 10.96, 20},
		{FactorsDefault, 2.4, 5},
		{FactorsOnly5sAnd10, 1.2, 5},
		{FactorsOnly10, 1.2, 10},
		{FactorsOnly10, 42, 100},
	} {
		if got := test.factors.AtLeast(test.min); got != test.want {
			t.Errorf("%s.AtLeast(%v) = %v, want %v", test.factors, test.min, got, test.want)
		}
	}
}

func TestParseFactors(t *testing.T) {
	for _, f := range []Factors{FactorsDefault, FactorsOnly10, FactorsOnly5sAnd10, FactorsAll} {
		got, err := ParseFactors(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFactors(%q) = %v, %v; want %v", f.String(), got, err, f)
		}
	}
	if _, err := ParseFactors("threes"); !errors.Is(err, tickerrors.ErrInvalidArgument) {
		t.Errorf("ParseFactors(\"threes\") yielded %v, wanted ErrInvalidArgument", err)
	}
	if _, err := ParseEndPolicy("Exact"); err != nil {
		t.Errorf("ParseEndPolicy(\"Exact\") yielded unexpected error %s", err)
	}
}

func TestCalculateLogTicks(t *testing.T) {
	for _, test := range []struct {
		description     string
		lower, upper    float64
		maxTickCount    int
		minTickDistance float64
		want            []float64
	}{{
		description:  "four decades",
		lower:        1,
		upper:        1000,
		maxTickCount: 10,
		want:         []float64{1, 10, 100, 1000},
	}, {
		description:     "every other decade",
		lower:           0.01,
		upper:           1e6,
		maxTickCount:    10,
		minTickDistance: 2,
		want:            []float64{0.01, 1, 100, 10000, 1e6},
	}, {
		description:     "within one decade",
		lower:           2,
		upper:           9,
		maxTickCount:    10,
		minTickDistance: 1,
		want:            nil,
	}} {
		t.Run(test.description, func(t *testing.T) {
			got, err := CalculateLogTicks(test.lower, test.upper, test.maxTickCount, test.minTickDistance)
			if err != nil {
				t.Fatalf("CalculateLogTicks() yielded unexpected error %s", err)
			}
			if diff := cmp.Diff(test.want, got, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
				t.Errorf("Got ticks %v, diff (-want +got):\n%s", got, diff)
			}
		})
	}
	for _, bounds := range [][2]float64{{0, 10}, {-1, 10}, {1, -10}} {
		if _, err := CalculateLogTicks(bounds[0], bounds[1], 10, 0); !errors.Is(err, tickerrors.ErrInvalidArgument) {
			t.Errorf("CalculateLogTicks(%v) yielded %v, wanted ErrInvalidArgument", bounds, err)
		}
	}
}

func TestOffsets(t *testing.T) {
	start, end := CalculateOffsets(123456, 129999, 3)
	if start != 123000 || end != 129000 {
		t.Errorf("CalculateOffsets() = (%v, %v), want (123000, 129000)", start, end)
	}
	start, end = CalculateOffsets(-1500, 1500, 3)
	if start != -2000 || end != 1000 {
		t.Errorf("CalculateOffsets() = (%v, %v), want (-2000, 1000)", start, end)
	}
	for _, test := range []struct {
		value    float64
		exponent int
		want     float64
	}{
		{123456, 3, 456},
		{123000, 3, 0},
		{-1500, 3, 500},
	} {
		if got := TickValueForOffset(test.value, test.exponent); got != test.want {
			t.Errorf("TickValueForOffset(%v, %d) = %v, want %v", test.value, test.exponent, got, test.want)
		}
	}
	for _, test := range []struct {
		value         float64
		integerDigits int
		want          float64
	}{
		{123456, 3, 123000},
		{-123456, 3, -123000},
		{-999, 3, 0},
		{999, 3, 0},
		{1000, 3, 1000},
	} {
		got := OffsetForNumber(test.value, test.integerDigits)
		if got != test.want {
			t.Errorf("OffsetForNumber(%v, %d) = %v, want %v", test.value, test.integerDigits, got, test.want)
		}
		if got == 0 && 1/got < 0 {
			t.Errorf("OffsetForNumber(%v, %d) returned negative zero", test.value, test.integerDigits)
		}
	}
}

func TestComputeOffsetLayout(t *testing.T) {
	ticks := []float64{1e6, 1.0005e6, 1.001e6, 1.0015e6, 1.002e6}
	got := ComputeOffsetLayout(ticks, 1e6, 1.002e6, 4)
	want := OffsetLayout{
		IntegerDigits:  4,
		FractionDigits: 0,
		Offsets:        []float64{900000, 1e6},
		Step:           1e5,
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(OffsetLayout{})); diff != "" {
		t.Errorf("Got layout %v, diff (-want +got):\n%s", got, diff)
	}
	if idx := got.Index(1.0015e6); idx != 100 {
		t.Errorf("Index() = %d, want 100", idx)
	}

	ticks = []float64{19000, 20000, 21000}
	got = ComputeOffsetLayout(ticks, 19000, 21000, 4)
	want = OffsetLayout{
		IntegerDigits: 4,
		Offsets:       []float64{0, 10000, 20000},
		Step:          10000,
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(OffsetLayout{})); diff != "" {
		t.Errorf("Got layout %v, diff (-want +got):\n%s", got, diff)
	}

	got = ComputeOffsetLayout(nil, 0, 1, 4)
	if len(got.Offsets) != 0 || got.FractionDigits != 1 || got.IntegerDigits != 3 {
		t.Errorf("Got layout %v for no ticks, want no offsets with 3+1 digits", got)
	}
}

func TestFormatOffset(t *testing.T) {
	for _, test := range []struct {
		tag            language.Tag
		value          float64
		fractionDigits int
		want           string
	}{
		{language.AmericanEnglish, 1200000, 0, "1,200,000"},
		{language.German, 1200000, 0, "1.200.000"},
	} {
		if got := FormatOffset(test.tag, test.value, test.fractionDigits); got != test.want {
			t.Errorf("FormatOffset(%s, %v, %d) = %q, want %q", test.tag, test.value, test.fractionDigits, got, test.want)
		}
	}
}
