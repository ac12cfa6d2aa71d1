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
	"fmt"
	"strings"

	tickerrors "github.com/ilhamster/traceviz/ticks/tick_errors"
)

// Factors selects the intermediate steps permitted between two powers of ten.
type Factors int

const (
	// FactorsDefault permits 2, 5 and 10 steps.
	FactorsDefault Factors = iota
	// FactorsOnly10 permits only powers of ten.
	FactorsOnly10
	// FactorsOnly5sAnd10 permits 5 and 10 steps.
	FactorsOnly5sAnd10
	// FactorsAll permits 2, 2.5, 5 and 10 steps.
	FactorsAll
)

var factorValues = map[Factors][]float64{
	FactorsDefault:     {2, 5, 10},
	FactorsOnly10:      {10},
	FactorsOnly5sAnd10: {5, 10},
	FactorsAll:         {2, 2.5, 5, 10},
}

var factorNames = map[Factors]string{
	FactorsDefault:     "default",
	FactorsOnly10:      "only10",
	FactorsOnly5sAnd10: "only5sand10",
	FactorsAll:         "all",
}

func (f Factors) String() string {
	if name, ok := factorNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Factors(%d)", int(f))
}

// ParseFactors returns the Factors with the provided name.
func ParseFactors(s string) (Factors, error) {
	s = strings.ToLower(s)
	for f, name := range factorNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown factors '%s'", tickerrors.ErrInvalidArgument, s)
}

// Values returns the multipliers f permits within one decade, ascending and
// always ending with 10.  Unknown Factors behave as FactorsOnly10.
func (f Factors) Values() []float64 {
	if vals, ok := factorValues[f]; ok {
		return vals
	}
	return factorValues[FactorsOnly10]
}

// AtLeast returns the smallest product of a power of ten and one of the
// receiver's values that is at least min.  It returns 1 for min <= 1.
func (f Factors) AtLeast(min float64) float64 {
	vals := f.Values()
	factor := 1.0
	for factor < min {
		for _, v := range vals {
			if factor*v >= min {
				return factor * v
			}
		}
		factor *= vals[len(vals)-1]
	}
	return factor
}

func (f Factors) allows2() bool {
	return f == FactorsDefault || f == FactorsAll
}

func (f Factors) allows2_5() bool {
	return f == FactorsAll
}

func (f Factors) allows5() bool {
	return f == FactorsDefault || f == FactorsOnly5sAnd10 || f == FactorsAll
}
