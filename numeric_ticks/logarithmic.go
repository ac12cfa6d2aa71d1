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
	"math"

	tickerrors "github.com/ilhamster/traceviz/ticks/tick_errors"
)

// CalculateLogTicks returns decade ticks within [lower, upper].  Both bounds
// must be strictly positive.  minTickDistance is measured in decades.
func CalculateLogTicks(lower, upper float64, maxTickCount int, minTickDistance float64) ([]float64, error) {
	return AppendLogTicks(nil, lower, upper, maxTickCount, minTickDistance)
}

// AppendLogTicks is like CalculateLogTicks, but appends the ticks to dst.
func AppendLogTicks(dst []float64, lower, upper float64, maxTickCount int, minTickDistance float64) ([]float64, error) {
	if !(lower > 0) || !(upper > 0) {
		return dst, fmt.Errorf("%w: logarithmic bounds must be > 0, got [%v, %v]", tickerrors.ErrInvalidArgument, lower, upper)
	}
	start := len(dst)
	dst, err := AppendTicks(dst, math.Log10(lower), math.Log10(upper), LinearOptions{
		MaxTickCount:    maxTickCount,
		MinTickDistance: minTickDistance,
		EndPolicy:       EndPolicyDefault,
		Factors:         FactorsOnly10,
	})
	if err != nil {
		return dst, err
	}
	for i := start; i < len(dst); i++ {
		dst[i] = math.Pow(10, dst[i])
	}
	return dst, nil
}
