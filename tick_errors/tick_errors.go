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

// Package tickerrors defines the errors reported by the tick calculators.
// Errors returned by this module wrap one of these sentinels and should be
// tested with errors.Is.
package tickerrors

import "errors"

var (
	// ErrInvalidArgument is returned when a calculator's inputs are
	// malformed: reversed or non-finite bounds, negative tick counts or
	// distances, non-positive logarithmic bounds, or instants outside the
	// supported calendar window.
	ErrInvalidArgument = errors.New("tick: invalid argument")

	// ErrUnsupportedRange signals that calendar alignment fell outside the
	// supported proleptic range.  Calculators recover from it by returning no
	// ticks; it is only surfaced through logs.
	ErrUnsupportedRange = errors.New("tick: unsupported calendar range")

	// ErrInternalInvariant is returned in strict mode when a tick distance
	// produced a first tick after the start of the requested range.
	ErrInternalInvariant = errors.New("tick: internal invariant violation")
)
