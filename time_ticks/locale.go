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
	"time"

	"github.com/tebeka/strftime"
	"golang.org/x/text/language"
)

// Locale selects the language and timezone of offset labels.
type Locale struct {
	Language language.Tag
	// Location is the zone labels are rendered in.  If nil, instants are
	// rendered in their own location.
	Location *time.Location
}

// DefaultLocale returns an American English locale in UTC.
func DefaultLocale() Locale {
	return Locale{Language: language.AmericanEnglish, Location: time.UTC}
}

// labelFormats holds the strftime patterns of one language.
type labelFormats struct {
	year, month, date, minute, second string
	millisSeparator                   string
}

var (
	supportedLanguages = []language.Tag{
		language.AmericanEnglish, // The first tag is the fallback.
		language.BritishEnglish,
		language.German,
	}
	languageMatcher = language.NewMatcher(supportedLanguages)
	formatsByIndex  = []labelFormats{{
		year:            "%Y",
		month:           "%B %Y",
		date:            "%m/%d/%Y",
		minute:          "%m/%d/%Y %H:%M",
		second:          "%m/%d/%Y %H:%M:%S",
		millisSeparator: ".",
	}, {
		year:            "%Y",
		month:           "%B %Y",
		date:            "%d/%m/%Y",
		minute:          "%d/%m/%Y %H:%M",
		second:          "%d/%m/%Y %H:%M:%S",
		millisSeparator: ".",
	}, {
		year:            "%Y",
		month:           "%m.%Y",
		date:            "%d.%m.%Y",
		minute:          "%d.%m.%Y %H:%M",
		second:          "%d.%m.%Y %H:%M:%S",
		millisSeparator: ",",
	}}
)

func (l Locale) formats() labelFormats {
	_, idx, conf := languageMatcher.Match(l.Language)
	if conf == language.No || idx < 0 || idx >= len(formatsByIndex) {
		return formatsByIndex[0]
	}
	return formatsByIndex[idx]
}

func (l Locale) in(t time.Time) time.Time {
	if l.Location == nil {
		return t
	}
	return t.In(l.Location)
}

// format renders t in the receiver's location with the pattern pick selects.
func (l Locale) format(t time.Time, pick func(labelFormats) string) string {
	t = l.in(t)
	s, err := strftime.Format(pick(l.formats()), t)
	if err != nil {
		return t.Format(time.RFC3339)
	}
	return s
}
