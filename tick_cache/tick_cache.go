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

// Package tickcache memoizes tick computations.  Interactive axes recompute
// the same ticks on every frame while the visible range is unchanged; a Cache
// answers those repeats from an LRU.
package tickcache

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/simplelru"
	numericticks "github.com/ilhamster/traceviz/ticks/numeric_ticks"
	timeticks "github.com/ilhamster/traceviz/ticks/time_ticks"
)

type linearKey struct {
	lower, upper float64
	opts         numericticks.LinearOptions
}

type logKey struct {
	lower, upper    float64
	maxTickCount    int
	minTickDistance float64
}

// zoneKey identifies a location over a range.  Names alone are ambiguous:
// fixed zones may share a name while differing in offset.
type zoneKey struct {
	name                   string
	startOffset, endOffset int
}

type timeKey struct {
	start, end, minTickDistance float64
	zone                        zoneKey
}

type offsetKey struct {
	start, end, minOffsetDistance float64
	zone                          zoneKey
	language                      string
}

// Cache is a bounded, concurrency-safe memo of tick results.  Results
// returned from a Cache are copies and may be modified by the caller.
type Cache struct {
	mu   sync.Mutex
	lru  *simplelru.LRU
	calc *timeticks.Calculator
}

// New returns a new Cache holding up to cap results, computing time ticks
// with calc.
func New(cap int, calc *timeticks.Calculator) (*Cache, error) {
	lru, err := simplelru.NewLRU(cap, nil /* no onEvict policy */)
	if err != nil {
		return nil, err
	}
	if calc == nil {
		calc = timeticks.New(timeticks.DefaultOptions())
	}
	return &Cache{
		lru:  lru,
		calc: calc,
	}, nil
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Purge drops all cached results.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
}

func (c *Cache) get(key any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Get(key)
}

func (c *Cache) add(key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, value)
}

// fetchTicks returns the ticks cached under key, computing and caching them
// with compute if they are absent.  Errors are not cached.
func (c *Cache) fetchTicks(key any, compute func() ([]float64, error)) ([]float64, error) {
	if ticksIf, ok := c.get(key); ok {
		ticks, ok := ticksIf.([]float64)
		if !ok {
			return nil, fmt.Errorf("cached entry for %v didn't contain ticks", key)
		}
		return slices.Clone(ticks), nil
	}
	ticks, err := compute()
	if err != nil {
		return nil, err
	}
	c.add(key, ticks)
	return slices.Clone(ticks), nil
}

// LinearTicks is numericticks.CalculateTicks, memoized.
func (c *Cache) LinearTicks(lower, upper float64, opts numericticks.LinearOptions) ([]float64, error) {
	return c.fetchTicks(linearKey{lower, upper, opts}, func() ([]float64, error) {
		return numericticks.CalculateTicks(lower, upper, opts)
	})
}

// LogTicks is numericticks.CalculateLogTicks, memoized.
func (c *Cache) LogTicks(lower, upper float64, maxTickCount int, minTickDistance float64) ([]float64, error) {
	return c.fetchTicks(logKey{lower, upper, maxTickCount, minTickDistance}, func() ([]float64, error) {
		return numericticks.CalculateLogTicks(lower, upper, maxTickCount, minTickDistance)
	})
}

// TimeTicks is timeticks.Calculator.TickValues, memoized.
func (c *Cache) TimeTicks(start, end, minTickDistance float64, zone *time.Location) ([]float64, error) {
	return c.fetchTicks(timeKey{start, end, minTickDistance, keyForZone(zone, start, end)}, func() ([]float64, error) {
		return c.calc.TickValues(start, end, minTickDistance, zone)
	})
}

// TimeOffsets is timeticks.Calculator.Offsets, memoized.
func (c *Cache) TimeOffsets(start, end, minOffsetDistance float64, l timeticks.Locale) ([]timeticks.Offset, error) {
	key := offsetKey{start, end, minOffsetDistance, keyForZone(l.Location, start, end), l.Language.String()}
	if offsetsIf, ok := c.get(key); ok {
		offsets, ok := offsetsIf.([]timeticks.Offset)
		if !ok {
			return nil, fmt.Errorf("cached entry for %v didn't contain offsets", key)
		}
		return slices.Clone(offsets), nil
	}
	offsets, err := c.calc.Offsets(start, end, minOffsetDistance, l)
	if err != nil {
		return nil, err
	}
	c.add(key, offsets)
	return slices.Clone(offsets), nil
}

// keyForZone identifies zone by its name and its offsets at the ends of
// [start, end].
func keyForZone(zone *time.Location, start, end float64) zoneKey {
	if zone == nil {
		zone = time.UTC
	}
	_, startOffset := timeticks.ToTime(start, zone).Zone()
	_, endOffset := timeticks.ToTime(end, zone).Zone()
	return zoneKey{
		name:        zone.String(),
		startOffset: startOffset,
		endOffset:   endOffset,
	}
}
