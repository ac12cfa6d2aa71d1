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

// Package axisconfig loads tick settings from TOML.
package axisconfig

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	numericticks "github.com/ilhamster/traceviz/ticks/numeric_ticks"
	tickcache "github.com/ilhamster/traceviz/ticks/tick_cache"
	tickerrors "github.com/ilhamster/traceviz/ticks/tick_errors"
	timeticks "github.com/ilhamster/traceviz/ticks/time_ticks"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// LinearConfig configures numeric axes.
type LinearConfig struct {
	MaxTickCount    int     `toml:"max_tick_count"`
	MinTickDistance float64 `toml:"min_tick_distance"`
	EndPolicy       string  `toml:"end_policy"` // default | exact
	Factors         string  `toml:"factors"`    // only10 | only5sand10 | default | all
}

// TimeConfig configures time axes.
type TimeConfig struct {
	Zone                string  `toml:"zone"`
	Locale              string  `toml:"locale"`
	MinTickDistanceMs   float64 `toml:"min_tick_distance_ms"`
	MinOffsetDistanceMs float64 `toml:"min_offset_distance_ms"`
}

// EngineConfig configures the calculators themselves.
type EngineConfig struct {
	Strict    bool   `toml:"strict"`
	CacheSize int    `toml:"cache_size"`
	LogLevel  string `toml:"log_level"`
}

// Config holds the tick settings of an application.
type Config struct {
	Linear LinearConfig `toml:"linear"`
	Time   TimeConfig   `toml:"time"`
	Engine EngineConfig `toml:"engine"`
}

// Default returns the settings used for keys a configuration omits.
func Default() *Config {
	return &Config{
		Linear: LinearConfig{
			MaxTickCount: 10,
			EndPolicy:    numericticks.EndPolicyExact.String(),
			Factors:      numericticks.FactorsDefault.String(),
		},
		Time: TimeConfig{
			Zone:   "UTC",
			Locale: "en-US",
		},
		Engine: EngineConfig{
			CacheSize: 128,
			LogLevel:  log.WarnLevel.String(),
		},
	}
}

// Load reads and validates the configuration in the named file.
func Load(name string) (*Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read tick configuration: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes and validates a TOML configuration.  Omitted keys take their
// Default values; unknown keys are rejected.
func Parse(data string) (*Config, error) {
	c := Default()
	md, err := toml.Decode(data, c)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode tick configuration: %s", tickerrors.ErrInvalidArgument, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown tick configuration keys %s", tickerrors.ErrInvalidArgument, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every setting of the receiver is usable.
func (c *Config) Validate() error {
	if c.Linear.MaxTickCount < 0 {
		return fmt.Errorf("%w: linear.max_tick_count must be >= 0, got %d", tickerrors.ErrInvalidArgument, c.Linear.MaxTickCount)
	}
	for key, v := range map[string]float64{
		"linear.min_tick_distance":    c.Linear.MinTickDistance,
		"time.min_tick_distance_ms":   c.Time.MinTickDistanceMs,
		"time.min_offset_distance_ms": c.Time.MinOffsetDistanceMs,
	} {
		if !(v >= 0) {
			return fmt.Errorf("%w: %s must be >= 0, got %v", tickerrors.ErrInvalidArgument, key, v)
		}
	}
	if c.Engine.CacheSize <= 0 {
		return fmt.Errorf("%w: engine.cache_size must be > 0, got %d", tickerrors.ErrInvalidArgument, c.Engine.CacheSize)
	}
	if _, err := c.LinearOptions(); err != nil {
		return err
	}
	if _, err := c.Locale(); err != nil {
		return err
	}
	if _, err := c.Logger(); err != nil {
		return err
	}
	return nil
}

// LinearOptions returns the configured numeric tick options.
func (c *Config) LinearOptions() (numericticks.LinearOptions, error) {
	endPolicy, err := numericticks.ParseEndPolicy(c.Linear.EndPolicy)
	if err != nil {
		return numericticks.LinearOptions{}, err
	}
	factors, err := numericticks.ParseFactors(c.Linear.Factors)
	if err != nil {
		return numericticks.LinearOptions{}, err
	}
	return numericticks.LinearOptions{
		MaxTickCount:    c.Linear.MaxTickCount,
		MinTickDistance: c.Linear.MinTickDistance,
		EndPolicy:       endPolicy,
		Factors:         factors,
	}, nil
}

// Locale returns the configured label language and zone.
func (c *Config) Locale() (timeticks.Locale, error) {
	loc, err := time.LoadLocation(c.Time.Zone)
	if err != nil {
		return timeticks.Locale{}, fmt.Errorf("%w: unknown time.zone '%s': %s", tickerrors.ErrInvalidArgument, c.Time.Zone, err)
	}
	tag, err := language.Parse(c.Time.Locale)
	if err != nil {
		return timeticks.Locale{}, fmt.Errorf("%w: malformed time.locale '%s': %s", tickerrors.ErrInvalidArgument, c.Time.Locale, err)
	}
	return timeticks.Locale{Language: tag, Location: loc}, nil
}

// Logger returns a logger at the configured level.
func (c *Config) Logger() (*log.Logger, error) {
	level, err := log.ParseLevel(c.Engine.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: engine.log_level: %s", tickerrors.ErrInvalidArgument, err)
	}
	logger := log.New()
	logger.SetLevel(level)
	return logger, nil
}

// Calculator returns a time tick calculator honoring the engine settings.
func (c *Config) Calculator() (*timeticks.Calculator, error) {
	logger, err := c.Logger()
	if err != nil {
		return nil, err
	}
	return timeticks.New(timeticks.Options{
		Logger: logger,
		Strict: c.Engine.Strict,
	}), nil
}

// Cache returns a tick cache of the configured size.
func (c *Config) Cache() (*tickcache.Cache, error) {
	calc, err := c.Calculator()
	if err != nil {
		return nil, err
	}
	return tickcache.New(c.Engine.CacheSize, calc)
}
