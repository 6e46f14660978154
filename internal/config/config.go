package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/RxinnotRstar/ratio-finder/internal/validate"
)

// Defaults applied when a value is missing or fails validation.
const (
	DefaultMaxDenominator       = 64
	DefaultSingleDigitThreshold = 0.01
)

// Config holds the two tuning knobs of the approximation search. It is
// constructed once at startup, validated, and treated as immutable afterwards;
// every query reads it, none write it, so concurrent queries need no locking.
type Config struct {
	// MaxDenominator bounds the candidate search. Larger values can find
	// tighter approximations at the cost of search time; values above
	// ~100000 are impractical.
	MaxDenominator int `yaml:"max_denominator" validate:"min=1"`

	// SingleDigitThreshold controls the one-digit-ratio preference: a
	// single-digit candidate with error below this value is surfaced ahead
	// of the ranked list. 0 disables the feature, 1 triggers it almost
	// always.
	SingleDigitThreshold float64 `yaml:"single_digit_threshold" validate:"gte=0,lte=1"`
}

// Default returns a Config with the documented defaults.
func Default() *Config {
	return &Config{
		MaxDenominator:       DefaultMaxDenominator,
		SingleDigitThreshold: DefaultSingleDigitThreshold,
	}
}

// Load reads an optional YAML config file and returns the effective Config
// plus any substitution warnings. Invalid or wrong-typed fields are silently
// replaced by their defaults; each replacement queues exactly one
// human-readable warning for the active shell to display. A missing file is
// not an error.
func Load(path string) (*Config, []string, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil, nil
	}

	path, err := expandTilde(path)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Debugf("config file %s not found; using defaults", path)
			return cfg, nil, nil
		}
		return nil, nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Fields decode as any so a wrong-typed value becomes a warning instead
	// of a parse failure.
	var raw struct {
		MaxDenominator       any `yaml:"max_denominator"`
		SingleDigitThreshold any `yaml:"single_digit_threshold"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	var warnings []string
	if raw.MaxDenominator != nil {
		warnings = append(warnings, cfg.setMaxDenominator(raw.MaxDenominator)...)
	}
	if raw.SingleDigitThreshold != nil {
		warnings = append(warnings, cfg.setThreshold(raw.SingleDigitThreshold)...)
	}
	return cfg, warnings, nil
}

// ApplyOverrides runs flag-supplied values through the same per-field
// validation as file values and returns the warnings for any that were
// rejected. A zero MaxDenominator means "not set"; the threshold carries an
// explicit set flag since 0 is a meaningful value for it.
func (c *Config) ApplyOverrides(maxDenominator int, threshold float64, thresholdSet bool) []string {
	var warnings []string
	if maxDenominator != 0 {
		warnings = append(warnings, c.setMaxDenominator(maxDenominator)...)
	}
	if thresholdSet {
		warnings = append(warnings, c.setThreshold(threshold)...)
	}
	return warnings
}

func (c *Config) setMaxDenominator(v any) []string {
	n, ok := v.(int)
	if !ok || validate.Var(n, "min=1") != nil {
		c.MaxDenominator = DefaultMaxDenominator
		return []string{fmt.Sprintf("invalid max_denominator; reset to %d", DefaultMaxDenominator)}
	}
	c.MaxDenominator = n
	return nil
}

func (c *Config) setThreshold(v any) []string {
	f, ok := toFloat(v)
	if !ok || validate.Var(f, "gte=0,lte=1") != nil {
		c.SingleDigitThreshold = DefaultSingleDigitThreshold
		return []string{fmt.Sprintf("invalid single_digit_threshold; reset to %g", DefaultSingleDigitThreshold)}
	}
	c.SingleDigitThreshold = f
	return nil
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// toFloat accepts the numeric shapes yaml.v3 produces, plus numeric strings.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
