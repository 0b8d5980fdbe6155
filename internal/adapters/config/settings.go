package config

import (
	"math"
	"time"

	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/incinfo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Setting keys understood in the settings file.
const (
	KeySizeUnit       = "sizeUnit"
	KeyDecimalDigits  = "decimalDigits"
	KeyDigitSeparator = "digitSeparator"
	KeyRecursive      = "recursive"
	KeyTimeout        = "timeout"
	KeyIncludeDirs    = "includeDirs"
	KeySystemDirs     = "systemDirs"
	KeyIgnore         = "ignore"
	KeyRoot           = "root"
)

// Keys returns every recognised setting key.
func Keys() []string {
	return []string{
		KeySizeUnit, KeyDecimalDigits, KeyDigitSeparator, KeyRecursive,
		KeyTimeout, KeyIncludeDirs, KeySystemDirs, KeyIgnore, KeyRoot,
	}
}

var _ ports.SettingsSource = Settings(nil)

// Settings is a decoded settings file.
type Settings map[string]any

// Setting implements ports.SettingsSource.
func (s Settings) Setting(key string) (any, bool) {
	v, ok := s[key]
	return v, ok
}

// Setting reads key from src, falling back to def when it is absent.
// YAML and TOML disagree on integer and list types, so numbers are
// normalised to int and lists to []string before the type check.
func Setting[T any](src ports.SettingsSource, key string, def T) (T, error) {
	raw, ok := src.Setting(key)
	if !ok || raw == nil {
		return def, nil
	}

	v, ok := normalize(raw).(T)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidSetting, key), "value", raw)
		return def, zerr.With(err, "expected", typeName[T]())
	}
	return v, nil
}

func typeName[T any]() string {
	var v T
	switch any(v).(type) {
	case string:
		return "string"
	case int:
		return "integer"
	case bool:
		return "boolean"
	case []string:
		return "list of strings"
	default:
		return "value"
	}
}

func normalize(v any) any {
	switch n := v.(type) {
	case int64:
		return int(n)
	case uint64:
		if n <= math.MaxInt {
			return int(n)
		}
	case float64:
		if n == math.Trunc(n) {
			return int(n)
		}
	case []any:
		out := make([]string, 0, len(n))
		for _, item := range n {
			s, ok := item.(string)
			if !ok {
				return v
			}
			out = append(out, s)
		}
		return out
	}
	return v
}

// FromSettings builds a configuration from src. Missing keys keep their
// defaults. Root is returned as written; callers resolve it.
func FromSettings(src ports.SettingsSource) (domain.Configuration, error) {
	cfg := domain.DefaultConfiguration()

	unit, err := Setting(src, KeySizeUnit, cfg.SizeUnit.String())
	if err != nil {
		return cfg, err
	}
	if cfg.SizeUnit, err = domain.ParseSizeUnit(unit); err != nil {
		return cfg, err
	}

	if cfg.DecimalDigits, err = Setting(src, KeyDecimalDigits, cfg.DecimalDigits); err != nil {
		return cfg, err
	}
	if cfg.DecimalDigits < 0 {
		return cfg, zerr.With(zerr.Wrap(domain.ErrInvalidDecimalDigits, KeyDecimalDigits), "value", cfg.DecimalDigits)
	}

	sep, err := Setting(src, KeyDigitSeparator, cfg.Separator.String())
	if err != nil {
		return cfg, err
	}
	if cfg.Separator, err = domain.ParseDigitSeparator(sep); err != nil {
		return cfg, err
	}

	if cfg.Recursive, err = Setting(src, KeyRecursive, cfg.Recursive); err != nil {
		return cfg, err
	}

	if cfg.Timeout, err = timeoutSetting(src, cfg.Timeout); err != nil {
		return cfg, err
	}

	if cfg.SearchPaths.IncludeDirs, err = Setting[[]string](src, KeyIncludeDirs, nil); err != nil {
		return cfg, err
	}
	if cfg.SearchPaths.SystemDirs, err = Setting[[]string](src, KeySystemDirs, nil); err != nil {
		return cfg, err
	}
	if cfg.Ignore, err = Setting[[]string](src, KeyIgnore, nil); err != nil {
		return cfg, err
	}
	if cfg.Root, err = Setting(src, KeyRoot, ""); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// timeoutSetting accepts a duration string ("2s", "500ms") or a number of milliseconds.
func timeoutSetting(src ports.SettingsSource, def time.Duration) (time.Duration, error) {
	raw, ok := src.Setting(KeyTimeout)
	if !ok || raw == nil {
		return def, nil
	}

	switch v := normalize(raw).(type) {
	case int:
		if v >= 0 {
			return time.Duration(v) * time.Millisecond, nil
		}
	case string:
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d, nil
		}
	}
	return def, zerr.With(zerr.Wrap(domain.ErrInvalidSetting, KeyTimeout), "value", raw)
}
