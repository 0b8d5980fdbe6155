package domain

import (
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// SizeUnit selects how byte counts are rendered.
type SizeUnit int

const (
	// SizeUnitKB renders kibibytes. It is the default.
	SizeUnitKB SizeUnit = iota
	// SizeUnitBytes renders a plain byte count.
	SizeUnitBytes
	// SizeUnitMB renders mebibytes.
	SizeUnitMB
	// SizeUnitAuto picks the largest unit the value exceeds.
	SizeUnitAuto
)

// Scale factors for the size units.
const (
	BytesPerKB = 1024
	BytesPerMB = 1024 * 1024
)

// String returns the setting spelling of the unit.
func (u SizeUnit) String() string {
	switch u {
	case SizeUnitBytes:
		return "Bytes"
	case SizeUnitMB:
		return "MB"
	case SizeUnitAuto:
		return "Auto"
	default:
		return "KB"
	}
}

// ParseSizeUnit parses a unit setting. "B" is accepted as an alias of "Bytes".
func ParseSizeUnit(s string) (SizeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "b", "byte", "bytes":
		return SizeUnitBytes, nil
	case "kb":
		return SizeUnitKB, nil
	case "mb":
		return SizeUnitMB, nil
	case "auto":
		return SizeUnitAuto, nil
	default:
		return SizeUnitKB, zerr.With(zerr.Wrap(ErrInvalidSizeUnit, "parse size unit"), "value", s)
	}
}

// DigitSeparator is the thousands separator used for counts.
type DigitSeparator int

const (
	// SeparatorComma groups with ",". It is the default.
	SeparatorComma DigitSeparator = iota
	// SeparatorBacktick groups with "`".
	SeparatorBacktick
	// SeparatorSpace groups with " ".
	SeparatorSpace
	// SeparatorNone disables grouping.
	SeparatorNone
)

// Symbol returns the text inserted between digit groups.
func (s DigitSeparator) Symbol() string {
	switch s {
	case SeparatorBacktick:
		return "`"
	case SeparatorSpace:
		return " "
	case SeparatorNone:
		return ""
	default:
		return ","
	}
}

// String returns the setting spelling of the separator.
func (s DigitSeparator) String() string {
	switch s {
	case SeparatorBacktick:
		return "Backtick"
	case SeparatorSpace:
		return "Space"
	case SeparatorNone:
		return "None"
	default:
		return "Comma"
	}
}

// ParseDigitSeparator parses a separator setting.
func ParseDigitSeparator(s string) (DigitSeparator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "comma", ",":
		return SeparatorComma, nil
	case "backtick", "`":
		return SeparatorBacktick, nil
	case "space", " ":
		return SeparatorSpace, nil
	case "none", "":
		return SeparatorNone, nil
	default:
		return SeparatorComma, zerr.With(zerr.Wrap(ErrInvalidSeparator, "parse digit separator"), "value", s)
	}
}

// SearchPaths are the directories searched for include targets.
type SearchPaths struct {
	// IncludeDirs are searched for both quoted and angle-bracket includes (-I).
	IncludeDirs []string
	// SystemDirs are searched after IncludeDirs.
	SystemDirs []string
}

// Configuration is the per-invocation view of user settings.
// It is built fresh for every request and never mutated afterwards.
type Configuration struct {
	SizeUnit      SizeUnit
	DecimalDigits int
	Separator     DigitSeparator
	// Recursive enables transitive aggregation.
	Recursive bool
	// Timeout bounds a single resolution request. Zero disables the bound.
	Timeout     time.Duration
	SearchPaths SearchPaths
	// Ignore holds doublestar globs excluded from the workspace header index.
	Ignore []string
	// Root is the directory the configuration was discovered from.
	Root string
}

// DefaultDecimalDigits is the default precision for sizes.
const DefaultDecimalDigits = 2

// DefaultTimeout bounds a resolution when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// DefaultConfiguration returns the settings used when nothing is configured.
func DefaultConfiguration() Configuration {
	return Configuration{
		SizeUnit:      SizeUnitKB,
		DecimalDigits: DefaultDecimalDigits,
		Separator:     SeparatorComma,
		Timeout:       DefaultTimeout,
	}
}
