// Package format renders include metrics as human readable text.
package format

import (
	"strconv"
	"strings"

	"go.trai.ch/incinfo/internal/core/domain"
)

// NoInfo is shown in place of an annotation when resolution fails.
const NoInfo = "No info"

// Size renders a byte count in the given unit with digits decimals.
// Auto picks MB above one mebibyte, KB above one kibibyte and bytes otherwise.
func Size(bytes int64, unit domain.SizeUnit, digits int) string {
	if unit == domain.SizeUnitAuto {
		switch {
		case float64(bytes)/domain.BytesPerMB > 1:
			unit = domain.SizeUnitMB
		case float64(bytes)/domain.BytesPerKB > 1:
			unit = domain.SizeUnitKB
		default:
			unit = domain.SizeUnitBytes
		}
	}

	var scale float64
	switch unit {
	case domain.SizeUnitBytes:
		return strconv.FormatInt(bytes, 10) + " Bytes"
	case domain.SizeUnitMB:
		scale = domain.BytesPerMB
	default:
		scale = domain.BytesPerKB
	}
	return strconv.FormatFloat(float64(bytes)/scale, 'f', max(digits, 0), 64) + " " + unit.String()
}

// Count renders n with sep inserted between groups of three digits.
func Count(n int64, sep domain.DigitSeparator) string {
	digits := strconv.FormatInt(n, 10)
	symbol := sep.Symbol()
	if symbol == "" {
		return digits
	}

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.WriteString(sign)
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if i > 0 {
			b.WriteString(symbol)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Annotation renders the inline text shown next to a directive.
func Annotation(m domain.FileMetrics, cfg domain.Configuration) string {
	parts := []string{
		"Size: " + Size(int64(m.ByteCount), cfg.SizeUnit, cfg.DecimalDigits),
		"Lines: " + Count(int64(m.LineCount), cfg.Separator),
		"Included Files: " + strconv.Itoa(m.IncludedCount),
	}
	if m.Transitive != nil {
		parts = append(parts, "Transitive Files: "+Count(int64(m.Transitive.Files), cfg.Separator))
	}
	return strings.Join(parts, " | ")
}
