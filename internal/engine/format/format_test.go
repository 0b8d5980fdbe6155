package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/incinfo/internal/engine/format"
)

func TestSize(t *testing.T) {
	tests := []struct {
		name   string
		bytes  int64
		unit   domain.SizeUnit
		digits int
		want   string
	}{
		{name: "auto picks MB", bytes: 1_500_000, unit: domain.SizeUnitAuto, digits: 2, want: "1.43 MB"},
		{name: "auto picks KB", bytes: 2048, unit: domain.SizeUnitAuto, digits: 1, want: "2.0 KB"},
		{name: "auto exactly one KB falls through to bytes", bytes: 1024, unit: domain.SizeUnitAuto, digits: 2, want: "1024 Bytes"},
		{name: "auto exactly one MB stays KB", bytes: 1_048_576, unit: domain.SizeUnitAuto, digits: 0, want: "1024 KB"},
		{name: "bytes ignore digits", bytes: 500, unit: domain.SizeUnitBytes, digits: 0, want: "500 Bytes"},
		{name: "bytes with digits", bytes: 500, unit: domain.SizeUnitBytes, digits: 3, want: "500 Bytes"},
		{name: "KB", bytes: 1536, unit: domain.SizeUnitKB, digits: 2, want: "1.50 KB"},
		{name: "KB small file", bytes: 12, unit: domain.SizeUnitKB, digits: 2, want: "0.01 KB"},
		{name: "MB", bytes: 3 * 1024 * 1024, unit: domain.SizeUnitMB, digits: 1, want: "3.0 MB"},
		{name: "negative digits clamp", bytes: 1536, unit: domain.SizeUnitKB, digits: -1, want: "2 KB"},
		{name: "zero", bytes: 0, unit: domain.SizeUnitAuto, digits: 2, want: "0 Bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Size(tt.bytes, tt.unit, tt.digits))
		})
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		n    int64
		sep  domain.DigitSeparator
		want string
	}{
		{n: 1234567, sep: domain.SeparatorComma, want: "1,234,567"},
		{n: 1234567, sep: domain.SeparatorNone, want: "1234567"},
		{n: 1234567, sep: domain.SeparatorBacktick, want: "1`234`567"},
		{n: 1234567, sep: domain.SeparatorSpace, want: "1 234 567"},
		{n: 123456, sep: domain.SeparatorComma, want: "123,456"},
		{n: 12345, sep: domain.SeparatorComma, want: "12,345"},
		{n: 999, sep: domain.SeparatorComma, want: "999"},
		{n: 0, sep: domain.SeparatorComma, want: "0"},
		{n: -1234, sep: domain.SeparatorComma, want: "-1,234"},
		{n: -123, sep: domain.SeparatorComma, want: "-123"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Count(tt.n, tt.sep))
		})
	}
}

func TestAnnotation(t *testing.T) {
	m := domain.FileMetrics{ByteCount: 1_500_000, LineCount: 40_213, IncludedCount: 7}

	cfg := domain.DefaultConfiguration()
	assert.Equal(t, "Size: 1464.84 KB | Lines: 40,213 | Included Files: 7", format.Annotation(m, cfg))

	cfg.SizeUnit = domain.SizeUnitAuto
	cfg.Separator = domain.SeparatorNone
	m.Transitive = &domain.Aggregate{Files: 1200}
	assert.Equal(t, "Size: 1.43 MB | Lines: 40213 | Included Files: 7 | Transitive Files: 1200", format.Annotation(m, cfg))
}
