package domain_test

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestFileIdentity(t *testing.T) {
	t.Run("equal for the same cleaned path", func(t *testing.T) {
		a := domain.NewFileIdentity("/src/include/../include/a.h")
		b := domain.NewFileIdentity("/src/include/a.h")
		assert.Equal(t, a, b)
		assert.Equal(t, "a.h", a.Name())
		assert.Equal(t, "/src/include", a.Dir())
	})

	t.Run("zero value", func(t *testing.T) {
		var id domain.FileIdentity
		assert.True(t, id.IsZero())
		assert.Empty(t, id.Path())
		assert.Empty(t, id.Name())
	})

	t.Run("text round trip", func(t *testing.T) {
		type wrapper struct {
			File domain.FileIdentity `json:"file"`
		}
		data, err := json.Marshal(wrapper{File: domain.NewFileIdentity("/x/y.h")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"file":"/x/y.h"}`, string(data))

		var out wrapper
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, domain.NewFileIdentity("/x/y.h"), out.File)
	})
}

func TestIncludeDirective_Spelling(t *testing.T) {
	assert.Equal(t, `"b.h"`, domain.IncludeDirective{Name: "b.h", Quoted: true}.Spelling())
	assert.Equal(t, "<vector>", domain.IncludeDirective{Name: "vector"}.Spelling())
}

func TestPosition(t *testing.T) {
	p := domain.Position{Line: 0, Column: 10}
	assert.Equal(t, "1:11", p.String())
	assert.True(t, p.Before(domain.Position{Line: 1}))
	assert.False(t, p.Before(domain.Position{Line: 0, Column: 10}))
}

func TestDefinitionTarget(t *testing.T) {
	file := domain.NewFileIdentity("/inc/b.h")
	targets := []domain.DefinitionTarget{
		domain.Location{File: file},
		domain.LocationLink{Origin: domain.Position{Line: 3, Column: 10}, File: file},
	}
	for _, target := range targets {
		assert.Equal(t, file, target.Target().File)
	}
}

func TestCacheEntry_ValidFor(t *testing.T) {
	token := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	later := token.Add(time.Second)

	project := domain.CacheEntry{Token: token}
	assert.True(t, project.ValidFor(token))
	assert.False(t, project.ValidFor(later))

	std := domain.CacheEntry{Standard: true, Token: token}
	assert.True(t, std.ValidFor(later))
}

func TestFileMetrics_Clone(t *testing.T) {
	orig := domain.FileMetrics{
		IncludedNames: map[string]domain.IncludeDirective{"b.h": {Name: "b.h", Quoted: true}},
		Transitive:    &domain.Aggregate{Files: 2, Unresolved: []string{"x"}},
	}
	clone := orig.Clone()
	clone.IncludedNames["c.h"] = domain.IncludeDirective{Name: "c.h"}
	clone.Transitive.Unresolved[0] = "y"

	assert.Len(t, orig.IncludedNames, 1)
	assert.Equal(t, "x", orig.Transitive.Unresolved[0])
	assert.Equal(t, map[string]domain.Position{"b.h": {}}, orig.Positions())
}

func TestParseSizeUnit(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.SizeUnit
		wantErr bool
	}{
		{in: "Bytes", want: domain.SizeUnitBytes},
		{in: "B", want: domain.SizeUnitBytes},
		{in: "KB", want: domain.SizeUnitKB},
		{in: "mb", want: domain.SizeUnitMB},
		{in: "Auto", want: domain.SizeUnitAuto},
		{in: "GB", want: domain.SizeUnitKB, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseSizeUnit(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidSizeUnit)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDigitSeparator(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.DigitSeparator
		symbol  string
		wantErr bool
	}{
		{in: "Comma", want: domain.SeparatorComma, symbol: ","},
		{in: "Backtick", want: domain.SeparatorBacktick, symbol: "`"},
		{in: "space", want: domain.SeparatorSpace, symbol: " "},
		{in: "None", want: domain.SeparatorNone, symbol: ""},
		{in: "Dot", want: domain.SeparatorComma, symbol: ",", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseDigitSeparator(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidSeparator)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.symbol, got.Symbol())
		})
	}
}

func TestDefaultConfiguration(t *testing.T) {
	cfg := domain.DefaultConfiguration()
	assert.Equal(t, domain.SizeUnitKB, cfg.SizeUnit)
	assert.Equal(t, 2, cfg.DecimalDigits)
	assert.Equal(t, domain.SeparatorComma, cfg.Separator)
	assert.Equal(t, domain.DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.Recursive)
}

func TestWithKind(t *testing.T) {
	cause := zerr.With(zerr.Wrap(os.ErrNotExist, "open /x/a.h"), "path", "/x/a.h")
	err := domain.WithKind(domain.ErrScanFailed, cause)

	require.ErrorIs(t, err, domain.ErrScanFailed)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, domain.ErrResolutionFailed)
	assert.Equal(t, "failed to scan file: open /x/a.h: file does not exist", err.Error())

	assert.Same(t, domain.ErrNoDirective, domain.WithKind(domain.ErrNoDirective, nil))
}
