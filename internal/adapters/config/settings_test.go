package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/incinfo/internal/adapters/config"
	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/incinfo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestSetting(t *testing.T) {
	src := config.Settings{
		"name":   "x",
		"small":  int64(3),
		"float":  float64(4),
		"flag":   true,
		"list":   []any{"a", "b"},
		"mixed":  []any{"a", 2},
		"absent": nil,
	}

	s, err := config.Setting(src, "name", "def")
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	n, err := config.Setting(src, "small", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = config.Setting(src, "float", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	b, err := config.Setting(src, "flag", false)
	require.NoError(t, err)
	assert.True(t, b)

	l, err := config.Setting[[]string](src, "list", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, l)

	d, err := config.Setting(src, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, d)

	d, err = config.Setting(src, "absent", 8)
	require.NoError(t, err)
	assert.Equal(t, 8, d)

	_, err = config.Setting(src, "name", 0)
	require.ErrorIs(t, err, domain.ErrInvalidSetting)

	_, err = config.Setting[[]string](src, "mixed", nil)
	require.ErrorIs(t, err, domain.ErrInvalidSetting)
}

func TestSetting_AnySource(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSettingsSource(ctrl)
	src.EXPECT().Setting(config.KeyDecimalDigits).Return(5, true)

	n, err := config.Setting(src, config.KeyDecimalDigits, domain.DefaultDecimalDigits)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestFromSettings_Defaults(t *testing.T) {
	cfg, err := config.FromSettings(config.Settings{})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfiguration(), cfg)
}
