// Package config provides the settings loader for incinfo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/incinfo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML or TOML settings file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the nearest settings file at or above cwd and builds the
// configuration from it. Without a settings file the defaults are returned,
// rooted at cwd.
func (l *Loader) Load(cwd string) (domain.Configuration, error) {
	configPath, ok := findConfiguration(cwd)
	if !ok {
		cfg := domain.DefaultConfiguration()
		cfg.Root = filepath.Clean(cwd)
		return cfg, nil
	}

	settings, err := readSettings(configPath)
	if err != nil {
		return domain.Configuration{}, zerr.With(err, "path", configPath)
	}

	for _, key := range settings.unknownKeys() {
		l.Logger.Warn(fmt.Sprintf("unknown setting %q in %s", key, filepath.Base(configPath)))
	}

	cfg, err := FromSettings(settings)
	if err != nil {
		return domain.Configuration{}, zerr.With(err, "path", configPath)
	}
	cfg.Root = resolveRoot(configPath, cfg.Root)
	return cfg, nil
}

// findConfiguration walks up from cwd. Within one directory YAML wins over TOML.
func findConfiguration(cwd string) (string, bool) {
	currentDir := filepath.Clean(cwd)
	for {
		for _, name := range domain.ConfigFileNames() {
			candidate := filepath.Join(currentDir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func readSettings(configPath string) (Settings, error) {
	// #nosec G304 -- configPath comes from findConfiguration
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, domain.WithKind(domain.ErrConfigReadFailed, err)
	}

	raw := make(map[string]any)
	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		err = toml.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, domain.WithKind(domain.ErrConfigParseFailed, err)
	}
	return Settings(raw), nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

func (s Settings) unknownKeys() []string {
	var out []string
	for key := range s {
		if !slices.Contains(Keys(), key) {
			out = append(out, key)
		}
	}
	slices.Sort(out)
	return out
}
