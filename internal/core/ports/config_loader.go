package ports

import "go.trai.ch/incinfo/internal/core/domain"

// ConfigLoader builds the per-invocation configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the settings file starting at cwd and returns the resulting configuration.
	// A missing settings file is not an error; defaults are returned instead.
	Load(cwd string) (domain.Configuration, error)
}

// SettingsSource is a read-only key/value view of user settings.
type SettingsSource interface {
	// Setting returns the raw value stored under key and whether it was present.
	Setting(key string) (any, bool)
}
