package domain

const (
	// ConfigFileYAML is the name of the YAML settings file.
	ConfigFileYAML = ".incinfo.yaml"

	// ConfigFileTOML is the name of the TOML settings file.
	ConfigFileTOML = ".incinfo.toml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ConfigFileNames lists the settings files in lookup order within one directory.
func ConfigFileNames() []string {
	return []string{ConfigFileYAML, ConfigFileTOML}
}
