package cli

import (
	"github.com/BurntSushi/toml"
)

// loadSettingsFile decodes a TOML file into the loose settings map consumed
// by the grid resolver. Keys mirror the settings map ("columns", "padding",
// "backgroundColor", ...); the resolver is the single coercion point, so an
// out-of-range or mistyped value in the file degrades to a default instead
// of failing the command.
func loadSettingsFile(path string) (map[string]any, error) {
	settings := map[string]any{}
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}
