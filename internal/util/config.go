package util

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Configuration struct {
	Version   string `toml:"-"`
	BuildDate string `toml:"-"`
	Commit    string `toml:"-"`

	RootPath string `toml:"root_path"`
	Prompt   string `toml:"prompt"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// LoadConfigFile overlays settings from a TOML file onto c. A missing file
// is not an error when the path was not set explicitly.
func LoadConfigFile(c *Configuration, path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		return nil
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}
