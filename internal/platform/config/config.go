package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDir       = "bplog"
	configName   = "config.yaml"
	databaseName = "bplog.db"
)

type Config struct {
	Dir           string
	ConfigFile    string
	DefaultDBPath string
}

func New(dir string) (Config, error) {
	if dir == "" {
		return Config{}, fmt.Errorf("config dir is required")
	}
	return Config{
		Dir:           dir,
		ConfigFile:    filepath.Join(dir, configName),
		DefaultDBPath: filepath.Join(dir, databaseName),
	}, nil
}

// Default places config and the default store under the user config dir.
func Default() (Config, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return Config{}, fmt.Errorf("locate user config dir: %w", err)
	}
	return New(filepath.Join(base, appDir))
}

// DatabaseName is the file name used when a directory is given as store path.
func DatabaseName() string {
	return databaseName
}
