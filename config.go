package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	SaveDirectory string
	Frontend      string
	DiagramSize   int
	LogFile       string
	LogLevel      string
}

func defaultConfig() *Config {
	return &Config{
		Frontend:    FrontendWindow,
		DiagramSize: defaultDiagramSize,
		LogLevel:    "info",
	}
}

func setDefaults(v *viper.Viper) {
	d := defaultConfig()
	v.SetDefault("save_directory", d.SaveDirectory)
	v.SetDefault("frontend", d.Frontend)
	v.SetDefault("diagram_size", d.DiagramSize)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
}

// loadConfig reads ~/.forcevecrc (or path, when set) as key = value lines.
// A missing file leaves the defaults in place.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)
	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		v.SetConfigFile(filepath.Join(homeDir, ".forcevecrc"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isNoSuchFile(err) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	config := &Config{
		SaveDirectory: expandHome(v.GetString("save_directory")),
		Frontend:      strings.ToLower(strings.TrimSpace(v.GetString("frontend"))),
		DiagramSize:   v.GetInt("diagram_size"),
		LogFile:       expandHome(v.GetString("log_file")),
		LogLevel:      v.GetString("log_level"),
	}
	switch config.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return nil, errors.Errorf("unknown frontend %q", config.Frontend)
	}
	if config.DiagramSize < minDiagramSize || config.DiagramSize > maxDiagramSize {
		return nil, errors.Errorf("diagram_size must be between %d and %d", minDiagramSize, maxDiagramSize)
	}
	return config, nil
}

func isNoSuchFile(err error) bool {
	var pathErr *os.PathError
	return errors.As(err, &pathErr) && os.IsNotExist(pathErr)
}

func expandHome(path string) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
		}
	}
	if !filepath.IsAbs(path) {
		if absPath, err := filepath.Abs(path); err == nil {
			path = absPath
		}
	}
	return path
}

func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0o755); err != nil {
		return "", errors.Wrap(err, "create save directory")
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
