package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configDir  = ".mariadb-client"
	configFile = "config"
	configType = "yaml"
)

// FileConfig is a Config backed by a configuration file.
type FileConfig struct {
	Bin      string `mapstructure:"client_bin"`
	ConnArgs string `mapstructure:"args"`
}

// Compile-time verification that FileConfig implements Config.
var _ Config = (*FileConfig)(nil)

// ClientBin implements Config.
func (c *FileConfig) ClientBin() string { return c.Bin }

// Args implements Config.
func (c *FileConfig) Args() string { return c.ConnArgs }

// Load reads the configuration from ~/.mariadb-client/config.yaml.
// Returns defaults if the file does not exist.
func Load() (*FileConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("config dir: %w", err)
	}

	return LoadFrom(filepath.Join(home, configDir))
}

// LoadFrom reads the configuration from the given directory.
func LoadFrom(dir string) (*FileConfig, error) {
	v := viper.New()
	v.SetConfigName(configFile)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)

	// Defaults
	v.SetDefault("client_bin", "")
	v.SetDefault("args", "")

	cfg := &FileConfig{}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}
