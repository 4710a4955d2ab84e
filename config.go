package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	StorePath    string `yaml:"store_path" mapstructure:"store_path"`
	TemplatePath string `yaml:"template_path" mapstructure:"template_path"`
	DateFormat   string `yaml:"date_format" mapstructure:"date_format"`
	TimeFormat   string `yaml:"time_format" mapstructure:"time_format"`
}

func DefaultConfig() *Config {
	return &Config{
		StorePath:    filepath.Join(dataDir(), "altmood.db"),
		TemplatePath: "altmood.db",
		DateFormat:   "2006-01-02",
		TimeFormat:   "15:04",
	}
}

func dataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "altmood")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "altmood")
}

// LoadConfig reads config.yaml from the usual places. A missing file is not
// an error; defaults apply.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths
	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "altmood"))
	}
	home, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(home, ".config", "altmood"))

	// Environment variables
	viper.SetEnvPrefix("ALTMOOD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.DateFormat == "" {
		cfg.DateFormat = "2006-01-02"
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = "15:04"
	}

	return cfg, nil
}
