package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/Rshep3087/myspend/config"
	"github.com/Rshep3087/myspend/ledger"
	"github.com/Rshep3087/myspend/report"
	"github.com/Rshep3087/myspend/storage"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const configFileName = "myspend.toml"

// defaultDataDir is where transactions live when data_dir is not set.
func defaultDataDir() string {
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "myspend")
	}
	return ".myspend"
}

// defaultConfig is the configuration used when nothing else is set.
func defaultConfig() config.Config {
	return config.Config{
		Storage:    storage.FileBackend,
		StorageKey: ledger.DefaultKey,
		Currency:   report.DefaultCurrency,
		DataDir:    defaultDataDir(),
		ExportDir:  ".",
		Categories: config.DefaultCategories,
	}
}

func setDefaults(v *viper.Viper) {
	d := defaultConfig()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("storage", d.Storage)
	v.SetDefault("storage_key", d.StorageKey)
	v.SetDefault("currency", d.Currency)
	v.SetDefault("categories", d.Categories)
	v.SetDefault("export_dir", d.ExportDir)
}

// loadConfig builds the configuration from viper and checks it.
func loadConfig() (config.Config, error) {
	return configFromViper(viper.GetViper())
}

func configFromViper(v *viper.Viper) (config.Config, error) {
	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return normalizeConfig(cfg)
}

func normalizeConfig(cfg config.Config) (config.Config, error) {
	d := defaultConfig()

	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	if cfg.Storage == "" {
		cfg.Storage = d.Storage
	}
	switch cfg.Storage {
	case storage.FileBackend, storage.SQLiteBackend, storage.MemoryBackend:
	default:
		return config.Config{}, fmt.Errorf("invalid storage: %s (must be one of file, sqlite, memory)", cfg.Storage)
	}

	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if cfg.Currency == "" {
		cfg.Currency = d.Currency
	}
	if money.GetCurrency(cfg.Currency) == nil {
		return config.Config{}, fmt.Errorf("unknown currency: %s", cfg.Currency)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = d.DataDir
	}
	if cfg.StorageKey == "" {
		cfg.StorageKey = d.StorageKey
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = d.ExportDir
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = d.Categories
	}

	return cfg, nil
}

// defaultConfigPath is where `config init` writes when no path is given.
func defaultConfigPath() string {
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "myspend", configFileName)
	}
	return configFileName
}

// writeDefaultConfig writes the default configuration as TOML. An existing
// file is only replaced when force is set.
func writeDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check config file %s: %w", path, err)
		}
	}

	data, err := toml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// loadConfigFromFile loads configuration from a TOML file.
func loadConfigFromFile(path string) (config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return config.Config{}, fmt.Errorf("failed to parse TOML config file %s: %w", path, err)
	}

	return normalizeConfig(cfg)
}
