package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/bnema/callbook/internal/logger"
	"github.com/spf13/viper"
)

const (
	appName    = "callbook"
	configName = "config"
	configType = "toml"
	envPrefix  = "CB"

	KeyDataDir       = "storage.dir"
	KeyStorageFormat = "storage.format"
	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
	KeyLogFile       = "log.file"
)

type StorageFormat string

const (
	StorageText StorageFormat = "text"
	StorageTOML StorageFormat = "toml"
)

type Config struct {
	DataDir       string
	StorageFormat StorageFormat
	Log           logger.Options
}

// DefaultDataDir is where the contact book lives unless configured.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, appName)
}

// Load resolves configuration from flags already bound to cfg, CB_*
// environment variables, the config file and defaults, in that order. An
// explicit configFile must exist; the default one is optional.
func Load(cfg *viper.Viper, configFile string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetConfigType(configType)
	if configFile != "" {
		cfg.SetConfigFile(configFile)
	} else {
		cfg.SetConfigName(configName)
		cfg.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
	}

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(KeyDataDir, DefaultDataDir())
	cfg.SetDefault(KeyStorageFormat, string(StorageText))
	cfg.SetDefault(KeyLogLevel, "warn")
	cfg.SetDefault(KeyLogFormat, "text")
	cfg.SetDefault(KeyLogFile, "")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	dataDir := strings.TrimSpace(cfg.GetString(KeyDataDir))
	if dataDir == "" {
		return Config{}, errors.New("data directory is empty")
	}

	format := StorageFormat(strings.ToLower(strings.TrimSpace(cfg.GetString(KeyStorageFormat))))
	switch format {
	case StorageText, StorageTOML:
	default:
		return Config{}, fmt.Errorf("unsupported storage format %q (want %q or %q)", format, StorageText, StorageTOML)
	}

	return Config{
		DataDir:       dataDir,
		StorageFormat: format,
		Log: logger.Options{
			Level:  cfg.GetString(KeyLogLevel),
			Format: cfg.GetString(KeyLogFormat),
			File:   cfg.GetString(KeyLogFile),
		},
	}, nil
}
