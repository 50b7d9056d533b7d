package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/ecverify/internal/common/errorwrapper"
	"github.com/aleister1102/ecverify/internal/logger"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	VerifyConfig   VerifyConfig         `json:"verify_config,omitempty" yaml:"verify_config,omitempty"`
	LogConfig      logger.FileLogConfig `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ReporterConfig ReporterConfig       `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
	WatchConfig    WatchConfig          `json:"watch_config,omitempty" yaml:"watch_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		VerifyConfig:   NewDefaultVerifyConfig(),
		LogConfig:      logger.NewDefaultFileLogConfig(),
		ReporterConfig: NewDefaultReporterConfig(),
		WatchConfig:    NewDefaultWatchConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// YAML is used if the file extension is .yaml or .yml, JSON otherwise.
// Without any config file the defaults are returned.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if providedPath != "" && !fileExists(providedPath) {
		return nil, errorwrapper.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		logger.Debug().Msg("No config file found, using defaults")
		return cfg, nil
	}

	data, err := loadConfigFileContent(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	logger.Debug().Str("path", filePath).Msg("Configuration loaded")
	return cfg, nil
}

// loadConfigFileContent reads the config file, refusing oversized files
func loadConfigFileContent(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigFileSize {
		return nil, errorwrapper.NewValidationError("config_file", filePath, "config file is too large")
	}
	return os.ReadFile(filePath)
}

// parseConfigContent decodes data as YAML for .yaml and .yml files, JSON otherwise
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	var err error
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return errorwrapper.NewError("failed to decode %s: %w", filePath, err)
	}
	return nil
}
