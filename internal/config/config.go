// Package config manages persistent CLI configuration (the National Law
// Information Center API key) via a YAML file under ~/.gaejeong, following
// the teacher's internal/config viper-backed layout.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// ConfigDirName is the name of the config directory.
	ConfigDirName = ".gaejeong"
	// ConfigFileName is the name of the config file.
	ConfigFileName = "config"
	// ConfigFileType is the type of the config file.
	ConfigFileType = "yaml"
)

// Config holds the application configuration.
type Config struct {
	Law struct {
		Key  string `mapstructure:"key"` // Legacy: NLIC API key
		NLIC struct {
			Key string `mapstructure:"key"` // National Law Information Center API key
		} `mapstructure:"nlic"`
	} `mapstructure:"law"`
}

var (
	cfg        *Config
	configPath string
)

// SetTestConfigPath sets a custom config path for testing.
func SetTestConfigPath(path string) {
	configPath = path
}

// ResetConfig resets the configuration state for testing.
func ResetConfig() {
	cfg = nil
	configPath = ""
	viper.Reset()
}

// Initialize sets up the configuration system.
func Initialize() error {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(homeDir, ConfigDirName)
	}

	if err := os.MkdirAll(configPath, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigName(ConfigFileName)
	viper.SetConfigType(ConfigFileType)
	viper.AddConfigPath(configPath)

	viper.SetDefault("law.key", "")
	viper.SetDefault("law.nlic.key", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if err := createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config after creation: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

func createDefaultConfig() error {
	configFile := filepath.Join(configPath, ConfigFileName+"."+ConfigFileType)

	defaultConfig := `# 개정 CLI 설정 파일

# 법령 정보 API 설정
law:
  # 기본 API 키 (nlic와 호환)
  key: ""

  # 국가법령정보센터 (National Law Information Center) API
  nlic:
    # API 인증키
    # https://www.law.go.kr/LSW/opn/prvsn/opnPrvsnInfoP.do?mode=9 에서 발급
    key: ""
`

	if err := os.WriteFile(configFile, []byte(defaultConfig), 0600); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	return nil
}

// Get returns a configuration value by key.
func Get(key string) interface{} {
	return viper.Get(key)
}

// GetString returns a string configuration value by key.
func GetString(key string) string {
	return viper.GetString(key)
}

// Set sets a configuration value.
func Set(key string, value interface{}) {
	viper.Set(key, value)
}

// Save writes the current configuration to file.
func Save() error {
	return viper.WriteConfig()
}

// GetAPIKey returns the configured NLIC API key.
func GetAPIKey() string {
	if cfg == nil {
		return ""
	}
	if cfg.Law.NLIC.Key != "" {
		return cfg.Law.NLIC.Key
	}
	return cfg.Law.Key
}

// SetAPIKey sets the API key and saves the configuration.
func SetAPIKey(key string) error {
	Set("law.key", key)
	Set("law.nlic.key", key)
	if err := Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	if cfg != nil {
		cfg.Law.Key = key
		cfg.Law.NLIC.Key = key
	}
	return nil
}

// IsAPIKeySet checks whether an API key is configured.
func IsAPIKeySet() bool {
	return GetAPIKey() != ""
}

// GetConfigPath returns the configuration file path.
func GetConfigPath() string {
	return filepath.Join(configPath, ConfigFileName+"."+ConfigFileType)
}
