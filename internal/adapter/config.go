package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Market      MarketConfig      `mapstructure:"market"`
	Resources   ResourcesConfig   `mapstructure:"resources"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	UI          UIConfig          `mapstructure:"ui"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// MarketConfig holds market API configuration
type MarketConfig struct {
	Server          string  `mapstructure:"server"`            // Default world for price refreshes
	ValuesURL       string  `mapstructure:"values_url"`        // market_values endpoint
	WorldDataURL    string  `mapstructure:"world_data_url"`    // world_data endpoint
	ThrottleSeconds float64 `mapstructure:"throttle_seconds"`  // Minimum delay between requests
	BatchDelay      float64 `mapstructure:"batch_delay"`       // Extra delay between successful batches
	RefreshOnStart  bool    `mapstructure:"refresh_on_start"`  // Kick off a refresh when the app opens
	RefreshInterval int     `mapstructure:"refresh_interval_m"` // Background refresh cadence in minutes, 0 = off
}

// ResourcesConfig holds locations of the local data files
type ResourcesConfig struct {
	Dir      string `mapstructure:"dir"`       // Directory with catalogs, caches and meta
	ItemIDs  string `mapstructure:"item_ids"`  // Saved HTML dump with the item/id table
	DataDir  string `mapstructure:"data_dir"`  // Directory with user stores (characters, hunts, prices)
	Snapshot string `mapstructure:"snapshot"`  // Optional snapshot dir for catalog rebuilds
}

// PreferencesConfig holds user preferences
type PreferencesConfig struct {
	TopMost      bool `mapstructure:"top_most"`      // Keep the window on top (desktop builds)
	HistoryLimit int  `mapstructure:"history_limit"` // Search history size
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme      string `mapstructure:"theme"`
	DefaultTab string `mapstructure:"default_tab"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Market: MarketConfig{
			Server:          "Xyla",
			ValuesURL:       "https://api.tibiamarket.top/market_values",
			WorldDataURL:    "https://api.tibiamarket.top/world_data",
			ThrottleSeconds: 1.0,
			BatchDelay:      1.0,
			RefreshOnStart:  false,
			RefreshInterval: 0,
		},
		Resources: ResourcesConfig{
			Dir:     filepath.Join(defaultDataPath(), "resources", "tibia"),
			ItemIDs: filepath.Join(defaultDataPath(), "item_ids_dump.htm"),
			DataDir: defaultDataPath(),
		},
		Preferences: PreferencesConfig{
			TopMost:      false,
			HistoryLimit: 20,
		},
		UI: UIConfig{
			Theme:      "default",
			DefaultTab: "search",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "tibiasearch", "tibiasearch.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "tibiasearch", "tibiasearch.log")
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "tibiasearch")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "tibiasearch")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "tibiasearch")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "tibiasearch")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	// A local .env can override environment before viper reads it
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("TIBIASEARCH")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	viper.Set("market.server", cfg.Market.Server)
	viper.Set("market.values_url", cfg.Market.ValuesURL)
	viper.Set("market.world_data_url", cfg.Market.WorldDataURL)
	viper.Set("market.throttle_seconds", cfg.Market.ThrottleSeconds)
	viper.Set("market.batch_delay", cfg.Market.BatchDelay)
	viper.Set("market.refresh_on_start", cfg.Market.RefreshOnStart)
	viper.Set("market.refresh_interval_m", cfg.Market.RefreshInterval)

	viper.Set("resources.dir", cfg.Resources.Dir)
	viper.Set("resources.item_ids", cfg.Resources.ItemIDs)
	viper.Set("resources.data_dir", cfg.Resources.DataDir)
	viper.Set("resources.snapshot", cfg.Resources.Snapshot)

	viper.Set("preferences.top_most", cfg.Preferences.TopMost)
	viper.Set("preferences.history_limit", cfg.Preferences.HistoryLimit)

	viper.Set("ui.theme", cfg.UI.Theme)
	viper.Set("ui.default_tab", cfg.UI.DefaultTab)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
